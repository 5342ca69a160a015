package wishlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookstore/internal/apperr"
	"bookstore/internal/book"
)

const (
	userID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	bookA  = "0b7c2f4e-6a43-4c8e-9e55-1f0d2c9e7a11"
	bookB  = "5d1e8a90-3f2b-4b7c-8d6e-2a9f0c4b1e22"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByUser(ctx context.Context, userID string) (*Wishlist, error) {
	args := m.Called(ctx, userID)
	wl, _ := args.Get(0).(*Wishlist)
	return wl, args.Error(1)
}

func (m *mockRepo) GetOrCreate(ctx context.Context, userID string) (*Wishlist, error) {
	args := m.Called(ctx, userID)
	wl, _ := args.Get(0).(*Wishlist)
	return wl, args.Error(1)
}

func (m *mockRepo) Save(ctx context.Context, wl *Wishlist) error {
	return m.Called(ctx, wl).Error(0)
}

type mockBooks struct {
	mock.Mock
}

func (m *mockBooks) GetByIDs(ctx context.Context, ids []string) (map[string]book.Book, error) {
	args := m.Called(ctx, ids)
	books, _ := args.Get(0).(map[string]book.Book)
	return books, args.Error(1)
}

func TestService_Add(t *testing.T) {
	t.Run("first add creates the list", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetOrCreate", mock.Anything, userID).Return(&Wishlist{ID: "w1", UserID: userID, Items: []Item{}}, nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(wl *Wishlist) bool {
			return len(wl.Items) == 1 && wl.Items[0].BookID == bookA
		})).Return(nil)

		wl, err := NewService(repo, nil).Add(context.Background(), userID, bookA)
		require.NoError(t, err)
		assert.Equal(t, []Item{{BookID: bookA}}, wl.Items)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate is a conflict and nothing is saved", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetOrCreate", mock.Anything, userID).Return(&Wishlist{ID: "w1", UserID: userID, Items: []Item{{BookID: bookA}}}, nil)

		_, err := NewService(repo, nil).Add(context.Background(), userID, bookA)
		assert.ErrorIs(t, err, apperr.ErrConflict)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("validation", func(t *testing.T) {
		service := NewService(&mockRepo{}, nil)

		_, err := service.Add(context.Background(), "", bookA)
		assert.ErrorIs(t, err, apperr.ErrValidation)
		_, err = service.Add(context.Background(), userID, "not-a-book")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestWishlist_DuplicateAddKeepsOneEntry(t *testing.T) {
	wl := &Wishlist{}

	require.NoError(t, wl.Add(bookA))
	assert.ErrorIs(t, wl.Add(bookA), ErrAlreadyPresent)
	assert.Len(t, wl.Items, 1)
}

func TestService_Remove(t *testing.T) {
	t.Run("no wishlist", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetByUser", mock.Anything, userID).Return(nil, ErrWishlistNotFound)

		_, err := NewService(repo, nil).Remove(context.Background(), userID, bookA)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("absent book is a no-op", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetByUser", mock.Anything, userID).Return(&Wishlist{UserID: userID, Items: []Item{{BookID: bookA}}}, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)

		wl, err := NewService(repo, nil).Remove(context.Background(), userID, bookB)
		require.NoError(t, err)
		assert.Equal(t, []Item{{BookID: bookA}}, wl.Items)
	})

	t.Run("present book", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetByUser", mock.Anything, userID).Return(&Wishlist{UserID: userID, Items: []Item{{BookID: bookA}, {BookID: bookB}}}, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)

		wl, err := NewService(repo, nil).Remove(context.Background(), userID, bookA)
		require.NoError(t, err)
		assert.Equal(t, []Item{{BookID: bookB}}, wl.Items)
	})
}

func TestService_Get(t *testing.T) {
	repo := &mockRepo{}
	books := &mockBooks{}
	repo.On("GetByUser", mock.Anything, userID).Return(&Wishlist{ID: "w1", UserID: userID, Items: []Item{{BookID: bookA}, {BookID: bookB}}}, nil)
	books.On("GetByIDs", mock.Anything, []string{bookA, bookB}).Return(map[string]book.Book{
		bookA: {ID: bookA, ShortTitle: "Emma", FullTitle: "Emma", Author: "Austen", Category: "Classic", Image: "emma.jpg", Price: 9},
	}, nil)

	view, err := NewService(repo, books).Get(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "Austen", view.Items[0].Author)
	assert.Equal(t, ViewItem{
		BookID: bookB, ShortTitle: "Unknown", FullTitle: "Unknown", Category: "Unknown", Author: "Unknown", Image: "undown",
	}, view.Items[1])
}

func TestService_Get_LookupFailure(t *testing.T) {
	repo := &mockRepo{}
	books := &mockBooks{}
	repo.On("GetByUser", mock.Anything, userID).Return(&Wishlist{Items: []Item{{BookID: bookA}}}, nil)
	books.On("GetByIDs", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := NewService(repo, books).Get(context.Background(), userID)
	assert.ErrorIs(t, err, apperr.ErrUnexpected)
}
