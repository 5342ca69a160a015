package ad

import "context"

type Repository interface {
	List(ctx context.Context) ([]Ad, error)
}
