package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookstore/internal/ad"
	"bookstore/internal/auth"
	"bookstore/internal/book"
	"bookstore/internal/cart"
	"bookstore/internal/config"
	"bookstore/internal/httpx"
	"bookstore/internal/platform/postgres"
	"bookstore/internal/review"
	"bookstore/internal/user"
	"bookstore/internal/wishlist"
)

// database is the pool surface the server needs: queries plus readiness pings.
type database interface {
	postgres.DB
	Ping(ctx context.Context) error
}

type dependencies struct {
	cfg       *config.Config
	logger    *slog.Logger
	db        database
	blacklist *auth.RedisBlacklist
	registry  *prometheus.Registry
}

// newRouter wires repositories, services and handlers onto a chi router. ctx
// bounds background work such as the rate limiter's sweeper.
func newRouter(ctx context.Context, d dependencies) http.Handler {
	cfg, logger := d.cfg, d.logger

	bookRepo := book.NewPostgresRepo(d.db, cfg.DBTimeout)
	bookHandler := book.NewHTTPHandler(book.NewService(bookRepo, cfg.SampleSize), logger)

	reviewRepo := review.NewPostgresRepo(d.db, cfg.DBTimeout)
	reviewHandler := review.NewHTTPHandler(review.NewService(reviewRepo, bookRepo, logger), logger)

	cartHandler := cart.NewHTTPHandler(cart.NewService(cart.NewPostgresRepo(d.db, cfg.DBTimeout), bookRepo), logger)
	wishlistHandler := wishlist.NewHTTPHandler(wishlist.NewService(wishlist.NewPostgresRepo(d.db, cfg.DBTimeout), bookRepo), logger)

	userService := user.NewService(user.NewPostgresRepo(d.db, cfg.DBTimeout))
	userHandler := user.NewHTTPHandler(userService, logger)
	authHandler := auth.NewHTTPHandler(auth.NewService(cfg.JWTSecret, cfg.JWTTTL, userService, d.blacklist), logger)

	adHandler := ad.NewHTTPHandler(ad.NewService(ad.NewPostgresRepo(d.db, cfg.DBTimeout)), logger)

	metrics := httpx.NewMetrics(d.registry)
	limiter := httpx.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustedProxies)

	r := chi.NewRouter()
	r.NotFound(httpx.NotFoundHandler)
	r.MethodNotAllowed(httpx.MethodNotAllowedHandler)
	r.Use(
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware(logger),
		httpx.AccessLogMiddleware(logger),
		metrics.Middleware,
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.CORSAllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		limiter.Middleware,
	)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Welcome to the bookstore API"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := d.db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{}))

	r.Post("/register", userHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ads", adHandler.List)

		r.Route("/books", func(r chi.Router) {
			r.Get("/", bookHandler.Sample)
			r.Get("/all", bookHandler.List)
			r.Get("/search", bookHandler.Search)
			r.Get("/shortTitle/{shortTitle}", bookHandler.ByShortTitle)
			r.Get("/category/{category}", bookHandler.ByCategory)
			r.Get("/author/{author}", bookHandler.ByAuthor)
			r.Get("/rating/{rating}", bookHandler.ByRating)
			r.Get("/rate/below-5", bookHandler.BelowThreshold)
			r.Get("/{id}", bookHandler.GetByID)
		})

		r.Post("/reviews", reviewHandler.Submit)
		r.Get("/reviews/book/{bookId}", reviewHandler.ListForBook)

		r.Group(func(r chi.Router) {
			var sameUser []func(http.Handler) http.Handler
			if cfg.AuthRequired {
				r.Use(httpx.AuthMiddleware(cfg.JWTSecret, d.blacklist))
				sameUser = append(sameUser, httpx.RequireSameUser("userId"))
			}

			r.Post("/cart", cartHandler.Add)
			r.With(sameUser...).Get("/cart/{userId}", cartHandler.Get)
			r.With(sameUser...).Delete("/cart/{userId}", cartHandler.Clear)
			r.With(sameUser...).Delete("/cart/{userId}/{bookId}", cartHandler.Remove)

			r.Post("/wishlist", wishlistHandler.Add)
			r.With(sameUser...).Get("/wishlist/{userId}", wishlistHandler.Get)
			r.With(sameUser...).Delete("/wishlist/{userId}/{bookId}", wishlistHandler.Remove)
		})
	})

	return r
}
