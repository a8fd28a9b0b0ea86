package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"minishop-storefront/internal/auth"
	"minishop-storefront/internal/config"
	"minishop-storefront/internal/db"
	"minishop-storefront/internal/httpserver"
	"minishop-storefront/internal/notify"
	catalogrepo "minishop-storefront/internal/repository/catalog"
	cartsvc "minishop-storefront/internal/service/cart"
	catalogsvc "minishop-storefront/internal/service/catalog"
	wishlistsvc "minishop-storefront/internal/service/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	fallback, err := catalogrepo.NewStatic()
	if err != nil {
		logger.Fatalf("load bundled catalog: %v", err)
	}

	// An unreachable database is not fatal: the bundled collection serves
	// the catalog until the primary source comes back.
	var primary catalogrepo.Repository
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Printf("catalog source unavailable, serving bundled collection: %v", err)
	} else {
		defer dbpool.Close()
		primary = catalogrepo.NewPostgres(dbpool, logger)
	}

	catalogService := catalogsvc.New(primary, fallback, logger)
	cartStore := cartsvc.NewStore()
	wishlistStore := wishlistsvc.NewStore()
	authService := auth.New()
	notifier := notify.NewLog(logger)

	cartStore.Subscribe(func(sum cartsvc.Summary) {
		logger.Printf("cart badge: items=%d subtotal_cents=%d", sum.TotalItems, sum.SubtotalCents)
	})

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:  catalogService,
		Cart:     cartStore,
		Wishlist: wishlistStore,
		Auth:     authService,
		Notifier: notifier,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
