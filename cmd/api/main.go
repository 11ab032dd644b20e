package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mini-storefront/internal/cart"
	"mini-storefront/internal/catalog"
	"mini-storefront/internal/config"
	"mini-storefront/internal/event"
	"mini-storefront/internal/handler"
	"mini-storefront/internal/notice"
	"mini-storefront/internal/router"
	"mini-storefront/internal/service"
	"mini-storefront/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting mini-storefront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Shared session state
	bus := event.NewBus(logger)
	orders := store.NewOrderStore(bus, logger)
	gen := catalog.NewGenerator(nil)

	badge := cart.NewBadge(bus, logger)
	defer badge.Close()

	board := notice.NewBoard(logger)
	defer board.Close()

	sf := cfg.Storefront

	// Initialize services
	catalogService := service.NewCatalogService(gen, sf.CatalogSize, logger)
	cartService := service.NewCartService(gen, bus, badge, board, service.CartOptions{
		CartSize:            sf.CartSize,
		CatalogSize:         sf.CatalogSize,
		ToastDuration:       sf.ToastDuration,
		DetailToastDuration: sf.DetailToastDuration,
	}, logger)
	checkoutService := service.NewCheckoutService(gen, orders, bus, service.CheckoutOptions{
		Size:     sf.CheckoutSize,
		Shipping: sf.Shipping,
	}, logger)
	orderService := service.NewOrderService(orders, gen, board, service.OrderOptions{
		SeedCount:     sf.SeedOrders,
		PageSize:      sf.PageSize,
		Shipping:      sf.Shipping,
		ToastDuration: sf.ToastDuration,
	}, logger)

	// Initialize router
	mux := router.New(router.Handlers{
		Product:  handler.NewProductHandler(catalogService, logger),
		Cart:     handler.NewCartHandler(cartService, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, logger),
		Order:    handler.NewOrderHandler(orderService, time.Local, logger),
		Notice:   handler.NewNoticeHandler(board, logger),
		Event:    handler.NewEventHandler(bus, cfg.Events.StreamBuffer, logger),
	}, logger)

	// Create HTTP server. Request contexts derive from ctx so event streams
	// end when shutdown starts.
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		cancel()

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().
			Int("orders", orders.Len()).
			Msg("server shutdown completed")
	}

	return nil
}
