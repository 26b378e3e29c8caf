package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/srgjo27/hotel_inventory/internal/adapter/handler"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			router := handler.NewRouter(handler.Handlers{
				Inventory: handler.NewInventoryHandler(a.inventory, a.availability, a.log),
				Bookings:  handler.NewBookingHandler(a.bookings, a.log),
				Stays:     handler.NewStayHandler(a.stays, a.log),
			}, a.log)

			server := &http.Server{
				Addr:         net.JoinHostPort("", a.cfg.HTTPPort),
				Handler:      router,
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
				IdleTimeout:  120 * time.Second,
			}

			errCh := make(chan error, 1)

			go func() {
				a.log.Info("server starting", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return err
				}
			case <-ctx.Done():
			}

			a.log.Info("shutting down server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				a.log.Error("server forced to shutdown", zap.Error(err))
				return err
			}

			a.log.Info("server exiting")
			return nil
		},
	}
}

