package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/leadvane/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		eng, promReg, err := buildEngine(cmd, log)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		if env := os.Getenv("LEADVANE_ADDR"); addr == defaultAddr && env != "" {
			addr = env
		}

		srv := server.New(addr, server.NewRouter(eng, promReg, log))

		errCh := make(chan error, 1)
		go func() {
			log.Info("server listening", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		select {
		case err := <-errCh:
			return fmt.Errorf("server: %w", err)
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		log.Info("server stopped")
		return nil
	},
}

const defaultAddr = ":8080"

func init() {
	serveCmd.Flags().String("addr", defaultAddr, "Listen address (overridden by LEADVANE_ADDR when flag is unset)")
}
