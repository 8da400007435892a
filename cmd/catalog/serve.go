package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jward/catalog/internal/api"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog as JSON over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	c, err := openCatalog()
	if err != nil {
		return err
	}
	defer c.Close()

	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(c.Query(), logger, api.RouterOptions{Pprof: cfg.Server.Pprof})
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{"addr": srv.Addr, "mode": cfg.Server.Mode}).Info("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
