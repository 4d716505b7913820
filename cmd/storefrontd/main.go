package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chatard/storefront/config"
	"github.com/chatard/storefront/internal/app"
	"github.com/chatard/storefront/internal/webserver"
)

var cfile = flag.String("c", "storefront.yml", "config file")

func main() {
	flag.Parse()

	cfg := config.LoadConfig(*cfile)
	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %s\n", err)
		os.Exit(1)
	}
	defer application.Release()

	server := webserver.New(application)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.S().Fatalf("storefront stopped: %s", err)
	}
	zap.L().Info("storefront stopped")
}
