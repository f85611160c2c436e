package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	bookpg "github.com/libraryapp/lending/book/postgres"
	"github.com/libraryapp/lending/config"
	chihandlers "github.com/libraryapp/lending/internal/http/chi"
	"github.com/libraryapp/lending/internal/postgres"
	"github.com/libraryapp/lending/lending"
	loanpg "github.com/libraryapp/lending/loan/postgres"
	"github.com/libraryapp/lending/metrics"
	"github.com/libraryapp/lending/seed"
	userpg "github.com/libraryapp/lending/user/postgres"
)

const TIMEOUT = 30 * time.Second

/* main is where all the wiring happens: configuration, storage, the lending
 * service and its decorators, then the HTTP server. Imports flow one way
 * only: the binary imports the business layer, which imports storage.
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer db.Close()

	books := bookpg.NewRepository(db)
	users := userpg.NewRepository(db)
	loans := loanpg.NewRepository(db)

	// users before loans: the ledger has a foreign key on users.
	if err := books.CreateTable(ctx); err != nil {
		fmt.Println(err)
		return
	}
	if err := users.CreateTable(ctx); err != nil {
		fmt.Println(err)
		return
	}
	if err := loans.CreateTable(ctx); err != nil {
		fmt.Println(err)
		return
	}

	var svc lending.UseCase = lending.NewService(books, users, loans)

	exporter, err := metrics.NewExporter(books)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer exporter.Shutdown(ctx)

	svc, err = exporter.NewRecorder(svc)
	if err != nil {
		fmt.Println(err)
		return
	}

	if cfg.RedisAddr != "" {
		cache, err := lending.NewStatsCache(
			svc,
			cfg.RedisAddr,
			cfg.RedisPassword,
			cfg.RedisDB,
			time.Duration(cfg.StatsTTLSeconds)*time.Second,
		)
		if err != nil {
			fmt.Println(err)
			return
		}
		defer cache.Close()
		svc = cache
	}

	if cfg.SeedFile != "" {
		loader := seed.NewLoader()
		if err := loader.Load(cfg.SeedFile); err != nil {
			fmt.Println(err)
			return
		}
		if err := loader.Seed(ctx, svc); err != nil {
			fmt.Println(err)
			return
		}
	}

	r := chihandlers.Handlers(ctx, svc, exporter.Handler())
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	fmt.Printf("Listening on port %s\n", cfg.Port)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
		return
	}
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	}
}
