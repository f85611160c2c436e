package main

import (
	"context"
	"fmt"

	bookpg "github.com/libraryapp/lending/book/postgres"
	"github.com/libraryapp/lending/config"
	"github.com/libraryapp/lending/internal/postgres"
	"github.com/libraryapp/lending/lending"
	loanpg "github.com/libraryapp/lending/loan/postgres"
	userpg "github.com/libraryapp/lending/user/postgres"
)

// Prints the per-category book statistics for the configured database.
func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx := context.Background()

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer db.Close()

	svc := lending.NewService(
		bookpg.NewRepository(db),
		userpg.NewRepository(db),
		loanpg.NewRepository(db),
	)

	stats, err := svc.BookStatistics(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, s := range stats {
		fmt.Printf("%-10s %d\n", s.Category, s.Count)
	}
}
