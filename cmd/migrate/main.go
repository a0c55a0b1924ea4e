// Command migrate applies goose migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// Requires DATABASE_DSN environment variable to be set. The default command
// is "up".
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
)

const migrationsDir = "migrations"

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(migrationsDir))
	if err != nil {
		log.Fatalf("goose provider: %v", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			log.Fatalf("migrate up: %v", err)
		}
		for _, r := range results {
			fmt.Printf("applied %s\n", r.Source.Path)
		}
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		fmt.Printf("rolled back %s\n", result.Source.Path)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			log.Fatalf("migrate status: %v", err)
		}
		for _, s := range statuses {
			state := "pending"
			if s.State == goose.StateApplied {
				state = "applied"
			}
			fmt.Printf("%-10s %s\n", state, s.Source.Path)
		}
	default:
		log.Fatalf("unknown command %q (want up, down, or status)", command)
	}
}
