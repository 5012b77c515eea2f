package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/config"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/repository"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/seed"
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	orders := fs.Int("orders", 0, "number of orders to generate (default 5000)")
	days := fs.Int("days", 0, "history window in days (default 90)")
	seedVal := fs.Int64("seed", time.Now().UnixNano(), "random seed")
	dsn := fs.String("dsn", "", "database DSN (overrides env config)")
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	if *dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("config load error: %v", err)
		}
		*dsn = cfg.DB.DSN()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, *dsn)
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	defer pool.Close()

	if err := repository.InitSchema(ctx, pool); err != nil {
		log.Fatalf("schema init error: %v", err)
	}

	snap := seed.NewGenerator(seed.Options{
		Orders: *orders,
		Days:   *days,
		Seed:   *seedVal,
	}).Snapshot()

	repo := repository.NewSeedRepo(pool)
	if err := repo.Reset(ctx); err != nil {
		log.Fatalf("reset error: %v", err)
	}
	if err := repo.InsertSnapshot(ctx, snap); err != nil {
		log.Fatalf("insert error: %v", err)
	}

	log.Printf("seeded %d stores, %d products, %d riders, %d orders, %d line items",
		len(snap.Stores), len(snap.Products), len(snap.Riders), len(snap.Orders), len(snap.LineItems))
}
