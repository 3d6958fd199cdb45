package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/auth"
	"auction-house/internal/config"
	model "auction-house/internal/models"
	"auction-house/internal/ratelimit"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/utils"

	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(2)
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set log level: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		utils.Fatal("Server stopped with error", map[string]any{"error": err.Error()})
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	repo, closeRepo, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	auctionSvc := auction.NewAuctionService(repo, cfg.Categories)
	if cfg.SeedDemoData {
		if err := seedDemoListings(ctx, auctionSvc, cfg.Categories); err != nil {
			return err
		}
	}

	opts := server.Options{Tokens: auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer)}
	if cfg.RateLimitEnabled() {
		limiter, err := ratelimit.NewRedisFixedWindowLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisPrefix, cfg.BidRateLimitPerMinute, time.Minute)
		if err != nil {
			return fmt.Errorf("create bid rate limiter: %w", err)
		}
		defer limiter.Close()
		if err := limiter.Ping(ctx); err != nil {
			return err
		}
		opts.BidLimiter = limiter
	}

	router := server.SetupRouter(auctionSvc, opts)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Info("Starting auction server", map[string]any{
			"addr":       cfg.HTTPAddr,
			"driver":     cfg.StorageDriver,
			"rate_limit": cfg.RateLimitEnabled(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	utils.Info("Shutting down auction server", map[string]any{"timeout": cfg.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore returns the configured backend and a func releasing it
func openStore(ctx context.Context, cfg *config.Config) (repository.AuctionDB, func(), error) {
	if cfg.StorageDriver == config.DriverMemory {
		return repository.NewMemoryRepo(), func() {}, nil
	}

	repo, err := repository.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	closeRepo := func() {
		if err := repo.Close(); err != nil {
			utils.Warn("Failed to close database", map[string]any{"error": err.Error()})
		}
	}
	if cfg.RunMigrations {
		if err := repo.RunMigrations(ctx); err != nil {
			closeRepo()
			return nil, nil, err
		}
		utils.Info("Database migrations applied", nil)
	}
	return repo, closeRepo, nil
}

// seedDemoListings adds a few sample listings owned by the "demo" user
func seedDemoListings(ctx context.Context, svc *auction.AuctionService, categories []string) error {
	pick := func(want string) string {
		if slices.Contains(categories, want) {
			return want
		}
		return categories[0]
	}

	listings := []model.NewListing{
		{Title: "Vintage typewriter", Description: "Working 1960s portable typewriter with case", Category: pick("Home"), StartingBid: decimal.RequireFromString("45.00")},
		{Title: "First edition novel", Description: "Hardcover first printing, light shelf wear", Category: pick("Books"), StartingBid: decimal.RequireFromString("120.00")},
		{Title: "Wooden train set", Description: "Forty-piece set, complete", Category: pick("Toys"), StartingBid: decimal.Zero},
	}

	for _, in := range listings {
		listing, err := svc.CreateListing(ctx, "demo", in)
		if err != nil {
			return fmt.Errorf("seed demo listing %q: %w", in.Title, err)
		}
		utils.Debug("Seeded demo listing", map[string]any{"listing_id": listing.ListingID, "title": listing.Title})
	}
	return nil
}
