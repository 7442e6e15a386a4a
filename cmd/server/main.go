package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wallet-burner/internal/config"
	"wallet-burner/internal/handlers"
	"wallet-burner/internal/providers"
	"wallet-burner/internal/server"
	"wallet-burner/internal/services"
	"wallet-burner/internal/solana"
	"wallet-burner/internal/tokenlist"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogger(cfg)

	ledger := solana.NewClient(cfg.Solana)
	registry := tokenlist.NewRegistry(cfg.Providers.TokenListURL, cfg.Providers.LookupTimeout)

	tokenListProvider := providers.NewTokenListProvider(registry)
	dexScreener := providers.NewDexScreenerProvider(cfg.Providers.DexScreenerBaseURL, cfg.Providers.LookupTimeout)
	magicEden := providers.NewMagicEdenProvider(cfg.Providers.MagicEdenBaseURL, cfg.Providers.LookupTimeout)
	onChain := providers.NewOnChainProvider(ledger, cfg.Providers.LookupTimeout)

	metrics := services.NewPrometheusMetrics()

	assetService := services.NewAssetService(
		ledger,
		[]providers.MetadataProviderInterface{tokenListProvider, dexScreener, onChain},
		[]providers.MetadataProviderInterface{magicEden, onChain},
		metrics,
		cfg.Providers.LookupTimeout,
		cfg.Providers.PlaceholderImage,
	)
	burnService := services.NewBurnService(metrics)

	srv := server.New(cfg, server.Handlers{
		Static: handlers.NewStaticHandler(cfg.Solana.Network),
		Asset:  handlers.NewAssetHandler(assetService, cfg.Solana.Network),
		Burn:   handlers.NewBurnHandler(burnService),
		Health: handlers.NewHealthCheckHandler(ledger),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}
