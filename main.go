package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"loan-qualifier/cli"
	"loan-qualifier/config"
	httpLayer "loan-qualifier/http"
	"loan-qualifier/repository"
	"loan-qualifier/service"
)

var cfgPath string

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:          "loan-qualifier",
		Short:        "Match applicants with qualifying loans from a bank rate sheet",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive()
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml)")
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	path := cfgPath
	if path == "" {
		path = os.Getenv("LOAN_QUALIFIER_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat("configs/config.yaml"); err == nil {
			path = "configs/config.yaml"
		}
	}
	return config.Load(path)
}

func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sheets := repository.NewCSVRateSheet()
	cache := repository.NewMockCache()
	qualifier := service.NewQualifierService(sheets, cache, cfg.Cache.TTL, cfg.Loan.TermMonths)

	session := cli.NewSession(cli.SurveyPrompter{}, sheets, qualifier, cfg.App, os.Stdout)
	return session.Run()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the loan qualification HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
}

func runServer(cfg *config.Config) error {
	sheets := repository.NewCSVRateSheet()

	var cache repository.CacheRepository = repository.NewMockCache()
	if cfg.Redis.Addr != "" {
		cache = repository.NewRedisCache(cfg.Redis.Addr)
	}

	qualifier := service.NewQualifierService(sheets, cache, cfg.Cache.TTL, cfg.Loan.TermMonths)
	qualifyHandler := httpLayer.NewQualifyHandler(qualifier, cfg.App.RateSheet)

	rateLimiter := httpLayer.NewRateLimiter(cfg.Server.RateLimit.Requests, cfg.Server.RateLimit.Window)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/loan/qualify",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(qualifyHandler.Qualify),
		),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en http://localhost%s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return err
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
		return err
	}

	log.Println("Server exited")
	return nil
}
