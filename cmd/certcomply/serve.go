package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"certcomply/internal/banner"
	"certcomply/internal/config"
	"certcomply/internal/logger"
	"certcomply/internal/registry"
	"certcomply/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		host      string
		port      string
		cacheMode string
		cacheTTL  string
		logLevel  string
		logFormat string
		policy    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the compliance HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(host, port, cacheMode, cacheTTL, logLevel, logFormat, policy)
			if err != nil {
				return err
			}

			log, err := logger.Init(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			fmt.Print(banner.Generate(cfg.App.Name))

			reg := registry.NewDefault(cfg.Policy.File)
			handler, err := server.NewHandler(cfg, reg)
			if err != nil {
				return fmt.Errorf("failed to build handler: %w", err)
			}
			wrapped := server.LoggingMiddleware(handler)

			log.Info("application starting",
				slog.String("version", Version),
				slog.String("commit", Commit),
				slog.String("build_time", BuildTime),
				slog.String("address", cfg.App.Address()),
				slog.String("cache_mode", string(cfg.Cache.Mode)),
				slog.Duration("cache_ttl", cfg.Cache.TTL),
				slog.String("policy_file", cfg.Policy.File),
				slog.String("log_level", cfg.Log.Level),
				slog.String("log_format", cfg.Log.Format))

			if err := http.ListenAndServe(cfg.App.Address(), wrapped); err != nil {
				log.Error("server failed", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "server host address")
	cmd.Flags().StringVar(&port, "port", "", "server port (with or without colon prefix)")
	cmd.Flags().StringVar(&cacheMode, "cache-mode", "", "cache mode: 'none' or 'mem'")
	cmd.Flags().StringVar(&cacheTTL, "cache-ttl", "", "cache TTL duration (e.g. 5m, 1h)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "log format: text or json")
	cmd.Flags().StringVar(&policy, "policy", "", "YAML policy file overriding built-in rules")

	return cmd
}

// loadConfig loads env-backed configuration and applies flag overrides.
func loadConfig(host, port, cacheMode, cacheTTL, logLevel, logFormat, policy string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if host != "" {
		cfg.App.Host = host
	}
	if port != "" {
		if port[0] != ':' {
			port = ":" + port
		}
		cfg.App.Port = port
	}
	if cacheMode != "" {
		cfg.Cache.Mode = config.CacheMode(cacheMode)
	}
	if cacheTTL != "" {
		ttl, parseErr := time.ParseDuration(cacheTTL)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid --cache-ttl value '%s': %w", cacheTTL, parseErr)
		}
		cfg.Cache.TTL = ttl
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if policy != "" {
		cfg.Policy.File = policy
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
