// Command life-cheatkey runs the 인생 치트키 web application.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/justestif/go-life-cheatkey/internal/ai"
	"github.com/justestif/go-life-cheatkey/internal/config"
	"github.com/justestif/go-life-cheatkey/internal/logging"
	"github.com/justestif/go-life-cheatkey/internal/mood"
	"github.com/justestif/go-life-cheatkey/internal/storage"
	"github.com/justestif/go-life-cheatkey/internal/web"
	webfs "github.com/justestif/go-life-cheatkey/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configFile string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), v, configFile)
		},
	}

	root := &cobra.Command{
		Use:           "life-cheatkey",
		Short:         "인생 치트키: mood analysis, habits, AI writing, calculators and games",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          serveCmd.RunE,
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("env", "production", "Environment (production or development)")
	_ = v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("env", root.PersistentFlags().Lookup("env"))

	for _, cmd := range []*cobra.Command{root, serveCmd} {
		cmd.Flags().String("addr", ":8080", "Listen address")
		cmd.Flags().String("storage", config.BackendMemory, "Habit storage backend (memory, file, redis, postgres)")
	}
	// Bound once the running command is known, so root and serve share keys.
	bindServeFlags := func(cmd *cobra.Command, _ []string) error {
		if err := v.BindPFlag("addr", cmd.Flags().Lookup("addr")); err != nil {
			return err
		}
		return v.BindPFlag("storage.backend", cmd.Flags().Lookup("storage"))
	}
	root.PreRunE = bindServeFlags
	serveCmd.PreRunE = bindServeFlags

	root.AddCommand(serveCmd, newAnalyzeCmd())
	return root
}

func serve(ctx context.Context, v *viper.Viper, configFile string) error {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	backend, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Warn("closing storage", zap.Error(err))
		}
	}()

	templates, err := fs.Sub(webfs.TemplatesFS, "templates")
	if err != nil {
		return fmt.Errorf("creating templates filesystem: %w", err)
	}

	static, err := fs.Sub(webfs.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("creating static filesystem: %w", err)
	}

	serverCfg := web.ServerConfig{
		Addr:            cfg.Addr,
		TemplatesFS:     templates,
		StaticFS:        static,
		Logger:          logger,
		Analyzer:        mood.NewAnalyzer(mood.DefaultConfig(), nil, mood.WithLogger(logger)),
		Store:           backend.Store,
		AIRatePerMinute: cfg.AI.RatePerMinute,
	}
	if backend.DB != nil {
		serverCfg.Visitors = backend.DB.Visitors()
	}

	client, err := ai.NewClient(ai.Config{
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
		Model:       cfg.AI.Model,
		Timeout:     cfg.AI.Timeout,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
	})
	if err != nil {
		logger.Warn("AI generators disabled", zap.Error(err))
	} else {
		serverCfg.Generator = ai.NewGenerator(client, logger)
		logger.Info("AI generators enabled", zap.String("model", cfg.AI.Model))
	}

	server, err := web.NewServer(serverCfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run()
}

func newAnalyzeCmd() *cobra.Command {
	var (
		seed    int64
		samples int
		card    string
	)

	cmd := &cobra.Command{
		Use:   "analyze <image>",
		Short: "Analyze the colour mood of an image and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening image: %w", err)
			}
			defer f.Close()

			var src rand.Source
			if cmd.Flags().Changed("seed") {
				src = rand.NewSource(seed)
			} else {
				src = rand.NewSource(time.Now().UnixNano())
			}

			res, err := mood.NewAnalyzer(mood.DefaultConfig(), src).AnalyzeWithSamples(f, samples)
			if err != nil {
				return err
			}

			if card != "" {
				if err := writeCard(card, res); err != nil {
					return err
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible results")
	cmd.Flags().IntVar(&samples, "samples", mood.DefaultSampleCount, "Number of pixels to sample")
	cmd.Flags().StringVar(&card, "card", "", "Write a PNG share card to this path")
	return cmd
}

func writeCard(path string, res *mood.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating card: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing card: %w", cerr)
		}
	}()

	if err := mood.RenderCard(f, res); err != nil {
		return fmt.Errorf("rendering card: %w", err)
	}
	return nil
}
