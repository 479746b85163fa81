package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/txengine/internal/adapter/csv"
	postgresRepo "github.com/iho/txengine/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/txengine/internal/adapter/repository/redis"
	"github.com/iho/txengine/internal/infrastructure/config"
	"github.com/iho/txengine/internal/infrastructure/logger"
	"github.com/iho/txengine/internal/infrastructure/metrics"
	"github.com/iho/txengine/internal/infrastructure/postgres"
	"github.com/iho/txengine/internal/infrastructure/redis"
	"github.com/iho/txengine/internal/usecase"
)

type options struct {
	logLevel       string
	logFormat      string
	reconcile      bool
	strictDeposits bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "txengine [flags] <input.csv>",
		Short: "Replay a ledger event log and report client balances",
		Long:  `Reads deposits, withdrawals, disputes, resolves and chargebacks from a CSV file and writes the final balance of every client to stdout as CSV.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError(cmd, fmt.Errorf("no path to input given: expected 1 argument, got %d", len(args)))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return err
			}

			log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: stderr})
			if err := run(cmd.Context(), cfg, opts, args[0], stdout, log); err != nil {
				log.Error().Err(err).Msg("run failed")
				return err
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: console or json (overrides LOG_FORMAT)")
	rootCmd.Flags().BoolVar(&opts.reconcile, "reconcile", false, "Check final balances against the applied events and fail on mismatch")
	rootCmd.Flags().BoolVar(&opts.strictDeposits, "strict-deposits", false, "Abort on a repeated deposit transaction ID (overrides STRICT_DEPOSITS)")

	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(usageError)
	rootCmd.AddCommand(newMigrateCmd(opts, stderr))
	return rootCmd
}

func newMigrateCmd(opts *options, stderr io.Writer) *cobra.Command {
	var down bool

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database migrations used by the Postgres exporter",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError(cmd, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return err
			}
			log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: stderr})

			if cfg.DatabaseURL == "" {
				err := errors.New("DATABASE_URL is not set")
				log.Error().Err(err).Msg("cannot run migrations")
				return err
			}

			if down {
				err = postgres.RunMigrationsDown(cfg.DatabaseURL)
			} else {
				err = postgres.RunMigrations(cfg.DatabaseURL)
			}
			if err != nil {
				log.Error().Err(err).Msg("migration failed")
				return err
			}
			return nil
		},
	}

	migrateCmd.Flags().BoolVar(&down, "down", false, "Roll back the most recent migration instead of applying pending ones")
	return migrateCmd
}

// usageError reports a command-line mistake on stderr together with the
// usage text. Failures inside RunE are logged there instead.
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n\n%s", err, cmd.UsageString())
	return err
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}
	if f := cmd.Flags().Lookup("strict-deposits"); f != nil && f.Changed {
		cfg.StrictDeposits = opts.strictDeposits
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, opts *options, inputPath string, stdout io.Writer, log zerolog.Logger) error {
	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer input.Close()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	exporters, closeExporters, err := buildExporters(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeExporters()

	var reconciliation *usecase.ReconciliationUseCase
	ledgerCfg := usecase.LedgerConfig{Metrics: m, StrictDeposits: cfg.StrictDeposits}
	if opts.reconcile {
		reconciliation = usecase.NewReconciliationUseCase()
		ledgerCfg.Journal = reconciliation
	}
	ledger := usecase.NewLedgerUseCase(ledgerCfg)

	processing := usecase.NewProcessingUseCase(usecase.ProcessingConfig{
		Ledger:        ledger,
		Writer:        csv.NewSummaryWriter(stdout),
		Exporters:     exporters,
		IDGen:         postgresRepo.NewULIDGenerator(),
		Logger:        log,
		Metrics:       m,
		ExportTimeout: cfg.ExportTimeout,
	})

	report, runErr := processing.Run(ctx, csv.NewEventReader(input))

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile, reg); err != nil {
			log.Warn().Err(err).Str("path", cfg.MetricsTextfile).Msg("failed to write metrics textfile")
		}
	}
	if runErr != nil {
		return runErr
	}

	if reconciliation != nil {
		summaries := ledger.Summaries()
		rec := reconciliation.GenerateReconciliationReport(summaries)
		log.Info().
			Str("run_id", report.RunID).
			Int("accounts", rec.TotalAccounts).
			Int("reconciled", rec.ReconciledAccounts).
			Bool("consistent", rec.LedgerConsistent).
			Msg("reconciliation finished")
		if err := reconciliation.CheckLedgerConsistency(summaries); err != nil {
			return err
		}
	}

	return nil
}

// buildExporters connects the optional summary sinks configured in cfg.
func buildExporters(ctx context.Context, cfg *config.Config, log zerolog.Logger) ([]usecase.SummaryExporter, func(), error) {
	var (
		exporters []usecase.SummaryExporter
		closers   []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.DatabaseURL != "" {
		pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
			DatabaseURL:    cfg.DatabaseURL,
			MaxConns:       cfg.DatabaseMaxConns,
			MinConns:       cfg.DatabaseMinConns,
			ConnectTimeout: cfg.DatabaseTimeout,
		})
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		closers = append(closers, pool.Close)
		exporters = append(exporters, postgresRepo.NewSummaryRepository(postgresRepo.NewTxManager(pool), postgresRepo.NewRetrier(log)))
		log.Debug().Msg("postgres exporter enabled")
	}

	if cfg.RedisURL != "" {
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		closers = append(closers, func() { _ = client.Close() })
		exporters = append(exporters, redisRepo.NewSummaryCache(client, cfg.RedisSummaryTTL))
		log.Debug().Msg("redis exporter enabled")
	}

	return exporters, closeAll, nil
}
