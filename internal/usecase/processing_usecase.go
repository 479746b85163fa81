package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/txengine/internal/domain"
	"github.com/iho/txengine/internal/infrastructure/metrics"
)

// ProcessingUseCase drives one run: it feeds every input event to the
// ledger, then writes and exports the resulting summaries.
type ProcessingUseCase struct {
	ledger        *LedgerUseCase
	writer        SummaryWriter
	exporters     []SummaryExporter
	idGen         IDGenerator
	logger        zerolog.Logger
	metrics       *metrics.Metrics
	exportTimeout time.Duration
}

// ProcessingConfig for ProcessingUseCase.
type ProcessingConfig struct {
	Ledger        *LedgerUseCase
	Writer        SummaryWriter
	Exporters     []SummaryExporter
	IDGen         IDGenerator
	Logger        zerolog.Logger
	Metrics       *metrics.Metrics
	ExportTimeout time.Duration
}

// RunReport summarizes a finished run.
type RunReport struct {
	RunID     string
	Records   int
	Applied   int
	Rejected  int
	Malformed int
	Clients   int
	Duration  time.Duration
}

// NewProcessingUseCase creates a new ProcessingUseCase.
func NewProcessingUseCase(cfg ProcessingConfig) *ProcessingUseCase {
	if cfg.Ledger == nil {
		cfg.Ledger = NewLedgerUseCase(LedgerConfig{Metrics: cfg.Metrics})
	}
	if cfg.ExportTimeout == 0 {
		cfg.ExportTimeout = 30 * time.Second
	}

	return &ProcessingUseCase{
		ledger:        cfg.Ledger,
		writer:        cfg.Writer,
		exporters:     cfg.Exporters,
		idGen:         cfg.IDGen,
		logger:        cfg.Logger,
		metrics:       cfg.Metrics,
		exportTimeout: cfg.ExportTimeout,
	}
}

// Ledger returns the ledger the run applies events to.
func (uc *ProcessingUseCase) Ledger() *LedgerUseCase {
	return uc.ledger
}

// Run consumes source until io.EOF. Rejected events and malformed records
// are logged and skipped; only source, writer and exporter failures abort.
func (uc *ProcessingUseCase) Run(ctx context.Context, source EventSource) (*RunReport, error) {
	start := time.Now()
	report := &RunReport{}
	if uc.idGen != nil {
		report.RunID = uc.idGen.Generate()
	}
	log := uc.logger.With().Str("run_id", report.RunID).Logger()

	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		event, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		report.Records++

		var recErr *domain.RecordError
		if errors.As(err, &recErr) {
			report.Malformed++
			if uc.metrics != nil {
				uc.metrics.RecordsMalformed.Inc()
			}
			log.Warn().Err(recErr.Err).Int("line", recErr.Line).Msg("failed to parse record")
			continue
		}
		if err != nil {
			return report, fmt.Errorf("read input: %w", err)
		}

		if err := uc.ledger.Process(event); err != nil {
			report.Rejected++
			log.Warn().
				Err(err).
				Int("line", source.Line()).
				Str("kind", string(event.Kind())).
				Uint16("client", uint16(event.ClientID())).
				Uint32("tx", uint32(event.TxID())).
				Str("reason", domain.Reason(err)).
				Msg("failed to process event")
			continue
		}
		report.Applied++
	}

	summaries := uc.ledger.Summaries()
	report.Clients = len(summaries)

	if uc.writer != nil {
		if err := uc.writer.Write(summaries); err != nil {
			return report, fmt.Errorf("write summaries: %w", err)
		}
	}

	exportErr := uc.export(ctx, log, report.RunID, summaries)

	report.Duration = time.Since(start)
	if uc.metrics != nil {
		uc.metrics.RunDuration.Observe(report.Duration.Seconds())
	}

	log.Info().
		Int("records", report.Records).
		Int("applied", report.Applied).
		Int("rejected", report.Rejected).
		Int("malformed", report.Malformed).
		Int("clients", report.Clients).
		Dur("duration", report.Duration).
		Msg("run finished")

	return report, exportErr
}

// export hands the summaries to every exporter; all are attempted.
func (uc *ProcessingUseCase) export(ctx context.Context, log zerolog.Logger, runID string, summaries []domain.ClientSummary) error {
	var errs []error

	for _, exporter := range uc.exporters {
		start := time.Now()
		exportCtx, cancel := context.WithTimeout(ctx, uc.exportTimeout)
		err := exporter.Export(exportCtx, runID, summaries)
		cancel()

		if uc.metrics != nil {
			uc.metrics.ExportDuration.WithLabelValues(exporter.Name()).Observe(time.Since(start).Seconds())
		}
		if err != nil {
			if uc.metrics != nil {
				uc.metrics.ExportErrors.WithLabelValues(exporter.Name()).Inc()
			}
			log.Error().Err(err).Str("sink", exporter.Name()).Msg("failed to export summaries")
			errs = append(errs, fmt.Errorf("export to %s: %w", exporter.Name(), err))
			continue
		}

		log.Info().Str("sink", exporter.Name()).Int("clients", len(summaries)).Msg("summaries exported")
	}

	return errors.Join(errs...)
}
