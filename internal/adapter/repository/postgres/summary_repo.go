package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	"github.com/iho/txengine/internal/domain"
)

const insertRunQuery = `
	INSERT INTO ledger_runs (id, clients, exported_at)
	VALUES ($1, $2, $3)
`

var balanceColumns = []string{"run_id", "client_id", "available", "held", "total", "locked"}

// SummaryRepository stores the client summaries of a run. It implements
// usecase.SummaryExporter.
type SummaryRepository struct {
	txManager *TxManager
	retrier   *Retrier
	now       func() time.Time
}

// NewSummaryRepository creates a new SummaryRepository.
func NewSummaryRepository(txManager *TxManager, retrier *Retrier) *SummaryRepository {
	if retrier == nil {
		retrier = NewRetrier(zerolog.Nop())
	}

	return &SummaryRepository{
		txManager: txManager,
		retrier:   retrier,
		now:       time.Now,
	}
}

// Name implements usecase.SummaryExporter.
func (r *SummaryRepository) Name() string {
	return "postgres"
}

// Export writes the run row and one balance row per client in a single
// transaction, retrying on deadlocks and serialization failures.
func (r *SummaryRepository) Export(ctx context.Context, runID string, summaries []domain.ClientSummary) error {
	return r.retrier.Retry(ctx, func() error {
		return r.txManager.InTx(ctx, func(tx pgx.Tx) error {
			return r.insertRun(ctx, tx, runID, summaries)
		})
	})
}

func (r *SummaryRepository) insertRun(ctx context.Context, tx pgx.Tx, runID string, summaries []domain.ClientSummary) error {
	if _, err := tx.Exec(ctx, insertRunQuery, runID, len(summaries), r.now().UTC()); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	rows := make([][]any, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []any{
			runID,
			int32(s.Client),
			toNumeric(s.Available),
			toNumeric(s.Held),
			toNumeric(s.Total),
			s.Locked,
		})
	}

	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"client_balances"}, balanceColumns, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("copy balances: %w", err)
	}
	return nil
}

func toNumeric(a domain.Amount) pgtype.Numeric {
	d := a.Decimal()
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}
