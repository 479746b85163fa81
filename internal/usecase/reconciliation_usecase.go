package usecase

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/txengine/internal/domain"
)

// ErrInconsistentLedger is returned when reported balances disagree with
// the applied event flows.
var ErrInconsistentLedger = errors.New("ledger is inconsistent: balances do not match event flows")

type clientFlows struct {
	deposited   decimal.Decimal
	withdrawn   decimal.Decimal
	chargedBack decimal.Decimal
	held        decimal.Decimal
}

// ReconciliationUseCase keeps an independent, arbitrary-precision record of
// every applied event and checks reported balances against it. It
// implements Journal.
type ReconciliationUseCase struct {
	flows map[domain.ClientID]*clientFlows
}

// NewReconciliationUseCase creates a new reconciliation use case
func NewReconciliationUseCase() *ReconciliationUseCase {
	return &ReconciliationUseCase{
		flows: make(map[domain.ClientID]*clientFlows),
	}
}

// Record implements Journal.
func (uc *ReconciliationUseCase) Record(entry domain.JournalEntry) {
	f, ok := uc.flows[entry.Client]
	if !ok {
		f = &clientFlows{}
		uc.flows[entry.Client] = f
	}

	amount := entry.Amount.Decimal()
	switch entry.Kind {
	case domain.EventKindDeposit:
		f.deposited = f.deposited.Add(amount)
	case domain.EventKindWithdrawal:
		f.withdrawn = f.withdrawn.Add(amount)
	case domain.EventKindDispute:
		f.held = f.held.Add(amount)
	case domain.EventKindResolve:
		f.held = f.held.Sub(amount)
	case domain.EventKindChargeback:
		f.held = f.held.Sub(amount)
		f.chargedBack = f.chargedBack.Add(amount)
	}
}

// ReconciliationResult represents the result of a reconciliation check
type ReconciliationResult struct {
	Client          domain.ClientID
	RecordedTotal   decimal.Decimal
	CalculatedTotal decimal.Decimal
	RecordedHeld    decimal.Decimal
	CalculatedHeld  decimal.Decimal
	Difference      decimal.Decimal
	IsReconciled    bool
}

// ReconcileAccount compares one reported summary with the recorded flows.
// Total must equal deposits minus withdrawals minus chargebacks.
func (uc *ReconciliationUseCase) ReconcileAccount(summary domain.ClientSummary) *ReconciliationResult {
	f, ok := uc.flows[summary.Client]
	if !ok {
		f = &clientFlows{}
	}

	calculated := f.deposited.Sub(f.withdrawn).Sub(f.chargedBack)
	recordedTotal := summary.Total.Decimal()
	recordedHeld := summary.Held.Decimal()
	recordedAvailable := summary.Available.Decimal()
	reconciled := recordedTotal.Equal(calculated) &&
		recordedHeld.Equal(f.held) &&
		recordedAvailable.Add(recordedHeld).Equal(recordedTotal)

	return &ReconciliationResult{
		Client:          summary.Client,
		RecordedTotal:   recordedTotal,
		CalculatedTotal: calculated,
		RecordedHeld:    recordedHeld,
		CalculatedHeld:  f.held,
		Difference:      recordedTotal.Sub(calculated),
		IsReconciled:    reconciled,
	}
}

// ReconciliationReport represents a full reconciliation report
type ReconciliationReport struct {
	TotalAccounts      int
	ReconciledAccounts int
	Discrepancies      []*ReconciliationResult
	MissingClients     []domain.ClientID
	LedgerConsistent   bool
	CheckedAt          time.Time
}

// GenerateReconciliationReport reconciles every summary. Clients that have
// recorded flows but no summary are reported as missing.
func (uc *ReconciliationUseCase) GenerateReconciliationReport(summaries []domain.ClientSummary) *ReconciliationReport {
	report := &ReconciliationReport{
		TotalAccounts: len(summaries),
		Discrepancies: make([]*ReconciliationResult, 0),
		CheckedAt:     time.Now().UTC(),
	}

	seen := make(map[domain.ClientID]struct{}, len(summaries))
	for _, summary := range summaries {
		seen[summary.Client] = struct{}{}

		result := uc.ReconcileAccount(summary)
		if result.IsReconciled {
			report.ReconciledAccounts++
		} else {
			report.Discrepancies = append(report.Discrepancies, result)
		}
	}

	for client := range uc.flows {
		if _, ok := seen[client]; !ok {
			report.MissingClients = append(report.MissingClients, client)
		}
	}
	slices.Sort(report.MissingClients)

	report.LedgerConsistent = len(report.Discrepancies) == 0 && len(report.MissingClients) == 0
	return report
}

// CheckLedgerConsistency returns ErrInconsistentLedger, with details, when
// any summary disagrees with the recorded flows.
func (uc *ReconciliationUseCase) CheckLedgerConsistency(summaries []domain.ClientSummary) error {
	report := uc.GenerateReconciliationReport(summaries)
	if report.LedgerConsistent {
		return nil
	}

	if len(report.Discrepancies) > 0 {
		d := report.Discrepancies[0]
		return fmt.Errorf(
			"%w: %d discrepancies, first for client %d: recorded=%s calculated=%s difference=%s",
			ErrInconsistentLedger,
			len(report.Discrepancies),
			d.Client,
			d.RecordedTotal.String(),
			d.CalculatedTotal.String(),
			d.Difference.String(),
		)
	}

	return fmt.Errorf("%w: %d clients missing from summaries", ErrInconsistentLedger, len(report.MissingClients))
}
