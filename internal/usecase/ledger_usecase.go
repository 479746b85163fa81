package usecase

import (
	"fmt"
	"slices"

	"github.com/iho/txengine/internal/domain"
	"github.com/iho/txengine/internal/infrastructure/metrics"
)

type depositRecord struct {
	client domain.ClientID
	amount domain.Amount
}

// LedgerConfig configures a LedgerUseCase. All fields are optional.
type LedgerConfig struct {
	Journal Journal
	Metrics *metrics.Metrics
	// StrictDeposits treats a repeated deposit TxID as a broken input
	// guarantee and panics instead of returning domain.ErrDuplicateTx.
	StrictDeposits bool
}

// LedgerUseCase applies ledger events to client accounts and tracks which
// deposits are under dispute. It is not safe for concurrent use.
type LedgerUseCase struct {
	accounts map[domain.ClientID]*domain.Account
	deposits map[domain.TxID]depositRecord
	disputed map[domain.TxID]struct{}

	journal        Journal
	metrics        *metrics.Metrics
	strictDeposits bool
	seq            uint64
}

// NewLedgerUseCase creates an empty ledger.
func NewLedgerUseCase(cfg LedgerConfig) *LedgerUseCase {
	return &LedgerUseCase{
		accounts:       make(map[domain.ClientID]*domain.Account),
		deposits:       make(map[domain.TxID]depositRecord),
		disputed:       make(map[domain.TxID]struct{}),
		journal:        cfg.Journal,
		metrics:        cfg.Metrics,
		strictDeposits: cfg.StrictDeposits,
	}
}

// Process applies a single event. A returned error means the event was
// rejected and the ledger is unchanged.
func (uc *LedgerUseCase) Process(event domain.Event) error {
	var (
		amount domain.Amount
		err    error
	)

	switch e := event.(type) {
	case domain.Deposit:
		amount, err = e.Amount, uc.deposit(e)
	case domain.Withdrawal:
		amount, err = e.Amount, uc.withdraw(e)
	case domain.Dispute:
		amount, err = uc.dispute(e)
	case domain.Resolve:
		amount, err = uc.resolve(e)
	case domain.Chargeback:
		amount, err = uc.chargeback(e)
	default:
		return fmt.Errorf("unsupported event type %T", event)
	}

	if err != nil {
		if uc.metrics != nil {
			uc.metrics.EventsRejected.WithLabelValues(string(event.Kind()), domain.Reason(err)).Inc()
		}
		return err
	}

	uc.seq++
	if uc.journal != nil {
		uc.journal.Record(domain.JournalEntry{
			Seq:    uc.seq,
			Kind:   event.Kind(),
			Client: event.ClientID(),
			Tx:     event.TxID(),
			Amount: amount,
		})
	}
	uc.observe(event.Kind(), amount)

	return nil
}

func (uc *LedgerUseCase) deposit(e domain.Deposit) error {
	account := uc.account(e.Client)
	if err := account.ValidateDeposit(e.Amount); err != nil {
		return err
	}

	if prev, exists := uc.deposits[e.Tx]; exists {
		if uc.strictDeposits {
			panic(domain.InvariantViolation{
				Client: e.Client,
				Detail: fmt.Sprintf("duplicate deposit tx %d, first seen for client %d", e.Tx, prev.client),
			})
		}
		return domain.ErrDuplicateTx
	}

	account.ApplyDeposit(e.Amount)
	uc.deposits[e.Tx] = depositRecord{client: e.Client, amount: e.Amount}
	return nil
}

func (uc *LedgerUseCase) withdraw(e domain.Withdrawal) error {
	account := uc.account(e.Client)
	if err := account.ValidateDebit(e.Amount); err != nil {
		return err
	}

	account.ApplyWithdrawal(e.Amount)
	return nil
}

func (uc *LedgerUseCase) dispute(e domain.Dispute) (domain.Amount, error) {
	amount, err := uc.depositAmount(e.Client, e.Tx)
	if err != nil {
		return domain.Amount{}, err
	}
	if uc.isDisputed(e.Tx) {
		return domain.Amount{}, domain.ErrTxAlreadyDisputed
	}

	account := uc.account(e.Client)
	// A deposit that was already withdrawn cannot be held.
	if err := account.ValidateDebit(amount); err != nil {
		return domain.Amount{}, err
	}

	account.ApplyHold(amount)
	uc.disputed[e.Tx] = struct{}{}
	return amount, nil
}

func (uc *LedgerUseCase) resolve(e domain.Resolve) (domain.Amount, error) {
	amount, account, err := uc.disputedDeposit(e.Client, e.Tx)
	if err != nil {
		return domain.Amount{}, err
	}

	account.ApplyRelease(amount)
	delete(uc.disputed, e.Tx)
	return amount, nil
}

func (uc *LedgerUseCase) chargeback(e domain.Chargeback) (domain.Amount, error) {
	amount, account, err := uc.disputedDeposit(e.Client, e.Tx)
	if err != nil {
		return domain.Amount{}, err
	}

	account.ApplyChargeback(amount)
	delete(uc.disputed, e.Tx)
	return amount, nil
}

// disputedDeposit performs the lookups shared by resolve and chargeback.
func (uc *LedgerUseCase) disputedDeposit(client domain.ClientID, tx domain.TxID) (domain.Amount, *domain.Account, error) {
	amount, err := uc.depositAmount(client, tx)
	if err != nil {
		return domain.Amount{}, nil, err
	}
	if !uc.isDisputed(tx) {
		return domain.Amount{}, nil, domain.ErrTxNotDisputed
	}

	account := uc.account(client)
	if err := account.ValidateActive(); err != nil {
		return domain.Amount{}, nil, err
	}
	return amount, account, nil
}

func (uc *LedgerUseCase) depositAmount(client domain.ClientID, tx domain.TxID) (domain.Amount, error) {
	rec, ok := uc.deposits[tx]
	if !ok || rec.client != client {
		return domain.Amount{}, domain.ErrDepositNotFound
	}
	return rec.amount, nil
}

func (uc *LedgerUseCase) isDisputed(tx domain.TxID) bool {
	_, ok := uc.disputed[tx]
	return ok
}

// account returns the client's account, creating it on first reference.
func (uc *LedgerUseCase) account(client domain.ClientID) *domain.Account {
	account, ok := uc.accounts[client]
	if !ok {
		account = domain.NewAccount(client)
		uc.accounts[client] = account
	}
	return account
}

func (uc *LedgerUseCase) observe(kind domain.EventKind, amount domain.Amount) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.EventsApplied.WithLabelValues(string(kind)).Inc()
	switch kind {
	case domain.EventKindDeposit:
		uc.metrics.DepositAmount.Observe(amount.Decimal().InexactFloat64())
	case domain.EventKindDispute:
		uc.metrics.OpenDisputes.Inc()
	case domain.EventKindResolve:
		uc.metrics.OpenDisputes.Dec()
	case domain.EventKindChargeback:
		uc.metrics.OpenDisputes.Dec()
		uc.metrics.AccountsLocked.Inc()
	}
}

// Account returns the current state of a client, if it was ever referenced.
func (uc *LedgerUseCase) Account(client domain.ClientID) (domain.ClientSummary, bool) {
	account, ok := uc.accounts[client]
	if !ok {
		return domain.ClientSummary{}, false
	}
	return account.Summary(), true
}

// OpenDisputes returns the number of deposits currently under dispute.
func (uc *LedgerUseCase) OpenDisputes() int {
	return len(uc.disputed)
}

// Summaries returns one summary per client ever referenced, ordered by client.
func (uc *LedgerUseCase) Summaries() []domain.ClientSummary {
	summaries := make([]domain.ClientSummary, 0, len(uc.accounts))
	for _, account := range uc.accounts {
		summaries = append(summaries, account.Summary())
	}

	slices.SortFunc(summaries, func(a, b domain.ClientSummary) int {
		return int(a.Client) - int(b.Client)
	})
	return summaries
}
