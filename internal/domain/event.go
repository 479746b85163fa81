package domain

import "fmt"

// EventKind names the type of a ledger event as it appears in input records.
type EventKind string

const (
	EventKindDeposit    EventKind = "deposit"
	EventKindWithdrawal EventKind = "withdrawal"
	EventKindDispute    EventKind = "dispute"
	EventKindResolve    EventKind = "resolve"
	EventKindChargeback EventKind = "chargeback"
)

// ParseEventKind maps a record type field to an EventKind.
func ParseEventKind(s string) (EventKind, error) {
	switch k := EventKind(s); k {
	case EventKindDeposit, EventKindWithdrawal, EventKindDispute, EventKindResolve, EventKindChargeback:
		return k, nil
	default:
		return "", fmt.Errorf("unknown event type %q", s)
	}
}

// RequiresAmount reports whether events of this kind carry an amount.
func (k EventKind) RequiresAmount() bool {
	return k == EventKindDeposit || k == EventKindWithdrawal
}

// Event is one entry of the input log. The set of implementations is closed.
type Event interface {
	Kind() EventKind
	ClientID() ClientID
	TxID() TxID
	event()
}

// Deposit credits the client's available funds.
type Deposit struct {
	Client ClientID
	Tx     TxID
	Amount Amount
}

// Withdrawal debits the client's available funds.
type Withdrawal struct {
	Client ClientID
	Tx     TxID
	Amount Amount
}

// Dispute holds the funds of an earlier deposit.
type Dispute struct {
	Client ClientID
	Tx     TxID
}

// Resolve releases the funds held by a dispute.
type Resolve struct {
	Client ClientID
	Tx     TxID
}

// Chargeback removes the funds held by a dispute and locks the account.
type Chargeback struct {
	Client ClientID
	Tx     TxID
}

func (Deposit) Kind() EventKind    { return EventKindDeposit }
func (Withdrawal) Kind() EventKind { return EventKindWithdrawal }
func (Dispute) Kind() EventKind    { return EventKindDispute }
func (Resolve) Kind() EventKind    { return EventKindResolve }
func (Chargeback) Kind() EventKind { return EventKindChargeback }

func (e Deposit) ClientID() ClientID    { return e.Client }
func (e Withdrawal) ClientID() ClientID { return e.Client }
func (e Dispute) ClientID() ClientID    { return e.Client }
func (e Resolve) ClientID() ClientID    { return e.Client }
func (e Chargeback) ClientID() ClientID { return e.Client }

func (e Deposit) TxID() TxID    { return e.Tx }
func (e Withdrawal) TxID() TxID { return e.Tx }
func (e Dispute) TxID() TxID    { return e.Tx }
func (e Resolve) TxID() TxID    { return e.Tx }
func (e Chargeback) TxID() TxID { return e.Tx }

func (Deposit) event()    {}
func (Withdrawal) event() {}
func (Dispute) event()    {}
func (Resolve) event()    {}
func (Chargeback) event() {}

// NewEvent builds the event of the given kind. The amount is ignored for
// kinds that do not carry one.
func NewEvent(kind EventKind, client ClientID, tx TxID, amount Amount) (Event, error) {
	switch kind {
	case EventKindDeposit:
		return Deposit{Client: client, Tx: tx, Amount: amount}, nil
	case EventKindWithdrawal:
		return Withdrawal{Client: client, Tx: tx, Amount: amount}, nil
	case EventKindDispute:
		return Dispute{Client: client, Tx: tx}, nil
	case EventKindResolve:
		return Resolve{Client: client, Tx: tx}, nil
	case EventKindChargeback:
		return Chargeback{Client: client, Tx: tx}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", kind)
	}
}
