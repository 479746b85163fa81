package domain

import "testing"

func TestNewEvent(t *testing.T) {
	amount := MustParseAmount("2.5")

	tests := []struct {
		kind EventKind
		want Event
	}{
		{EventKindDeposit, Deposit{Client: 1, Tx: 2, Amount: amount}},
		{EventKindWithdrawal, Withdrawal{Client: 1, Tx: 2, Amount: amount}},
		{EventKindDispute, Dispute{Client: 1, Tx: 2}},
		{EventKindResolve, Resolve{Client: 1, Tx: 2}},
		{EventKindChargeback, Chargeback{Client: 1, Tx: 2}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := NewEvent(tt.kind, 1, 2, amount)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("NewEvent(%s) = %#v, want %#v", tt.kind, got, tt.want)
			}
			if got.Kind() != tt.kind || got.ClientID() != 1 || got.TxID() != 2 {
				t.Fatalf("unexpected accessors on %#v", got)
			}
		})
	}

	if _, err := NewEvent("refund", 1, 2, amount); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestParseEventKind(t *testing.T) {
	if k, err := ParseEventKind("chargeback"); err != nil || k != EventKindChargeback {
		t.Fatalf("expected chargeback, got %q (%v)", k, err)
	}
	if _, err := ParseEventKind("Deposit"); err == nil {
		t.Fatal("expected error for non-canonical kind")
	}
	if !EventKindWithdrawal.RequiresAmount() || EventKindDispute.RequiresAmount() {
		t.Fatal("unexpected RequiresAmount results")
	}
}

func TestParseIDs(t *testing.T) {
	if id, err := ParseClientID("65535"); err != nil || id != 65535 {
		t.Fatalf("expected 65535, got %d (%v)", id, err)
	}
	if _, err := ParseClientID("65536"); err == nil {
		t.Fatal("expected range error for client id")
	}
	if id, err := ParseTxID("4294967295"); err != nil || id != 4294967295 {
		t.Fatalf("expected max tx id, got %d (%v)", id, err)
	}
	if _, err := ParseTxID("-1"); err == nil {
		t.Fatal("expected error for negative tx id")
	}
}

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrInsufficientFunds, "insufficient_funds"},
		{ErrTxNotDisputed, "tx_not_disputed"},
		{&RecordError{Line: 3, Err: ErrTooPrecise}, "amount_too_precise"},
	}

	for _, tt := range tests {
		if got := Reason(tt.err); got != tt.want {
			t.Fatalf("Reason(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
