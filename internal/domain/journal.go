package domain

// JournalEntry describes one successfully applied event. For disputes,
// resolves and chargebacks Amount is the amount of the referenced deposit.
type JournalEntry struct {
	Seq    uint64
	Kind   EventKind
	Client ClientID
	Tx     TxID
	Amount Amount
}
