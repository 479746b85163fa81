package domain

// Account is the balance state of one client.
// Invariant: Available+Held always fits in an Amount.
type Account struct {
	Client    ClientID
	Available Amount
	Held      Amount
	Locked    bool
}

// NewAccount returns an empty, unlocked account.
func NewAccount(client ClientID) *Account {
	return &Account{Client: client}
}

// Total returns Available+Held.
func (a *Account) Total() Amount {
	total, ok := a.Available.CheckedAdd(a.Held)
	if !ok {
		violate(a.Client, "total of available %s and held %s overflows", a.Available, a.Held)
	}
	return total
}

// ValidateActive rejects every operation on a locked account.
func (a *Account) ValidateActive() error {
	if a.Locked {
		return ErrAccountLocked
	}
	return nil
}

// ValidateDeposit checks that crediting amount keeps the total representable.
func (a *Account) ValidateDeposit(amount Amount) error {
	if err := a.ValidateActive(); err != nil {
		return err
	}
	if _, ok := a.Total().CheckedAdd(amount); !ok {
		return ErrAmountOverflow
	}
	return nil
}

// ValidateDebit checks that amount can be taken from available funds.
func (a *Account) ValidateDebit(amount Amount) error {
	if err := a.ValidateActive(); err != nil {
		return err
	}
	if amount.Cmp(a.Available) > 0 {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDeposit credits available funds. Callers validate first.
func (a *Account) ApplyDeposit(amount Amount) {
	if _, ok := a.Total().CheckedAdd(amount); !ok {
		violate(a.Client, "deposit of %s overflows total", amount)
	}
	a.Available, _ = a.Available.CheckedAdd(amount)
}

// ApplyWithdrawal debits available funds. Callers validate first.
func (a *Account) ApplyWithdrawal(amount Amount) {
	available, ok := a.Available.CheckedSub(amount)
	if !ok {
		violate(a.Client, "withdrawal of %s exceeds available %s", amount, a.Available)
	}
	a.Available = available
}

// ApplyHold moves amount from available to held.
func (a *Account) ApplyHold(amount Amount) {
	available, ok := a.Available.CheckedSub(amount)
	if !ok {
		violate(a.Client, "hold of %s exceeds available %s", amount, a.Available)
	}
	held, ok := a.Held.CheckedAdd(amount)
	if !ok {
		violate(a.Client, "hold of %s overflows held %s", amount, a.Held)
	}
	a.Available, a.Held = available, held
}

// ApplyRelease moves amount from held back to available.
func (a *Account) ApplyRelease(amount Amount) {
	held, ok := a.Held.CheckedSub(amount)
	if !ok {
		violate(a.Client, "release of %s exceeds held %s", amount, a.Held)
	}
	available, ok := a.Available.CheckedAdd(amount)
	if !ok {
		violate(a.Client, "release of %s overflows available %s", amount, a.Available)
	}
	a.Available, a.Held = available, held
}

// ApplyChargeback removes amount from held and locks the account for good.
func (a *Account) ApplyChargeback(amount Amount) {
	held, ok := a.Held.CheckedSub(amount)
	if !ok {
		violate(a.Client, "chargeback of %s exceeds held %s", amount, a.Held)
	}
	a.Held = held
	a.Locked = true
}

// Summary returns a point-in-time copy of the account balances.
func (a *Account) Summary() ClientSummary {
	return ClientSummary{
		Client:    a.Client,
		Available: a.Available,
		Held:      a.Held,
		Total:     a.Total(),
		Locked:    a.Locked,
	}
}

// ClientSummary is the reported state of one client.
type ClientSummary struct {
	Client    ClientID
	Available Amount
	Held      Amount
	Total     Amount
	Locked    bool
}
