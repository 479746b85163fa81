package domain

import "strconv"

// ClientID identifies a client account.
type ClientID uint16

// TxID identifies a transaction. Deposit TxIDs are unique across the input.
type TxID uint32

// ParseClientID parses a decimal client identifier.
func ParseClientID(s string) (ClientID, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return ClientID(n), nil
}

// ParseTxID parses a decimal transaction identifier.
func ParseTxID(s string) (TxID, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return TxID(n), nil
}

func (id ClientID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func (id TxID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
