package entities

import "time"

// Account is a wallet address registered with the marketplace. The address
// is the identity every ledger operation is attributed to.
type Account struct {
	Address     string
	DisplayName string
	CreatedAt   time.Time
}
