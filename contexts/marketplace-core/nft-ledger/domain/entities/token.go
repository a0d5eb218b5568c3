package entities

import "time"

// Token is one non-fungible asset record. Metadata is immutable after mint;
// Author receives royalties independent of current ownership.
type Token struct {
	TokenID   uint64
	Metadata  string
	Author    string
	Owner     string
	Price     int64
	ForSale   bool
	MintedAt  time.Time
	UpdatedAt time.Time
}

// Listed reports whether the token currently occupies a sale slot.
// Invariant: ForSale implies Price > 0.
func (t Token) Listed() bool {
	return t.ForSale && t.Price > 0
}
