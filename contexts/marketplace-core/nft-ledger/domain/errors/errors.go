package errors

import "errors"

var (
	// unauthorized
	ErrNotOwner         = errors.New("caller is not the token owner")
	ErrNotAuthor        = errors.New("caller is not the token author")
	ErrNotAdmin         = errors.New("caller is not the ledger admin")
	ErrOwnTokenPurchase = errors.New("cannot buy your own token")

	// not found
	ErrTokenNotFound = errors.New("token does not exist")

	// invalid state
	ErrLedgerPaused      = errors.New("ledger is paused")
	ErrAlreadyListed     = errors.New("token is already listed for sale")
	ErrNotListed         = errors.New("token is not listed for sale")
	ErrListedForTransfer = errors.New("cancel sale before transfer")
	ErrNoFeesToWithdraw  = errors.New("no fees to withdraw")

	// invalid amount
	ErrMintPriceMismatch = errors.New("payment must equal the mint price")
	ErrSalePriceMismatch = errors.New("payment must equal the listed price")
	ErrPaymentNotAllowed = errors.New("no payment should be attached")
	ErrInvalidPrice      = errors.New("price must be greater than 0")

	// invalid input
	ErrSelfTransfer         = errors.New("cannot transfer to yourself")
	ErrSameAuthor           = errors.New("new author matches the current author")
	ErrSameAdmin            = errors.New("new admin matches the current admin")
	ErrInvalidAddress       = errors.New("address is required")
	ErrNegativeMintPrice    = errors.New("mint price cannot be negative")
	ErrFeePercentOutOfRange = errors.New("royalty and platform fee percents must be non-negative and sum below 100")
)

// Kind buckets a ledger error into its taxonomy class. Transport layers use
// it to pick status codes; callers should still match sentinels for the
// specific cause.
type ErrorKind string

const (
	KindUnauthorized  ErrorKind = "unauthorized"
	KindNotFound      ErrorKind = "not_found"
	KindInvalidState  ErrorKind = "invalid_state"
	KindInvalidAmount ErrorKind = "invalid_amount"
	KindInvalidInput  ErrorKind = "invalid_input"
	KindInternal      ErrorKind = "internal"
)

func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrNotOwner),
		errors.Is(err, ErrNotAuthor),
		errors.Is(err, ErrNotAdmin),
		errors.Is(err, ErrOwnTokenPurchase):
		return KindUnauthorized
	case errors.Is(err, ErrTokenNotFound):
		return KindNotFound
	case errors.Is(err, ErrLedgerPaused),
		errors.Is(err, ErrAlreadyListed),
		errors.Is(err, ErrNotListed),
		errors.Is(err, ErrListedForTransfer),
		errors.Is(err, ErrNoFeesToWithdraw):
		return KindInvalidState
	case errors.Is(err, ErrMintPriceMismatch),
		errors.Is(err, ErrSalePriceMismatch),
		errors.Is(err, ErrPaymentNotAllowed),
		errors.Is(err, ErrInvalidPrice):
		return KindInvalidAmount
	case errors.Is(err, ErrSelfTransfer),
		errors.Is(err, ErrSameAuthor),
		errors.Is(err, ErrSameAdmin),
		errors.Is(err, ErrInvalidAddress),
		errors.Is(err, ErrNegativeMintPrice),
		errors.Is(err, ErrFeePercentOutOfRange):
		return KindInvalidInput
	default:
		return KindInternal
	}
}
