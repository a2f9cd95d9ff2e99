package vault

import "github.com/cockroachdb/errors"

var (
	// ErrAssetNotSupported is returned if an operation references an Asset that is not eligible for custody.
	ErrAssetNotSupported = errors.New("asset is not supported by the vault")
	// ErrZeroAmount is returned if the requested amount is not strictly positive.
	ErrZeroAmount = errors.New("amount must be strictly positive")
	// ErrInsufficientBalance is returned if a withdrawal exceeds the recorded balance of the owner.
	ErrInsufficientBalance = errors.New("withdrawal exceeds the recorded balance")
	// ErrTransferFailed is returned if the TransferGateway reported a failure while moving funds.
	ErrTransferFailed = errors.New("transfer gateway reported a failure")
	// ErrVaultLocked is returned if a mutating operation is requested while another operation is still in progress.
	ErrVaultLocked = errors.New("vault operation already in progress")
)
