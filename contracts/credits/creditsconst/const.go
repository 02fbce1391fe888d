package creditsconst

// Credits contract errors.
const (
	// ErrTransferFailed is returned when a system-initiated transfer can't
	// be completed, usually because the payer balance is insufficient.
	ErrTransferFailed = "can't transfer credits"
	// ErrNegativeAmount is returned on transfers of negative amounts.
	ErrNegativeAmount = "negative amount"
)
