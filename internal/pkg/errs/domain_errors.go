package errs

// Error categories shared by every layer. Concrete errors are marked with one of
// these so handlers can map them to a response without knowing the origin.
var (
	ErrValidation       = New("validation error")
	ErrNotFound         = New("not found")
	ErrExpired          = New("expired")
	ErrAlreadyCompleted = New("already completed")
	ErrRevoked          = New("revoked")
	ErrStorage          = New("storage error")
	ErrRender           = New("render error")
	ErrConflict         = New("conflict")
)
