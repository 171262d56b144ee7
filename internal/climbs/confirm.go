package climbs

// Confirmer gates destructive operations behind a user choice.
// Returning false cancels the operation.
type Confirmer interface {
	Confirm(title, message string) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(title, message string) bool

func (f ConfirmerFunc) Confirm(title, message string) bool {
	return f(title, message)
}

// AutoApprove confirms everything. Used by --yes flags and by the TUI,
// which runs its own confirmation screens before calling the service.
var AutoApprove = ConfirmerFunc(func(string, string) bool { return true })
