package order

// MissingFieldError signals that a required webhook field failed the
// presence check. It is always translated to a 400, never to a 500.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}
