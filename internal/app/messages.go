package app

// ErrMsg represents an error that occurred while handling navigation
type ErrMsg struct {
	Err error
}

func (e ErrMsg) Error() string {
	return e.Err.Error()
}
