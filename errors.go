package near2far

import "fmt"

// SetupError reports an invalid projector or observation-grid configuration,
// identifying the offending monitor or frequency where one is involved.
type SetupError struct {
	Msg string
}

func (e *SetupError) Error() string { return e.Msg }

func setupErrorf(format string, args ...any) *SetupError {
	return &SetupError{Msg: fmt.Sprintf(format, args...)}
}
