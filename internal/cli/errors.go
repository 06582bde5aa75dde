package cli

import (
	"errors"
	"fmt"
)

var errNoContainer = errors.New("guardkit is not initialized")

// ExitCodeError carries a child process exit status back to main.
// It prints nothing; the child's own output already explains the failure.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
