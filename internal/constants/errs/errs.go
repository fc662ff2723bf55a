package errs

import (
	"github.com/pkg/errors"
)

var (
	ErrFilesystem = errors.New("filesystem i/o error")
	ErrConfig     = errors.New("invalid configuration")
)

const (
	ExitOK         = 0
	ExitFilesystem = 1
	ExitConfig     = 2
)

// ExitCode maps an error chain to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrConfig):
		return ExitConfig
	default:
		return ExitFilesystem
	}
}

// Filesystem marks err as a filesystem failure on path and records the call stack.
func Filesystem(err error, op string, path string) error {
	return errors.Wrapf(&fsError{err: err}, "%s %s", op, path)
}

type fsError struct {
	err error
}

func (e *fsError) Error() string {
	return e.err.Error()
}

func (e *fsError) Unwrap() error {
	return e.err
}

func (e *fsError) Is(target error) bool {
	return target == ErrFilesystem
}
