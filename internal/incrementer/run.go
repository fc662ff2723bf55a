package incrementer

import (
	"fmt"
	"io"

	"github.com/andynikk/counterfile/internal/constants"
	"github.com/andynikk/counterfile/internal/constants/errs"
	"github.com/andynikk/counterfile/internal/environment"
)

// Run is the body of a counter tool's main. It returns the process exit code.
func Run(kind constants.CounterKind, args []string, stdout, stderr io.Writer) int {
	cfg, err := environment.SetConfigCounter(kind, args)
	if err != nil {
		fmt.Fprintf(stderr, "%+v\n", err)
		return errs.ExitCode(err)
	}

	constants.Logger = constants.NewLogger(stderr, cfg.LogLevel)
	constants.Logger.Debug().Str("file", cfg.StoreFile).Str("counter", kind.Label).Msg("counter file resolved")

	inc := New(kind, cfg.StoreFile)
	inc.Out = stdout
	if _, err := inc.Increment(); err != nil {
		constants.Logger.ErrorLog(err)
		fmt.Fprintf(stderr, "%+v\n", err)
		return errs.ExitCode(err)
	}

	return errs.ExitOK
}
