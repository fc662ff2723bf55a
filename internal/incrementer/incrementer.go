// Package incrementer advances a counter file by one and reports the new value.
package incrementer

import (
	"fmt"
	"io"
	"os"

	"github.com/andynikk/counterfile/internal/constants"
	"github.com/andynikk/counterfile/internal/models"
	"github.com/andynikk/counterfile/internal/repository"
)

type Incrementer struct {
	Kind    constants.CounterKind
	Storage repository.Storage
	Out     io.Writer
}

func New(kind constants.CounterKind, path string) *Incrementer {
	return &Incrementer{
		Kind:    kind,
		Storage: repository.NewStorage(path),
		Out:     os.Stdout,
	}
}

// Increment reads the current value (0 if the file is absent or malformed),
// writes value+1 back and returns it. Filesystem failures are returned unchanged.
func (inc *Incrementer) Increment() (models.Counter, error) {
	res, err := inc.Storage.GetCounter()
	if err != nil {
		return 0, err
	}
	constants.Logger.Debug().Str("status", res.Status.String()).Msg("counter read")

	if !res.Found() {
		fmt.Fprintf(inc.Out, constants.NoticeFmt+"\n", inc.Kind.FileName)
	}

	next := res.Current().Inc()
	if err := inc.Storage.WriteCounter(next); err != nil {
		return 0, err
	}

	fmt.Fprintf(inc.Out, constants.IncreaseFmt+"\n", inc.Kind.Label, int64(next))

	return next, nil
}

// Increment is a shorthand for a single run against path.
func Increment(kind constants.CounterKind, path string) (models.Counter, error) {
	return New(kind, path).Increment()
}
