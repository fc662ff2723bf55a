package incrementer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andynikk/counterfile/internal/constants"
	"github.com/andynikk/counterfile/internal/constants/errs"
	"github.com/andynikk/counterfile/internal/models"
	"github.com/andynikk/counterfile/internal/repository"
)

func newTestIncrementer(kind constants.CounterKind, path string) (*Incrementer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	inc := New(kind, path)
	inc.Out = out
	return inc, out
}

func TestIncrement(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		create     bool
		want       models.Counter
		wantNotice bool
	}{
		{name: "absent file", create: false, want: 1, wantNotice: true},
		{name: "zero", content: "0", create: true, want: 1},
		{name: "valid value", content: "41", create: true, want: 42},
		{name: "padded value", content: "  5  ", create: true, want: 6},
		{name: "not a number", content: "abc", create: true, want: 1, wantNotice: true},
		{name: "empty file", content: "", create: true, want: 1, wantNotice: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), constants.BuildNumberFile)
			if tt.create {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			}

			inc, out := newTestIncrementer(constants.BuildNumber, path)
			got, err := inc.Increment()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want.String(), string(data))

			assert.Equal(t, tt.wantNotice, bytes.Contains(out.Bytes(), []byte("No build_number.txt was found, create one")))
			assert.Contains(t, out.String(), "Build number increased to: "+tt.want.String()+"\n")
		})
	}
}

func TestIncrementTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), constants.BuildNumberFile)

	first, err := Increment(constants.BuildNumber, path)
	require.NoError(t, err)
	second, err := Increment(constants.BuildNumber, path)
	require.NoError(t, err)

	assert.Equal(t, models.Counter(1), first)
	assert.Equal(t, models.Counter(2), second)
}

func TestIncrementFilesystemError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", constants.FlashingNumberFile)
	inc, out := newTestIncrementer(constants.FlashingNumber, path)

	_, err := inc.Increment()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrFilesystem))
	assert.Equal(t, errs.ExitFilesystem, errs.ExitCode(err))
	assert.NotContains(t, out.String(), "increased to")
}

type failingStorage struct {
	res repository.ReadResult
}

func (s failingStorage) GetCounter() (repository.ReadResult, error) {
	return s.res, nil
}

func (s failingStorage) WriteCounter(models.Counter) error {
	return errs.Filesystem(os.ErrPermission, "write", "counter")
}

func TestIncrementWriteFailure(t *testing.T) {
	out := &bytes.Buffer{}
	inc := &Incrementer{
		Kind:    constants.BuildNumber,
		Storage: failingStorage{res: repository.ReadResult{Status: repository.Parsed, Value: 3}},
		Out:     out,
	}

	got, err := inc.Increment()
	require.Error(t, err)
	assert.Equal(t, models.Counter(0), got)
	assert.True(t, errors.Is(err, os.ErrPermission))
	assert.Empty(t, out.String())
}
