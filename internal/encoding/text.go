package encoding

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/andynikk/counterfile/internal/models"
)

var ErrMalformed = errors.New("counter file does not hold a non-negative integer")

// DecodeCounter parses the content of a counter file. Surrounding whitespace is ignored.
func DecodeCounter(data []byte) (models.Counter, error) {
	text := strings.TrimSpace(string(data))

	val, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "%q", text)
	}
	// the next increment must stay representable
	if val < 0 || val == math.MaxInt64 {
		return 0, errors.Wrapf(ErrMalformed, "%q out of range", text)
	}

	return models.Counter(val), nil
}

// EncodeCounter renders c the way it is stored on disk: decimal digits only.
func EncodeCounter(c models.Counter) []byte {
	return []byte(c.String())
}
