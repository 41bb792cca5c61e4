package order

import (
	"fmt"
	"strconv"
	"strings"

	"tms/internal/pkg/errs"
)

const (
	numberPrefix = "OC-"
	numberDigits = 5
)

// Number is the human-facing order identifier, "OC-" followed by a sequence
// value zero padded to five digits. Values above 99999 keep growing in width.
type Number struct {
	value    string
	sequence int64
}

// NewNumber formats a sequence value. The sequence starts at 1.
func NewNumber(sequence int64) (Number, error) {
	if sequence < 1 {
		return Number{}, errs.NewValueIsOutOfRangeError("order_number", sequence, 1, "unbounded")
	}
	return Number{
		value:    fmt.Sprintf("%s%0*d", numberPrefix, numberDigits, sequence),
		sequence: sequence,
	}, nil
}

// ParseNumber reads a stored order number back.
func ParseNumber(s string) (Number, error) {
	digits, ok := strings.CutPrefix(s, numberPrefix)
	if !ok || len(digits) < numberDigits {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order_number", fmt.Errorf("%q is not in OC-NNNNN form", s))
	}
	seq, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order_number", err)
	}
	if seq < 1 {
		return Number{}, errs.NewValueIsOutOfRangeError("order_number", seq, 1, "unbounded")
	}
	return Number{value: s, sequence: seq}, nil
}

// Sequence returns the numeric part.
func (n Number) Sequence() int64 {
	return n.sequence
}

func (n Number) String() string {
	return n.value
}

// IsZero reports whether n was never assigned.
func (n Number) IsZero() bool {
	return n.value == ""
}
