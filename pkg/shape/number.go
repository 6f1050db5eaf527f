package shape

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Number is a numeric shape attribute. Hosts send some attributes (font size,
// font weight) as strings, so both JSON numbers and numeric strings decode.
// A string without a leading number decodes to NaN.
type Number float64

var leadingNumber = regexp.MustCompile(`^\s*[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`)

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("cannot decode number: %w", err)
		}
		*n = ParseNumber(s)
		return nil
	case 't', 'f':
		// booleans carry no magnitude
		*n = 0
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("cannot decode number: %w", err)
	}
	*n = Number(f)
	return nil
}

// ParseNumber reads the leading number of s, ignoring any trailing unit such as "px".
// The empty string is zero; anything else without a leading number is NaN.
func ParseNumber(s string) Number {
	if s == "" {
		return 0
	}
	match := leadingNumber.FindString(s)
	if match == "" {
		return Number(math.NaN())
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(match), 64)
	if err != nil {
		return Number(math.NaN())
	}
	return Number(f)
}

func (n Number) Float() float64 {
	return float64(n)
}

// IsZero reports whether the attribute is absent or zero. NaN is not zero.
func (n Number) IsZero() bool {
	return n == 0
}

func (n Number) IsNaN() bool {
	return math.IsNaN(float64(n))
}

// Round rounds half up, so -0.5 rounds to 0 and 2.5 to 3.
func Round(f float64) float64 {
	return math.Floor(f + 0.5)
}

// Format renders the number the way the host would print it: integers without
// a fraction, everything else with the shortest exact representation.
func (n Number) Format() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Weight is a font weight. It is declared when the host sent a non-zero number
// or any non-empty string, so the string "0" still counts as a weight.
type Weight struct {
	Value    Number
	Declared bool
}

// NewWeight returns a weight declared when n is non-zero.
func NewWeight(n Number) Weight {
	return Weight{Value: n, Declared: !n.IsZero()}
}

func (w *Weight) UnmarshalJSON(data []byte) error {
	if err := w.Value.UnmarshalJSON(data); err != nil {
		return err
	}
	data = bytes.TrimSpace(data)
	w.Declared = !w.Value.IsZero() || (len(data) > 2 && data[0] == '"')
	return nil
}

func (w Weight) MarshalJSON() ([]byte, error) {
	if !w.Declared {
		return []byte("0"), nil
	}
	if w.Value.IsNaN() {
		return json.Marshal("normal")
	}
	return json.Marshal(w.Value.Float())
}
