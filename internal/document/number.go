// SPDX-License-Identifier: MIT

package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvalgebra/scalar"
)

// ParseNumber parses a real or complex literal: "3", "-2.5", "1e-3",
// "2i", "-i", "1+2i", "1-0.5i". A literal without an imaginary unit is real.
func ParseNumber(s string) (scalar.Number, error) {
	t := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if t == "" {
		return scalar.Zero, fmt.Errorf("%w: empty literal", ErrBadNumber)
	}
	if !strings.HasSuffix(t, "i") {
		x, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return scalar.Zero, fmt.Errorf("%w: %q", ErrBadNumber, s)
		}

		return scalar.Real(x), nil
	}

	body := t[:len(t)-1]
	reStr, imStr := "", body
	if k := splitIndex(body); k > 0 {
		reStr, imStr = body[:k], body[k:]
	}

	re := 0.0
	if reStr != "" {
		x, err := strconv.ParseFloat(reStr, 64)
		if err != nil {
			return scalar.Zero, fmt.Errorf("%w: %q", ErrBadNumber, s)
		}
		re = x
	}

	var im float64
	switch imStr {
	case "", "+":
		im = 1
	case "-":
		im = -1
	default:
		x, err := strconv.ParseFloat(imStr, 64)
		if err != nil {
			return scalar.Zero, fmt.Errorf("%w: %q", ErrBadNumber, s)
		}
		im = x
	}

	return scalar.Complex(re, im), nil
}

// splitIndex finds the sign that starts the imaginary part, skipping a
// leading sign and exponent signs. Returns -1 when there is none.
func splitIndex(body string) int {
	for k := len(body) - 1; k > 0; k-- {
		if body[k] != '+' && body[k] != '-' {
			continue
		}
		if prev := body[k-1]; prev == 'e' || prev == 'E' {
			continue
		}

		return k
	}

	return -1
}

// cellNumber converts one decoded cell. Decoders hand back float64, int
// flavours or strings depending on the format.
func cellNumber(v any) (scalar.Number, error) {
	switch x := v.(type) {
	case float64:
		return scalar.Real(x), nil
	case int:
		return scalar.Real(float64(x)), nil
	case int64:
		return scalar.Real(float64(x)), nil
	case uint64:
		return scalar.Real(float64(x)), nil
	case string:
		return ParseNumber(x)
	default:
		return scalar.Zero, fmt.Errorf("%w: unsupported cell %T", ErrBadNumber, v)
	}
}
