// Package strutil implements the digit/string codec shared by the fixed-point types.
package strutil

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	delim = '.'
)

var (
	manyZeros = bytes.Repeat([]byte{'0'}, 32)
)

// PosError is a parsing error with a 1-based position in the original input.
// Pos is 0 if the error is not bound to a symbol.
type PosError struct {
	Pos int
	Err string
}

func newPosError(err string, pos int) *PosError {
	return &PosError{Err: err, Pos: pos}
}

func (pe PosError) Error() string {
	if pe.Pos == 0 {
		return pe.Err
	}
	return pe.Err + fmt.Sprintf(" at pos %d", pe.Pos)
}

// Number is a split decimal string.
type Number struct {
	Neg bool
	// Integral holds integral digits without leading zeros.
	Integral string
	// Fractional holds fractional digits as written, including trailing zeros.
	Fractional string
}

// Parse splits a decimal string into its sign, integral and fractional digits.
// Surrounding spaces and one pair of quotes are ignored.
func Parse(s string) (Number, error) {
	s, offset, neg := prepareString(s)
	if len(s) == 0 {
		return Number{}, newPosError("empty input", 0)
	}
	integral, fractional, digits, err := splitDigits(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		err.Pos += offset + 1
		return Number{}, err
	}
	if digits == 0 {
		return Number{}, newPosError("no digits", 0)
	}
	return Number{Neg: neg, Integral: integral, Fractional: fractional}, nil
}

// prepareString cleans the string from a pair of surrounding quotes, -,+ symbols, and spaces.
func prepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
		offset++
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

// splitDigits returns integral digits without leading zeros and fractional digits.
// Positions in the returned error are 0-based.
func splitDigits(s string) (integral, fractional string, digits int, err *PosError) {
	delimPos, firstNonZeroPos := -1, -1
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			digits++
			if delimPos == -1 && firstNonZeroPos == -1 && r != '0' {
				firstNonZeroPos = i
			}
		case r == delim:
			if delimPos != -1 {
				return "", "", 0, newPosError("unexpected delimiter", i)
			}
			delimPos = i
		default:
			return "", "", 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	intEnd := len(s)
	if delimPos >= 0 {
		intEnd = delimPos
		fractional = s[delimPos+1:]
	}
	if firstNonZeroPos >= 0 {
		integral = s[firstNonZeroPos:intEnd]
	}
	return integral, fractional, digits, nil
}

// ParseUintSaturated parses a string of decimal digits.
// If the value exceeds max, max is returned and ok is false.
func ParseUintSaturated(digits string, max uint64) (v uint64, ok bool) {
	if len(digits) == 0 {
		return 0, true
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || v > max {
		return max, false
	}
	return v, true
}

// ParseFraction converts fractional digits into an integer with exactly 'width' digits.
// Extra digits are truncated, missing ones are zero-padded.
func ParseFraction(digits string, width int) uint64 {
	if len(digits) > width {
		digits = digits[:width]
	}
	var v uint64
	for i := 0; i < len(digits); i++ {
		v = v*10 + uint64(digits[i]-'0')
	}
	for i := len(digits); i < width; i++ {
		v *= 10
	}
	return v
}

// HasNonZeroBeyond returns true if digits contains a nonzero digit after the first 'width' ones.
func HasNonZeroBeyond(digits string, width int) bool {
	for i := width; i < len(digits); i++ {
		if digits[i] != '0' {
			return true
		}
	}
	return false
}

// AppendPadded appends v to dst left-padded with zeros up to width digits.
func AppendPadded(dst []byte, v uint64, width int) []byte {
	var buf [20]byte
	s := strconv.AppendUint(buf[:0], v, 10)
	if pad := width - len(s); pad > 0 {
		dst = append(dst, zeroBytes(pad)...)
	}
	return append(dst, s...)
}

// AppendDecimal appends [-]integral[.fractional] to dst.
// The fractional section is written with exactly 'width' digits if withFrac is true.
func AppendDecimal(dst []byte, neg bool, integral, fractional uint64, width int, withFrac bool) []byte {
	if neg {
		dst = append(dst, '-')
	}
	dst = strconv.AppendUint(dst, integral, 10)
	if withFrac && width > 0 {
		dst = append(dst, delim)
		dst = AppendPadded(dst, fractional, width)
	}
	return dst
}

func zeroBytes(count int) []byte {
	if count <= len(manyZeros) {
		return manyZeros[:count]
	}
	return bytes.Repeat([]byte{'0'}, count)
}
