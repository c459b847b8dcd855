package core

import (
	"bytes"
	"fmt"
	"strconv"
)

// JSON output modes.
const (
	// JSONFull produces a string with all fractional digits.
	JSONFull = iota
	// JSONOptimal produces a string without a zero fractional part.
	JSONOptimal
	// JSONFloat produces a float.
	JSONFloat
)

var (
	// JSONNull is the json null literal.
	JSONNull = []byte("null")
)

// AppendJSON appends n marshaled according to the mode to dst.
func (l Layout) AppendJSON(dst []byte, n Num, mode int) []byte {
	switch mode {
	case JSONFloat:
		return strconv.AppendFloat(dst, l.Float64(n), 'f', -1, 64)
	case JSONOptimal:
		dst = append(dst, '"')
		dst = l.AppendOptimal(dst, n)
		return append(dst, '"')
	default: // marshal as a full string
		dst = append(dst, '"')
		dst = l.AppendFull(dst, n)
		return append(dst, '"')
	}
}

// ParseJSON parses a json string or a number.
// ok is false if the destination must be left unchanged, which is the case for null.
func (l Layout) ParseJSON(data []byte) (n Num, ok bool, err error) {
	if len(data) == 0 {
		return Num{}, false, Error.New("empty json")
	}
	if bytes.Equal(data, JSONNull) {
		return Num{}, false, nil
	}
	if n, err = l.Parse(string(data)); err != nil {
		return Num{}, false, err
	}
	return n, true, nil
}

// Format implements fmt.Formatter for n.
// %s and %v produce the optimal form, %f the full form or the form with given precision,
// %d the integral part, %q the quoted optimal form. Width and the '+' and '-' flags are supported.
func (l Layout) Format(fs fmt.State, c rune, n Num) {
	var buf [64]byte
	var b []byte
	switch c {
	case 's', 'v':
		b = l.AppendOptimal(buf[:0], n)
	case 'd':
		b = l.AppendOptimal(buf[:0], l.Floor(n))
	case 'q':
		b = append(buf[:0], '"')
		b = l.AppendOptimal(b, n)
		b = append(b, '"')
	case 'f', 'F':
		prec, ok := fs.Precision()
		if !ok {
			b = l.AppendFull(buf[:0], n)
			break
		}
		b = l.AppendFull(buf[:0], l.Round(n, prec, ToEven))
		switch {
		case prec == 0:
			b = b[:len(b)-l.Digits-1]
		case prec < l.Digits:
			b = b[:len(b)-l.Digits+prec]
		default:
			b = append(b, bytes.Repeat([]byte{'0'}, prec-l.Digits)...)
		}
	default:
		fmt.Fprintf(fs, "%%!%c(%s)", c, l.Optimal(n))
		return
	}
	if fs.Flag('+') && !n.Neg {
		b = append([]byte{'+'}, b...)
	}
	writePadded(fs, b)
}

func writePadded(fs fmt.State, b []byte) {
	width, ok := fs.Width()
	if !ok || width <= len(b) {
		fs.Write(b)
		return
	}
	padding := bytes.Repeat([]byte{' '}, width-len(b))
	if fs.Flag('-') {
		fs.Write(b)
		fs.Write(padding)
		return
	}
	fs.Write(padding)
	fs.Write(b)
}
