// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"github.com/avdva/fixedpoint/internal/core"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeFull
)

const (
	// JSONModeFull produces values as strings with all fractional digits, like `"1234.5600"`.
	JSONModeFull = core.JSONFull
	// JSONModeOptimal produces values as strings without a zero fractional part, like `"1234"`.
	JSONModeOptimal = core.JSONOptimal
	// JSONModeFloat marshals values as floats, like `1234.56`.
	JSONModeFloat = core.JSONFloat
)

func toJSON(l core.Layout, n core.Num, mode int) []byte {
	return l.AppendJSON(make([]byte, 0, 48), n, mode)
}
