package math

import "errors"

var ErrUnknownColor = errors.New("unknown color")
