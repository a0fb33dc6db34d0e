package dataset

import "errors"

var ErrInputShape = errors.New("invalid input document")
