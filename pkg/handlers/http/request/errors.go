package request

import "errors"

var ErrInvalidRequest = errors.New("invalid request")
