package job

import (
	"errors"
)

var (
	ErrUnsupportedMode = errors.New("unsupported comparison mode, must be 'labeled' or 'unlabeled'")
	ErrJobNotFound     = errors.New("job not found")
	ErrResultNotReady  = errors.New("job result not ready")
	ErrQueueEmpty      = errors.New("job queue empty")
)
