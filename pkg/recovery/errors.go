package recovery

import "errors"

var (
	ErrInvalidCount     = errors.New("invalid backup code count, must be greater than 0")
	ErrFailedToGenerate = errors.New("failed to generate backup codes")
)
