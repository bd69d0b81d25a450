package utils

import "errors"

var (
	ErrInvalidRequest          = errors.New("invalid request")
	ErrAICompletionUnavailable = errors.New("ai completion unavailable")
)
