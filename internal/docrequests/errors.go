package docrequests

import "errors"

var (
	ErrAlreadySubmitted = errors.New("documents already submitted")
	ErrMaxAttempts      = errors.New("maximum upload attempts exceeded")
	ErrNoFiles          = errors.New("no documents uploaded")
)
