package tui

import "errors"

// ErrMissingResult is returned when no parse result is given to review.
var ErrMissingResult = errors.New("tui: parse result is required")

// ErrNoSample is returned when the parse result holds no sample.
var ErrNoSample = errors.New("tui: parse result has no sample")
