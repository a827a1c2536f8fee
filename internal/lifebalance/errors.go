package lifebalance

import "errors"

var (
	// ErrUnknownArea is returned for any area outside the closed set.
	ErrUnknownArea = errors.New("unknown life area")
	// ErrScoreOutOfRange is returned when a score write falls outside [0,100].
	ErrScoreOutOfRange = errors.New("score out of range")
	// ErrEmptyResponse is returned when a submitted answer trims to nothing.
	ErrEmptyResponse = errors.New("empty response")
	// ErrFlowComplete is returned when a submission arrives after completion.
	ErrFlowComplete = errors.New("assessment already complete")
)
