package extract

import "errors"

var (
	// ErrEmptyOutput means the model turn produced no text at all.
	ErrEmptyOutput = errors.New("extract: empty model output")
	// ErrMalformedJSON means no parseable JSON object could be located.
	ErrMalformedJSON = errors.New("extract: malformed JSON in model output")
)
