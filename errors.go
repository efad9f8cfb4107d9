package sampling

import "errors"

var (
	// ErrProcessNotFound reports a registry lookup for an id with no entry.
	ErrProcessNotFound = errors.New("process not found")

	// ErrProcessUndefined reports a run of an id whose entry holds no
	// computation.
	ErrProcessUndefined = errors.New("process is undefined")

	// ErrIndexOutOfRange reports a sample insertion outside [0, Len()].
	ErrIndexOutOfRange = errors.New("sample index out of range")
)
