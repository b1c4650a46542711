package drag

import "errors"

var (
	ErrGestureInProgress = errors.New("drag: gesture already in progress")
	ErrNoGesture         = errors.New("drag: no gesture in progress")
	ErrIndexOutOfRange   = errors.New("drag: block index out of range")
)
