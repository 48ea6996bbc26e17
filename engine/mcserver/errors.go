package mcserver

import "errors"

var (
	// ErrIndexOutOfRange is returned when an operation addresses a list
	// position that does not currently exist.
	ErrIndexOutOfRange = errors.New("server index out of range")
)
