package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way and keeps
// the slice live past the write so the store cannot be elided as dead.
//
// Callers erasing a buffer's full allocation should pass b[:cap(b)];
// Zero only touches the bytes it is given.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	runtime.KeepAlive(&b)
}
