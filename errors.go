package readpass

import (
	"fmt"
	"runtime"

	"readpass/memzero"
)

// UTF8Error reports that the primitive read a secret that is not valid
// UTF-8. Offset is the position of the first invalid byte within the
// secret. The raw bytes are not retained here; with the owning API the
// (already erased) buffer travels back inside OwnedError instead.
type UTF8Error struct {
	Offset int
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("passphrase is not valid UTF-8 (invalid byte at offset %d)", e.Offset)
}

// OwnedError is the failure result of ReadPassphraseOwned. It wraps the
// underlying error and carries the caller's buffer back so the
// allocation can be reused. The buffer has already been truncated to
// length zero with its full capacity erased.
//
// Take returns the buffer exactly once. If Take is never called, the
// retained storage is erased again when the error value becomes
// unreachable, so abandoning an OwnedError cannot leak secret bytes.
type OwnedError struct {
	err     error
	buf     []byte
	cleanup runtime.Cleanup
}

func newOwnedError(err error, buf []byte) *OwnedError {
	e := &OwnedError{err: err, buf: buf}
	if buf != nil {
		e.cleanup = runtime.AddCleanup(e, func(b []byte) {
			memzero.Zero(b[:cap(b)])
		}, buf)
	}
	return e
}

func (e *OwnedError) Error() string { return e.err.Error() }

// Unwrap exposes the underlying error for errors.Is / errors.As.
func (e *OwnedError) Unwrap() error { return e.err }

// Take removes the buffer from the error and hands it to the caller.
// The buffer has length zero, its original capacity, and every byte of
// that capacity is zero. The second and later calls return nil rather
// than aliasing the first result.
func (e *OwnedError) Take() []byte {
	b := e.buf
	if b == nil {
		return nil
	}
	e.buf = nil
	e.cleanup.Stop()
	return b
}

// discard erases and drops the retained buffer immediately instead of
// waiting for the cleanup. Used when an OwnedError is converted to a
// plain error.
func (e *OwnedError) discard() {
	if b := e.Take(); b != nil {
		memzero.Zero(b[:cap(b)])
	}
}
