package readpass

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/sys/unix"

	"readpass/internal/tty"
	"readpass/memzero"
)

// PassphraseLen is the buffer size allocated by Getpass. The terminal
// primitive NUL-terminates what it reads, so the longest passphrase
// Getpass can return is PassphraseLen-1 bytes.
const PassphraseLen = 256

// primitive is the terminal-interaction collaborator. On success it has
// written the secret followed by a NUL terminator into buf; on failure
// it returns a non-nil error and buf's contents are unspecified. Tests
// substitute simulated primitives here.
var primitive = func(prompt string, buf []byte, flags Flags) error {
	return tty.Read(prompt, buf, tty.Options{
		Echo:       flags.Has(EchoOn),
		RequireTTY: flags.Has(RequireTTY),
		ForceLower: flags.Has(ForceLower),
		ForceUpper: flags.Has(ForceUpper),
		SevenBit:   flags.Has(SevenBit),
		Stdin:      flags.Has(Stdin),
	})
}

// ReadPassphrase reads a secret of up to len(buf)-1 bytes into buf and
// returns it as a string view over that same memory, with no copy. The
// view is valid exactly as long as the caller leaves buf intact; wiping
// or reusing buf invalidates it.
//
// The caller keeps ownership of buf throughout, including on error, and
// is responsible for erasing it (memzero.Zero) once the secret is no
// longer needed; buf may hold sensitive bytes even when an error is
// returned.
func ReadPassphrase(prompt string, buf []byte, flags Flags) (string, error) {
	if len(buf) == 0 {
		return "", fmt.Errorf("readpass: zero-length buffer: %w", unix.EINVAL)
	}
	if err := primitive(prompt, buf, flags); err != nil {
		return "", fmt.Errorf("readpass: %w", err)
	}
	n := terminatorIndex(buf)
	if off := utf8Offset(buf[:n]); off >= 0 {
		return "", fmt.Errorf("readpass: %w", &UTF8Error{Offset: off})
	}
	return unsafe.String(unsafe.SliceData(buf), n), nil
}

// ReadPassphraseOwned reads a secret of up to cap(buf)-1 bytes into
// buf's full capacity and returns a Passphrase that adopts that same
// memory; no byte of the secret is copied.
//
// Ownership of buf moves into the call. On success it comes back inside
// the Passphrase. On failure every byte of buf's capacity is erased,
// the buffer is truncated to length zero, and it comes back inside an
// *OwnedError, from which the caller may reclaim the allocation with
// Take. An abandoned *OwnedError erases its buffer on its own.
func ReadPassphraseOwned(prompt string, buf []byte, flags Flags) (*Passphrase, error) {
	full := buf[:cap(buf)]
	if len(full) == 0 {
		err := fmt.Errorf("readpass: zero-capacity buffer: %w", unix.EINVAL)
		return nil, newOwnedError(err, full)
	}
	if err := primitive(prompt, full, flags); err != nil {
		memzero.Zero(full)
		return nil, newOwnedError(fmt.Errorf("readpass: %w", err), full[:0])
	}
	n := terminatorIndex(full)
	if off := utf8Offset(full[:n]); off >= 0 {
		memzero.Zero(full)
		return nil, newOwnedError(fmt.Errorf("readpass: %w", &UTF8Error{Offset: off}), full[:0])
	}
	return &Passphrase{storage: full, n: n}, nil
}

// Getpass reads a secret with echo disabled using an internal buffer of
// PassphraseLen bytes. On failure the internal buffer is erased before
// the error is returned, so callers only ever see the plain error.
func Getpass(prompt string) (*Passphrase, error) {
	p, err := ReadPassphraseOwned(prompt, make([]byte, PassphraseLen), 0)
	if err != nil {
		var owned *OwnedError
		if errors.As(err, &owned) {
			err = owned.Unwrap()
			owned.discard()
		}
		return nil, err
	}
	return p, nil
}

// terminatorIndex locates the NUL the primitive is contractually
// required to write. A missing terminator is a broken collaborator, not
// a recoverable condition.
func terminatorIndex(buf []byte) int {
	n := bytes.IndexByte(buf, 0)
	if n < 0 {
		panic("readpass: terminal primitive returned an unterminated buffer")
	}
	return n
}

// utf8Offset returns the offset of the first invalid byte in b, or -1
// if b is valid UTF-8.
func utf8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
