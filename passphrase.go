package readpass

import "readpass/memzero"

// Passphrase is an owned secret built in place from the buffer given to
// ReadPassphraseOwned or allocated by Getpass. It aliases that storage;
// no copy of the secret is ever made on the success path.
//
// The caller owns the Passphrase from the moment it is returned and is
// responsible for calling Wipe once the secret is no longer needed.
type Passphrase struct {
	// storage spans the buffer's full original capacity so Wipe can
	// erase trailing bytes as well as the secret itself.
	storage []byte
	n       int
}

// Bytes returns the secret. The slice aliases the Passphrase's storage:
// it is invalidated by Wipe and must not be held past it.
func (p *Passphrase) Bytes() []byte { return p.storage[:p.n] }

// String returns the secret as a string. Go strings are immutable, so
// this is a heap copy the caller cannot erase; prefer Bytes at call
// sites that can accept a byte slice.
func (p *Passphrase) String() string { return string(p.storage[:p.n]) }

// Len returns the secret's length in bytes.
func (p *Passphrase) Len() int { return p.n }

// Wipe erases the full underlying storage and truncates the secret to
// zero length. Wipe is idempotent.
func (p *Passphrase) Wipe() {
	memzero.Zero(p.storage)
	p.n = 0
}
