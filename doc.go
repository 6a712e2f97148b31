// Package readpass obtains a secret line of text from the terminal
// while guaranteeing where the secret's bytes live and when they are
// destroyed.
//
// The terminal interaction itself (prompt display, echo suppression,
// TTY selection) is delegated to a blocking primitive modelled on
// readpassphrase(3). This package wraps it with a strict buffer
// lifecycle: the caller's buffer is filled in place, validated as
// UTF-8 without copying, and on every failure path any bytes not
// handed back to the caller are erased.
//
// Three entry points:
//
//   - ReadPassphrase: caller keeps the buffer; returns a string view
//     borrowed from it (zero copy). The caller erases the buffer.
//   - ReadPassphraseOwned: the buffer moves into the call; returns a
//     Passphrase adopting the same memory, or an *OwnedError carrying
//     the erased buffer back for reuse.
//   - Getpass: convenience form with an internal 256-byte buffer.
//
// Every call blocks until the user provides input, end of input is
// reached, or the primitive fails. There is no retry, timeout, or
// concurrency in this layer; a buffer has exactly one owner at any
// moment, which is what makes unconditional erasure safe.
package readpass
