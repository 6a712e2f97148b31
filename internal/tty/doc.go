// Package tty is the terminal-interaction primitive behind readpass.
//
// It models readpassphrase(3): display a prompt on the controlling
// terminal (or standard error), read one line with echo suppressed
// unless asked otherwise, apply the per-byte input transforms, and
// NUL-terminate the result in the caller's buffer.
//
// The package is Unix-only. The BSD readpassphrase it mirrors ignores
// all flags on Windows and always behaves as if echo were disabled;
// a port here would inherit that caveat.
package tty
