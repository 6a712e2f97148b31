// Package memzero erases sensitive byte regions.
//
// Zero overwrites every byte it is handed and issues a barrier so the
// compiler cannot prove the write dead. It is total and idempotent:
// zeroing an already-zero region is a no-op in effect.
//
// The readpass package uses it on every failure path; callers of the
// borrowing API use it to erase their own buffers once the secret is
// no longer needed.
package memzero
