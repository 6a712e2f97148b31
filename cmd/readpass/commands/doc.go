// Package commands defines the readpass CLI.
//
// Commands
//
//   - prompt       Read a secret and print it to stdout (for shell use)
//   - confirm      Read a secret and ask for confirmation
//   - fingerprint  Print a BLAKE2b-256 fingerprint of a secret
//
// # Implementation
//
// Persistent flags map one-to-one onto the library's Flags bitset
// (--echo, --require-tty, --stdin), plus --file to source the secret
// from a file instead of prompting. Every command wipes the buffers it
// owns before returning, whatever the exit path.
package commands
