package tty

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"readpass/memzero"
)

// Options control a single Read call. The zero value reads from the
// controlling terminal with echo disabled.
type Options struct {
	// Echo leaves terminal echo enabled.
	Echo bool
	// RequireTTY fails with ENOTTY instead of falling back to stdin
	// when /dev/tty cannot be opened.
	RequireTTY bool
	// ForceLower folds ASCII input to lower case.
	ForceLower bool
	// ForceUpper folds ASCII input to upper case.
	ForceUpper bool
	// SevenBit strips the high bit from each input byte.
	SevenBit bool
	// Stdin reads from standard input, prompting on standard error.
	Stdin bool
}

// Read displays prompt and reads a secret into buf, NUL-terminated.
// Up to len(buf)-1 secret bytes are stored; longer input is truncated
// and the rest of the line consumed. End of input before any byte is a
// success with an empty secret, matching readpassphrase(3).
//
// On success buf holds the secret followed by a NUL at index len-of-
// secret. On failure buf's contents are unspecified.
func Read(prompt string, buf []byte, opts Options) error {
	if len(buf) == 0 {
		return fmt.Errorf("tty: empty buffer: %w", unix.EINVAL)
	}

	in, out, closeTTY, err := openInput(opts)
	if err != nil {
		return err
	}
	defer closeTTY()

	if prompt != "" {
		if _, err := out.WriteString(prompt); err != nil {
			return fmt.Errorf("tty: write prompt: %w", err)
		}
	}

	n, err := readSecret(in, out, buf, opts)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		buf[i] = transform(buf[i], opts)
	}
	buf[n] = 0
	return nil
}

// openInput selects the input stream and prompt destination. The
// controlling terminal serves both roles when available; otherwise
// stdin carries input and stderr the prompt.
func openInput(opts Options) (in *os.File, out *os.File, closeFn func(), err error) {
	if opts.Stdin {
		return os.Stdin, os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		if opts.RequireTTY {
			return nil, nil, nil, fmt.Errorf("tty: no controlling terminal: %w", unix.ENOTTY)
		}
		return os.Stdin, os.Stderr, func() {}, nil
	}
	return f, f, func() { f.Close() }, nil
}

// readSecret fills buf with up to len(buf)-1 input bytes and returns
// the count. Echo suppression only applies when the input stream is a
// terminal; pipes and files are read as-is.
func readSecret(in, out *os.File, buf []byte, opts Options) (int, error) {
	fd := int(in.Fd())
	if !opts.Echo && term.IsTerminal(fd) {
		line, err := term.ReadPassword(fd)
		// term.ReadPassword swallows the user's newline; emit one so
		// the next output starts on a fresh line.
		out.WriteString("\n")
		if err != nil {
			memzero.Zero(line)
			return 0, fmt.Errorf("tty: read passphrase: %w", err)
		}
		n := copy(buf[:len(buf)-1], line)
		memzero.Zero(line)
		return n, nil
	}
	return readLine(in, buf)
}

// readLine reads a line into buf one byte at a time so no secret byte
// lands in an intermediate buffer. Input past len(buf)-1 bytes is
// discarded until the line ends.
func readLine(r io.Reader, buf []byte) (int, error) {
	n := 0
	var one [1]byte
	defer func() { one[0] = 0 }() // scrub the staging byte
	for {
		nr, err := r.Read(one[:])
		if nr > 0 {
			c := one[0]
			if c == '\n' || c == '\r' {
				break
			}
			if n < len(buf)-1 {
				buf[n] = c
				n++
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("tty: read: %w", err)
		}
	}
	return n, nil
}

// transform applies the per-byte input flags in the order the C
// implementation does: high-bit strip first, then case folding.
func transform(c byte, opts Options) byte {
	if opts.SevenBit {
		c &= 0x7f
	}
	switch {
	case opts.ForceLower && c >= 'A' && c <= 'Z':
		c += 'a' - 'A'
	case opts.ForceUpper && c >= 'a' && c <= 'z':
		c -= 'a' - 'A'
	}
	return c
}
