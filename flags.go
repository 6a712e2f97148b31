package readpass

// Flags control how the terminal primitive obtains input. The zero
// value reads from the controlling terminal with echo disabled, which
// is what most callers want.
type Flags int

const (
	// EchoOn leaves echo enabled while the secret is typed.
	EchoOn Flags = 0x01
	// RequireTTY fails with ENOTTY instead of falling back to standard
	// input when no controlling terminal is available.
	RequireTTY Flags = 0x02
	// ForceLower folds ASCII input to lower case.
	ForceLower Flags = 0x04
	// ForceUpper folds ASCII input to upper case.
	ForceUpper Flags = 0x08
	// SevenBit strips the high bit from each input byte.
	SevenBit Flags = 0x10
	// Stdin reads from standard input instead of the controlling
	// terminal, writing the prompt to standard error.
	Stdin Flags = 0x20
)

// Has reports whether all bits of mask are set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }
