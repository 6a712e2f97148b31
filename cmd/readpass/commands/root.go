package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"readpass"
	"readpass/memzero"
)

var (
	echo       bool
	requireTTY bool
	useStdin   bool
	secretFile string
)

func Execute() error {
	root := &cobra.Command{
		Use:          "readpass",
		Short:        "Prompt for secrets with guaranteed buffer erasure",
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&echo, "echo", false, "leave echo on while the secret is typed")
	root.PersistentFlags().BoolVar(&requireTTY, "require-tty", false, "fail if there is no controlling terminal")
	root.PersistentFlags().BoolVar(&useStdin, "stdin", false, "read the secret from standard input")
	root.PersistentFlags().StringVar(&secretFile, "file", "", `read the secret from a file instead of prompting ("-" prompts)`)

	root.AddCommand(promptCmd(), confirmCmd(), fingerprintCmd())
	return root.Execute()
}

// promptFlags translates the persistent flags into the library bitset.
func promptFlags() readpass.Flags {
	var f readpass.Flags
	if echo {
		f |= readpass.EchoOn
	}
	if requireTTY {
		f |= readpass.RequireTTY
	}
	if useStdin {
		f |= readpass.Stdin
	}
	return f
}

// secretBytes obtains the secret per the persistent flags: from --file
// when set, otherwise by prompting. The returned wipe function erases
// the backing storage and must be deferred by the caller.
func secretBytes(prompt string) ([]byte, func(), error) {
	if secretFile != "" && secretFile != "-" {
		data, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, nil, err
		}
		// Files usually end with a newline; the secret does not.
		for len(data) > 0 && (data[len(data)-1] == '\n' || data[len(data)-1] == '\r') {
			data = data[:len(data)-1]
		}
		if len(data) == 0 {
			memzero.Zero(data[:cap(data)])
			return nil, nil, fmt.Errorf("file %s is empty", secretFile)
		}
		return data, func() { memzero.Zero(data[:cap(data)]) }, nil
	}

	pass, err := readpass.ReadPassphraseOwned(prompt, make([]byte, readpass.PassphraseLen), promptFlags())
	if err != nil {
		return nil, nil, err
	}
	return pass.Bytes(), pass.Wipe, nil
}
