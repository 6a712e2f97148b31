package commands

import (
	"crypto/subtle"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"readpass"
	"readpass/memzero"
)

// maxAttempts bounds the confirmation loop; primitive failures are
// never retried, only mismatched confirmations.
const maxAttempts = 5

func confirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm",
		Short: "Read a secret and ask for confirmation",
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := readpass.ReadPassphraseOwned(
				"Passphrase: ", make([]byte, readpass.PassphraseLen), promptFlags())
			if err != nil {
				return err
			}
			defer pass.Wipe()

			// The confirmation reuses one caller-owned buffer across
			// attempts via the borrowing API.
			buf := make([]byte, readpass.PassphraseLen)
			defer memzero.Zero(buf)

			for i := 0; i < maxAttempts; i++ {
				confirm, err := readpass.ReadPassphrase(
					"Confirmation: ", buf, promptFlags()|readpass.RequireTTY)
				if err != nil {
					return err
				}
				if subtle.ConstantTimeCompare(pass.Bytes(), buf[:len(confirm)]) == 1 {
					fmt.Fprintln(os.Stderr, "Passphrases match.")
					return nil
				}
				fmt.Fprintln(os.Stderr, "Passphrases don't match.")
			}
			return fmt.Errorf("too many attempts")
		},
	}
}
