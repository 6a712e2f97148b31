package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print a BLAKE2b-256 fingerprint of a secret",
		Long: "Reads a secret and prints a hex BLAKE2b-256 digest of it, " +
			"useful for checking that the same secret was entered on two " +
			"machines without revealing it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, wipe, err := secretBytes("Passphrase: ")
			if err != nil {
				return err
			}
			defer wipe()
			sum := blake2b.Sum256(data)
			fmt.Println(hex.EncodeToString(sum[:]))
			return nil
		},
	}
}
