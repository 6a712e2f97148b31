package commands

import (
	"os"

	"github.com/spf13/cobra"
)

func promptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Read a secret and print it to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, wipe, err := secretBytes("Passphrase: ")
			if err != nil {
				return err
			}
			defer wipe()
			// Write directly so no extra copy of the secret is made.
			if _, err := os.Stdout.Write(data); err != nil {
				return err
			}
			_, err = os.Stdout.Write([]byte{'\n'})
			return err
		},
	}
}
