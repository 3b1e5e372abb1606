package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Mohsinsiddi/tokenapi/internal/ui"
	"github.com/Mohsinsiddi/tokenapi/internal/wallet"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the default signing key in the OS keychain",
}

var keySetCmd = &cobra.Command{
	Use:   "set [name]",
	Short: "Store a hex private key read from stdin",
	Long: `Read a hex private key from stdin and store it in the keychain under
name (default: signer.keyring_key, or "default").

Set signer.keyring_key (or KEYRING_KEY) to the same name to make the server
sign with it when a write request carries no privateKey.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := keyRef(args)

		hexKey, err := readKey(cmd.InOrStdin())
		if err != nil {
			return err
		}
		signer, err := wallet.ParseKey(hexKey)
		if err != nil {
			return err
		}

		ks, err := wallet.OpenKeystore(wallet.KeystoreOptions{
			Service:      cfg.Signer.KeyringService,
			FileDir:      cfg.Signer.KeyringFileDir,
			FilePassword: cfg.Signer.KeyringPassword,
		})
		if err != nil {
			return err
		}
		if err := ks.Store(ref, hexKey); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Stored key %q for %s", ref, ui.Addr(signer.Address().Hex()))))
		return nil
	},
}

func keyRef(args []string) string {
	switch {
	case len(args) == 1:
		return args[0]
	case cfg.Signer.KeyringKey != "":
		return cfg.Signer.KeyringKey
	}
	return "default"
}

func readKey(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "reading key")
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.Wrap(wallet.ErrMissingKey, "no key on stdin")
	}
	return line, nil
}

func init() {
	keyCmd.AddCommand(keySetCmd)
}
