package cmd

import (
	"fmt"
	"os"

	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/Mohsinsiddi/tokenapi/internal/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	initPath  string
	initRPC   string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a config file with the current settings and a localhost chain.

The private key is never written; set PRIVATE_KEY or store it in the
keychain with: tokenapi key set`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Banner(Version))

		path := initPath
		if !cmd.Flags().Changed("output") && cfgPath != "" {
			path = cfgPath
		}
		if _, err := os.Stat(path); err == nil && !initForce {
			return errors.Errorf("%s already exists; use --force to overwrite", path)
		}

		if _, ok := cfg.Chain(chain.LocalChainID); !ok {
			cfg.SetChainRPC(chain.LocalChainID, initRPC)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.Save(path); err != nil {
			return errors.Wrap(err, "saving config")
		}

		fmt.Fprintln(out, ui.Success("Config written to "+cfg.Path()))
		fmt.Fprintln(out, ui.Meta("Start the server with: tokenapi serve --config "+cfg.Path()))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initPath, "output", "o", "tokenapi.yaml", "file to write (.json, .yaml or .yml)")
	initCmd.Flags().StringVar(&initRPC, "rpc", "http://127.0.0.1:8545", "RPC URL for the localhost chain")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")
}
