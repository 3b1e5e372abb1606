package cmd

import (
	"fmt"
	"io"

	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/Mohsinsiddi/tokenapi/internal/ui"
	"github.com/spf13/cobra"
)

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "List the configured chains",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		reg, err := newRegistry(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		defer reg.Close()

		printChains(cmd.OutOrStdout(), reg)
		return nil
	},
}

func printChains(out io.Writer, reg *chain.Registry) {
	if reg.Len() == 0 {
		fmt.Fprintln(out, ui.Warn("No chains configured."))
		return
	}

	t := ui.NewTable([]ui.Column{
		{Title: "ID", Width: 10, Right: true},
		{Title: "Name", Width: 16},
		{Title: "Currency", Width: 8},
		{Title: "Testnet", Width: 7},
		{Title: "RPC", Width: 40},
	})
	for _, ep := range reg.All() {
		testnet := ""
		if ep.Chain.Testnet {
			testnet = "yes"
		}
		t.AddRow(ui.Row{
			fmt.Sprintf("%d", ep.ID()),
			ep.Chain.DisplayName,
			ep.Chain.NativeCurrency,
			testnet,
			ep.RPCURL,
		})
	}
	fmt.Fprint(out, t.Render())
}
