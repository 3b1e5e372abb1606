package cmd

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/Mohsinsiddi/tokenapi/internal/config"
	"github.com/Mohsinsiddi/tokenapi/internal/contract"
	"github.com/Mohsinsiddi/tokenapi/internal/erc20"
	"github.com/Mohsinsiddi/tokenapi/internal/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type deployOptions struct {
	Artifact string
	ChainID  int64
	Name     string
	Symbol   string
	Decimals string
	Key      string
	Args     []string // overrides name/symbol/decimals when set
}

var deployOpts deployOptions

var deployCmd = &cobra.Command{
	Use:   "deploy [constructor args...]",
	Short: "Deploy the sample ERC20 token",
	Long: `Deploy a token contract from a compiled Hardhat or Foundry artifact.

Without positional arguments the constructor gets --name, --symbol and
--decimals. Any positional arguments replace them and are packed in order
against the artifact's constructor inputs.

Examples:
  tokenapi deploy --artifact artifacts/contracts/MyToken.sol/MyToken.json
  tokenapi deploy --artifact out/MyToken.sol/MyToken.json --chain 11155111 Gold GLD 6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := deployOpts
		opts.Args = args
		return runDeploy(cmd.Context(), cmd.OutOrStdout(), cfg, nil, opts)
	},
}

func runDeploy(ctx context.Context, out io.Writer, c *config.Config, dial chain.Dialer, opts deployOptions) error {
	if opts.Artifact == "" {
		return errors.New("--artifact is required")
	}

	art, err := contract.LoadArtifact(opts.Artifact)
	if err != nil {
		return err
	}
	raw := opts.Args
	if len(raw) == 0 {
		raw = []string{opts.Name, opts.Symbol, opts.Decimals}
	}
	ctorArgs, err := contract.CoerceArgs(art.ABI.Constructor.Inputs, raw)
	if err != nil {
		return err
	}

	key := opts.Key
	if key == "" {
		if key, err = defaultSigningKey(c.Signer); err != nil {
			return err
		}
	}

	tokenABI, err := contract.LoadERC20ABI(c.ERC20ABIPath)
	if err != nil {
		return err
	}

	reg, err := newRegistry(ctx, c, dial)
	if err != nil {
		return err
	}
	defer reg.Close()

	ep, err := reg.Resolve(opts.ChainID)
	if err != nil {
		return err
	}

	spin := ui.NewSpinner(out, fmt.Sprintf("Deploying %s on %s...", artifactName(art), ui.ChainName(ep.Chain.DisplayName)))
	spin.Start()
	d, err := contract.NewWriter(reg).Deploy(ctx, opts.ChainID, art.Bytecode, art.ABI, key, ctorArgs...)
	spin.Stop()
	if err != nil {
		return err
	}

	spin = ui.NewSpinner(out, "Waiting for confirmation...")
	spin.Start()
	receipt, err := chain.WaitForReceipt(ctx, ep.Client, d.TxHash, config.TxDeployTimeout)
	spin.Stop()
	if err != nil {
		return errors.Wrapf(err, "tx %s", d.TxHash.Hex())
	}

	pairs := [][2]string{
		{"Deployer", ui.Addr(d.From.Hex())},
		{"Contract", ui.Addr(d.Address.Hex())},
		{"Tx Hash", ui.Addr(d.TxHash.Hex())},
		{"Block", receipt.BlockNumber.String()},
		{"Gas Used", fmt.Sprintf("%d", receipt.GasUsed)},
	}

	facade := erc20.NewFacade(contract.NewReader(reg), nil, reg, tokenABI)
	if token, err := facade.Describe(ctx, opts.ChainID, d.Address.Hex()); err == nil {
		pairs = append(pairs,
			[2]string{"Token", fmt.Sprintf("%s (%s)", token.Name, token.Symbol)},
			[2]string{"Total Supply", formatSupply(token)},
		)
	} else {
		pairs = append(pairs, [2]string{"Total Supply", ui.Meta("unavailable: " + err.Error())})
	}
	if ep.Chain.Explorer != "" {
		pairs = append(pairs, [2]string{"Explorer", ep.Chain.Explorer + "/address/" + d.Address.Hex()})
	}

	fmt.Fprintln(out, ui.KeyValueBlock("Deployment successful", pairs))
	return nil
}

func artifactName(a *contract.Artifact) string {
	if a.Name != "" {
		return a.Name
	}
	return "contract"
}

func formatSupply(t *erc20.TokenDescriptor) string {
	raw, _ := new(big.Int).SetString(t.TotalSupplyRaw, 10)
	return fmt.Sprintf("%s %s (raw %s)", erc20.FormatUnits(raw, t.Decimals), t.Symbol, t.TotalSupplyRaw)
}

func init() {
	deployCmd.Flags().StringVar(&deployOpts.Artifact, "artifact", "", "Hardhat/Foundry artifact JSON (required)")
	deployCmd.Flags().Int64Var(&deployOpts.ChainID, "chain", chain.LocalChainID, "chain id to deploy on")
	deployCmd.Flags().StringVar(&deployOpts.Name, "name", "MyToken", "token name")
	deployCmd.Flags().StringVar(&deployOpts.Symbol, "symbol", "MTK", "token symbol")
	deployCmd.Flags().StringVar(&deployOpts.Decimals, "decimals", "18", "token decimals")
	deployCmd.Flags().StringVar(&deployOpts.Key, "key", "", "hex signing key (default: configured signer)")
	_ = deployCmd.MarkFlagRequired("artifact")
}
