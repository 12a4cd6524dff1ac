package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/bitbank/pkg/style"
)

func init() {
	balancesCmd.Flags().Bool("all", false, "include the assets with zero balance")
	RootCmd.AddCommand(balancesCmd)
}

// go run ./cmd/bitbank balances
var balancesCmd = &cobra.Command{
	Use:          "balances",
	Short:        "Show user account balances",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		showAll, err := cmd.Flags().GetBool("all")
		if err != nil {
			return err
		}

		ex, err := newPrivateExchange()
		if err != nil {
			return err
		}

		assets, err := ex.GetAssets(cmd.Context())
		if err != nil {
			return err
		}

		t := style.NewTable(cmd.OutOrStdout(), "", "asset", "free", "locked", "onhand", "withdrawing", "withdrawal fee")
		for _, a := range assets {
			if !showAll && a.OnhandAmount.IsZero() {
				continue
			}

			fee := a.WithdrawalFee.ForAmount(a.FreeAmount)
			t.AppendRow(table.Row{
				a.Asset,
				a.FreeAmount.StringFixed(int32(a.AmountPrecision)),
				a.LockedAmount.StringFixed(int32(a.AmountPrecision)),
				a.OnhandAmount.StringFixed(int32(a.AmountPrecision)),
				a.WithdrawingAmount.StringFixed(int32(a.AmountPrecision)),
				fee.String(),
			})
		}
		t.Render()

		log.Debugf("%d assets queried", len(assets))
		return nil
	},
}
