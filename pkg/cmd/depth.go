package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/bitbank/pkg/style"
)

func init() {
	depthCmd.Flags().Int("limit", 10, "the number of price levels printed on each side")
	RootCmd.AddCommand(depthCmd)
}

// go run ./cmd/bitbank depth btc_jpy --limit 5
var depthCmd = &cobra.Command{
	Use:          "depth PAIR",
	Short:        "show the order book of a pair",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		if limit <= 0 {
			return fmt.Errorf("--limit must be positive, %d given", limit)
		}

		ex, err := newExchange()
		if err != nil {
			return err
		}

		depth, err := ex.GetDepth(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		asks := depth.Asks
		if len(asks) > limit {
			asks = asks[:limit]
		}

		bids := depth.Bids
		if len(bids) > limit {
			bids = bids[:limit]
		}

		title := fmt.Sprintf("%s @ %s", args[0], depth.Timestamp.String())
		t := style.NewTable(cmd.OutOrStdout(), title, "side", "price", "amount")

		// asks are listed from the highest to the best one
		for i := len(asks) - 1; i >= 0; i-- {
			t.AppendRow(table.Row{"ASK", asks[i].Price.String(), asks[i].Volume.String()})
		}

		t.AppendSeparator()

		for _, bid := range bids {
			t.AppendRow(table.Row{"BID", bid.Price.String(), bid.Volume.String()})
		}

		t.Render()
		return nil
	},
}
