package cmd

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/bitbank/pkg/exchange/bitbank/bitbankapi"
	"github.com/c9s/bitbank/pkg/style"
)

func init() {
	tradesCmd.Flags().String("date", "", "query the transactions of this day (YYYYMMDD) instead of the latest ones")
	RootCmd.AddCommand(tradesCmd)
}

// go run ./cmd/bitbank trades btc_jpy --date 20231114
var tradesCmd = &cobra.Command{
	Use:          "trades PAIR",
	Short:        "show the public transactions of a pair",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pair := args[0]

		date, err := cmd.Flags().GetString("date")
		if err != nil {
			return err
		}

		ex, err := newExchange()
		if err != nil {
			return err
		}

		var transactions []bitbankapi.Transaction
		if len(date) > 0 {
			if _, err := time.Parse(bitbankapi.TransactionDateLayout, date); err != nil {
				return err
			}

			transactions, err = ex.GetTransactionsByDate(ctx, pair, date)
		} else {
			transactions, err = ex.GetTransactions(ctx, pair)
		}

		if err != nil {
			return err
		}

		t := style.NewTable(cmd.OutOrStdout(), pair, "id", "side", "price", "amount", "executed at")
		for _, tx := range transactions {
			t.AppendRow(table.Row{
				tx.TransactionId,
				tx.Side,
				tx.Price.String(),
				tx.Amount.String(),
				tx.ExecutedAt.Time().Format(time.RFC3339),
			})
		}
		t.Render()
		return nil
	},
}
