package cmd

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/bitbank/pkg/exchange/bitbank/bitbankapi"
	"github.com/c9s/bitbank/pkg/style"
)

func init() {
	candlesCmd.Flags().String("type", string(bitbankapi.CandlestickType1Hour), "candlestick type, like 1min, 1hour or 1day")
	candlesCmd.Flags().String("date", "", "YYYYMMDD for types up to 1hour, YYYY for the others; defaults to today")
	RootCmd.AddCommand(candlesCmd)
}

// go run ./cmd/bitbank candles btc_jpy --type 1hour --date 20231114
var candlesCmd = &cobra.Command{
	Use:          "candles PAIR",
	Short:        "show the candlesticks of a pair",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		typeStr, err := cmd.Flags().GetString("type")
		if err != nil {
			return err
		}

		candleType, err := bitbankapi.ParseCandlestickType(typeStr)
		if err != nil {
			return err
		}

		date, err := cmd.Flags().GetString("date")
		if err != nil {
			return err
		}

		if len(date) == 0 {
			// bitbank buckets the candles by the JST calendar day
			date = candleType.FormatDate(time.Now().In(jst))
		}

		ex, err := newExchange()
		if err != nil {
			return err
		}

		candles, err := ex.GetCandlestick(cmd.Context(), args[0], candleType, date)
		if err != nil {
			return err
		}

		t := style.NewTable(cmd.OutOrStdout(), args[0]+" "+string(candleType), "time", "open", "high", "low", "close", "volume")
		for _, c := range candles {
			for _, k := range c.OHLCV {
				t.AppendRow(table.Row{
					k.Timestamp.Time().In(jst).Format("2006-01-02 15:04"),
					k.Open.String(),
					k.High.String(),
					k.Low.String(),
					k.Close.String(),
					k.Volume.String(),
				})
			}
		}
		t.Render()
		return nil
	},
}

var jst = time.FixedZone("JST", 9*60*60)
