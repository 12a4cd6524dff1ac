package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/c9s/bitbank/pkg/exchange/bitbank/bitbankapi"
	"github.com/c9s/bitbank/pkg/style"
)

func init() {
	RootCmd.AddCommand(tickerCmd)
}

// go run ./cmd/bitbank ticker btc_jpy xrp_jpy eth_jpy
var tickerCmd = &cobra.Command{
	Use:          "ticker PAIR...",
	Short:        "show the tickers of the given pairs",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		ex, err := newExchange()
		if err != nil {
			return err
		}

		pairs := make([]string, len(args))
		for i, arg := range args {
			pair := strings.ToLower(strings.ReplaceAll(arg, "-", "_"))
			if _, _, ok := bitbankapi.SplitPair(pair); !ok {
				return fmt.Errorf("invalid pair %q, expect BASE_QUOTE like btc_jpy", arg)
			}
			pairs[i] = pair
		}

		tickers := make([]*bitbankapi.Ticker, len(pairs))

		g, gCtx := errgroup.WithContext(ctx)
		for i, pair := range pairs {
			i, pair := i, pair
			if !bitbankapi.IsSupportedPair(pair) {
				log.Warnf("%s is not a known pair, querying anyway", pair)
			}

			g.Go(func() error {
				ticker, err := ex.GetTicker(gCtx, pair)
				if err != nil {
					return err
				}

				tickers[i] = ticker
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}

		t := style.NewTable(cmd.OutOrStdout(), "", "pair", "last", "buy", "sell", "high", "low", "volume", "change", "")
		for i, ticker := range tickers {
			change := style.ChangeRatio(ticker.Open, ticker.Last)
			t.AppendRow(table.Row{
				pairs[i],
				ticker.Last.String(),
				ticker.Buy.String(),
				ticker.Sell.String(),
				ticker.High.String(),
				ticker.Low.String(),
				ticker.Volume.String(),
				style.ChangeColored(change),
				style.ChangeEmoji(change),
			})
		}
		t.Render()
		return nil
	},
}
