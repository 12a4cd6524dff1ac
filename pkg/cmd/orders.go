package cmd

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/c9s/bitbank/pkg/exchange/bitbank"
	"github.com/c9s/bitbank/pkg/exchange/bitbank/bitbankapi"
	"github.com/c9s/bitbank/pkg/style"
)

func init() {
	ordersCmd.PersistentFlags().String("pair", "", "the trading pair, like btc_jpy")

	ordersListCmd.Flags().Int("count", 0, "the max number of orders returned")
	ordersListCmd.Flags().Int64("from-id", 0, "only orders with an id not less than this")
	ordersListCmd.Flags().Int64("end-id", 0, "only orders with an id not greater than this")
	ordersListCmd.Flags().Duration("since", 0, "only orders placed within this duration, like 24h")

	ordersGetCmd.Flags().Int64("id", 0, "the order id")

	ordersSubmitCmd.Flags().String("side", "", "buy or sell")
	ordersSubmitCmd.Flags().String("type", string(bitbankapi.OrderTypeLimit), "limit, market, stop or stop_limit")
	ordersSubmitCmd.Flags().String("amount", "", "the order amount in the base asset")
	ordersSubmitCmd.Flags().String("price", "", "the order price, required by limit and stop_limit")
	ordersSubmitCmd.Flags().String("trigger-price", "", "the trigger price, required by stop and stop_limit")
	ordersSubmitCmd.Flags().Bool("post-only", false, "cancel the order instead of taking liquidity")

	ordersCancelCmd.Flags().Int64Slice("id", nil, "the order ids to cancel")
	ordersInfoCmd.Flags().Int64Slice("id", nil, "the order ids to query")

	ordersCmd.AddCommand(ordersListCmd, ordersGetCmd, ordersSubmitCmd, ordersCancelCmd, ordersInfoCmd)
	RootCmd.AddCommand(ordersCmd)
}

var ordersCmd = &cobra.Command{
	Use:          "orders",
	Short:        "list, submit and cancel spot orders",
	SilenceUsage: true,
}

func requiredPair(cmd *cobra.Command) (string, error) {
	pair, err := cmd.Flags().GetString("pair")
	if err != nil {
		return "", err
	}

	if pair == "" {
		return "", fmt.Errorf("--pair option is required")
	}

	return pair, nil
}

func printOrders(cmd *cobra.Command, orders ...bitbankapi.Order) {
	t := style.NewTable(cmd.OutOrStdout(), "", "id", "pair", "side", "type", "price", "trigger", "amount", "executed", "status", "ordered at")
	for _, o := range orders {
		t.AppendRow(table.Row{
			o.OrderId,
			o.Pair,
			o.Side,
			o.Type,
			o.Price.String(),
			o.TriggerPrice.String(),
			o.StartAmount.String(),
			o.ExecutedAmount.String(),
			o.Status,
			o.OrderedAt.Time().Format(time.RFC3339),
		})
	}
	t.Render()
}

// go run ./cmd/bitbank orders list --pair btc_jpy --since 24h
var ordersListCmd = &cobra.Command{
	Use:          "list",
	Short:        "list the active orders of a pair",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		pair, err := requiredPair(cmd)
		if err != nil {
			return err
		}

		var q bitbank.ActiveOrdersQuery
		if q.Count, err = cmd.Flags().GetInt("count"); err != nil {
			return err
		}
		if q.FromID, err = cmd.Flags().GetInt64("from-id"); err != nil {
			return err
		}
		if q.EndID, err = cmd.Flags().GetInt64("end-id"); err != nil {
			return err
		}

		since, err := cmd.Flags().GetDuration("since")
		if err != nil {
			return err
		}
		if since > 0 {
			q.Since = time.Now().Add(-since)
		}

		ex, err := newPrivateExchange()
		if err != nil {
			return err
		}

		orders, err := ex.GetActiveOrders(cmd.Context(), pair, q)
		if err != nil {
			return err
		}

		printOrders(cmd, orders...)
		return nil
	},
}

// go run ./cmd/bitbank orders get --pair btc_jpy --id 28150001
var ordersGetCmd = &cobra.Command{
	Use:          "get",
	Short:        "show one order",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		pair, err := requiredPair(cmd)
		if err != nil {
			return err
		}

		id, err := cmd.Flags().GetInt64("id")
		if err != nil {
			return err
		}

		if id <= 0 {
			return fmt.Errorf("--id option is required")
		}

		ex, err := newPrivateExchange()
		if err != nil {
			return err
		}

		order, err := ex.GetOrder(cmd.Context(), pair, id)
		if err != nil {
			return err
		}

		printOrders(cmd, *order)
		return nil
	},
}

// go run ./cmd/bitbank orders submit --pair btc_jpy --side buy --type limit --amount 0.001 --price 5000000
var ordersSubmitCmd = &cobra.Command{
	Use:          "submit",
	Short:        "submit a spot order",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		pair, err := requiredPair(cmd)
		if err != nil {
			return err
		}

		order, err := submitOrderFromFlags(cmd)
		if err != nil {
			return err
		}
		order.Pair = pair

		ex, err := newPrivateExchange()
		if err != nil {
			return err
		}

		created, err := ex.Order(cmd.Context(), order)
		if err != nil {
			return err
		}

		printOrders(cmd, *created)
		return nil
	},
}

func submitOrderFromFlags(cmd *cobra.Command) (order bitbank.SubmitOrder, err error) {
	side, err := cmd.Flags().GetString("side")
	if err != nil {
		return order, err
	}

	switch bitbankapi.OrderSide(side) {
	case bitbankapi.OrderSideBuy, bitbankapi.OrderSideSell:
		order.Side = bitbankapi.OrderSide(side)
	default:
		return order, fmt.Errorf("--side must be buy or sell, %q given", side)
	}

	orderType, err := cmd.Flags().GetString("type")
	if err != nil {
		return order, err
	}
	order.Type = bitbankapi.OrderType(orderType)

	if order.PostOnly, err = cmd.Flags().GetBool("post-only"); err != nil {
		return order, err
	}

	decimals := []struct {
		flag string
		dst  *decimal.Decimal
	}{
		{"amount", &order.Amount},
		{"price", &order.Price},
		{"trigger-price", &order.TriggerPrice},
	}

	for _, d := range decimals {
		s, err := cmd.Flags().GetString(d.flag)
		if err != nil {
			return order, err
		}

		if s == "" {
			continue
		}

		v, err := decimal.NewFromString(s)
		if err != nil {
			return order, fmt.Errorf("invalid --%s %q: %w", d.flag, s, err)
		}
		*d.dst = v
	}

	return order, nil
}

// go run ./cmd/bitbank orders cancel --pair btc_jpy --id 28150001 --id 28150002
var ordersCancelCmd = &cobra.Command{
	Use:          "cancel",
	Short:        "cancel one or more orders of a pair",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		pair, err := requiredPair(cmd)
		if err != nil {
			return err
		}

		ids, err := cmd.Flags().GetInt64Slice("id")
		if err != nil {
			return err
		}

		if len(ids) == 0 {
			return fmt.Errorf("at least one --id is required")
		}

		ex, err := newPrivateExchange()
		if err != nil {
			return err
		}

		if len(ids) == 1 {
			order, err := ex.CancelOrder(cmd.Context(), pair, ids[0])
			if err != nil {
				return err
			}

			printOrders(cmd, *order)
			return nil
		}

		orders, err := ex.CancelOrders(cmd.Context(), pair, ids...)
		if err != nil {
			return err
		}

		printOrders(cmd, orders...)
		return nil
	},
}

// go run ./cmd/bitbank orders info --pair btc_jpy --id 28150001 --id 28150002
var ordersInfoCmd = &cobra.Command{
	Use:          "info",
	Short:        "show several orders of a pair at once",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		pair, err := requiredPair(cmd)
		if err != nil {
			return err
		}

		ids, err := cmd.Flags().GetInt64Slice("id")
		if err != nil {
			return err
		}

		if len(ids) == 0 {
			return fmt.Errorf("at least one --id is required")
		}

		ex, err := newPrivateExchange()
		if err != nil {
			return err
		}

		orders, err := ex.GetOrdersInfo(cmd.Context(), pair, ids...)
		if err != nil {
			return err
		}

		printOrders(cmd, orders...)
		return nil
	},
}
