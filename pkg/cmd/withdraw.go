package cmd

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/c9s/bitbank/pkg/cmd/cmdutil"
	"github.com/c9s/bitbank/pkg/exchange/bitbank"
	"github.com/c9s/bitbank/pkg/style"
)

func init() {
	withdrawCmd.PersistentFlags().String("asset", "", "the asset to withdraw, like btc")

	withdrawRequestCmd.Flags().String("uuid", "", "the withdrawal account uuid, see the accounts command")
	withdrawRequestCmd.Flags().String("amount", "", "the amount to withdraw")
	withdrawRequestCmd.Flags().String("otp", "", "the otp token, generated from --bitbank-otp-secret when empty")
	withdrawRequestCmd.Flags().String("sms", "", "the sms token")

	withdrawCmd.AddCommand(withdrawAccountsCmd, withdrawRequestCmd)
	RootCmd.AddCommand(withdrawCmd)
}

var withdrawCmd = &cobra.Command{
	Use:          "withdraw",
	Short:        "manage withdrawals",
	SilenceUsage: true,
}

func requiredAsset(cmd *cobra.Command) (string, error) {
	asset, err := cmd.Flags().GetString("asset")
	if err != nil {
		return "", err
	}

	if asset == "" {
		return "", fmt.Errorf("--asset option is required")
	}

	return asset, nil
}

// go run ./cmd/bitbank withdraw accounts --asset btc
var withdrawAccountsCmd = &cobra.Command{
	Use:          "accounts",
	Short:        "list the registered withdrawal accounts of an asset",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		asset, err := requiredAsset(cmd)
		if err != nil {
			return err
		}

		ex, err := newPrivateExchange()
		if err != nil {
			return err
		}

		accounts, err := ex.GetWithdrawalAccount(cmd.Context(), asset)
		if err != nil {
			return err
		}

		t := style.NewTable(cmd.OutOrStdout(), asset, "uuid", "label", "address")
		for _, a := range accounts {
			t.AppendRow(table.Row{a.UUID, a.Label, a.Address})
		}
		t.Render()
		return nil
	},
}

// go run ./cmd/bitbank withdraw request --asset btc --uuid ACCOUNT_UUID --amount 0.01
var withdrawRequestCmd = &cobra.Command{
	Use:          "request",
	Short:        "request a withdrawal to a registered account",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		asset, err := requiredAsset(cmd)
		if err != nil {
			return err
		}

		uuid, err := cmd.Flags().GetString("uuid")
		if err != nil {
			return err
		}

		amountStr, err := cmd.Flags().GetString("amount")
		if err != nil {
			return err
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return fmt.Errorf("invalid --amount %q: %w", amountStr, err)
		}

		if !amount.IsPositive() {
			return fmt.Errorf("--amount must be positive, %s given", amount)
		}

		otpFlag, err := cmd.Flags().GetString("otp")
		if err != nil {
			return err
		}

		sms, err := cmd.Flags().GetString("sms")
		if err != nil {
			return err
		}

		config := cmdutil.LoadConfig()
		otp, err := cmdutil.OTPToken(otpFlag, config.OTPSecret, time.Now())
		if err != nil {
			return err
		}

		ex, err := newPrivateExchange()
		if err != nil {
			return err
		}

		withdrawal, err := ex.RequestWithdrawal(cmd.Context(), bitbank.WithdrawalRequest{
			Asset:       asset,
			AccountUUID: uuid,
			Amount:      amount,
			OTPToken:    otp,
			SMSToken:    sms,
		})
		if err != nil {
			return err
		}

		t := style.NewTable(cmd.OutOrStdout(), "", "uuid", "asset", "amount", "fee", "address", "status", "requested at")
		t.AppendRow(table.Row{
			withdrawal.UUID,
			withdrawal.Asset,
			withdrawal.Amount.String(),
			withdrawal.Fee.String(),
			withdrawal.Address,
			withdrawal.Status,
			withdrawal.RequestedAt.Time().Format(time.RFC3339),
		})
		t.Render()
		return nil
	},
}
