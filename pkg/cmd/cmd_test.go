package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/bitbank/pkg/exchange/bitbank"
	"github.com/c9s/bitbank/pkg/testing/httptesting"
)

const tickerReply = `{"success":1,"data":{"sell":"101","buy":"99","open":"90","high":"110","low":"80","last":"100","vol":"12.5","timestamp":1700000000000}}`

func useTransport(t *testing.T, transport http.RoundTripper) {
	exchangeOptions = []bitbank.Option{bitbank.WithHTTPClient(&http.Client{Transport: transport})}
	t.Cleanup(func() {
		exchangeOptions = nil
	})
}

func useCredentials(t *testing.T) {
	viper.Set("bitbank-api-key", "key")
	viper.Set("bitbank-api-secret", "secret")
	t.Cleanup(func() {
		viper.Set("bitbank-api-key", "")
		viper.Set("bitbank-api-secret", "")
		viper.Set("bitbank-otp-secret", "")
	})
}

func runCommand(args ...string) (string, error) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs(args)
	err := RootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestTickerCmd(t *testing.T) {
	transport := &httptesting.MockTransport{}
	reply := func(req *http.Request) (*http.Response, error) {
		return httptesting.BuildResponseString(http.StatusOK, tickerReply), nil
	}
	transport.GET("/btc_jpy/ticker", reply)
	transport.GET("/xrp_jpy/ticker", reply)
	useTransport(t, transport)

	out, err := runCommand("ticker", "btc_jpy", "xrp_jpy")
	require.NoError(t, err)
	assert.Contains(t, out, "btc_jpy")
	assert.Contains(t, out, "xrp_jpy")
	assert.Contains(t, out, "+11.11%")
}

func TestTickerCmd_Error(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/btc_jpy/ticker", func(req *http.Request) (*http.Response, error) {
		return httptesting.BuildResponseString(http.StatusOK, tickerReply), nil
	})
	useTransport(t, transport)

	// xrp_jpy is not mocked, so the whole group fails
	_, err := runCommand("ticker", "btc_jpy", "xrp_jpy")
	assert.Error(t, err)
}

func TestTickerCmd_InvalidPair(t *testing.T) {
	var saved httptesting.SavedRequest
	exchangeOptions = []bitbank.Option{bitbank.WithHTTPClient(httptesting.HttpClientSaver(&saved, tickerReply))}
	t.Cleanup(func() {
		exchangeOptions = nil
	})

	_, err := runCommand("ticker", "BTC-JPY", "btcjpy")
	assert.EqualError(t, err, `invalid pair "btcjpy", expect BASE_QUOTE like btc_jpy`)
	assert.Nil(t, saved.Request)

	out, err := runCommand("ticker", "BTC-JPY")
	require.NoError(t, err)
	assert.Contains(t, out, "btc_jpy")
	assert.Equal(t, "/btc_jpy/ticker", saved.URL.Path)
}

func TestBalancesCmd_RequiresCredentials(t *testing.T) {
	useTransport(t, &httptesting.MockTransport{})

	_, err := runCommand("balances")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BITBANK_API_KEY")
	assert.Contains(t, err.Error(), "BITBANK_API_SECRET")
}

func TestBalancesCmd(t *testing.T) {
	useCredentials(t)
	useTransport(t, httptesting.MockWithJsonReply("/v1/user/assets", map[string]interface{}{
		"success": 1,
		"data": map[string]interface{}{
			"assets": []map[string]interface{}{
				{"asset": "jpy", "free_amount": "1000.5", "amount_precision": 4, "onhand_amount": "1000.5",
					"locked_amount": "0", "withdrawing_amount": "0", "withdrawal_fee": "550"},
				{"asset": "xrp", "free_amount": "0", "amount_precision": 6, "onhand_amount": "0",
					"locked_amount": "0", "withdrawing_amount": "0", "withdrawal_fee": "0.15"},
			},
		},
	}).Transport)

	out, err := runCommand("balances")
	require.NoError(t, err)
	assert.Contains(t, out, "1000.5000")
	assert.NotContains(t, out, "xrp")
}

func TestBalancesCmd_EnvPrefix(t *testing.T) {
	t.Setenv("SUB_API_KEY", "sub-key")
	t.Setenv("SUB_API_SECRET", "sub-secret")
	viper.Set("env-prefix", "sub")
	t.Cleanup(func() {
		viper.Set("env-prefix", "")
	})

	var saved httptesting.SavedRequest
	exchangeOptions = []bitbank.Option{bitbank.WithHTTPClient(httptesting.HttpClientSaver(&saved, `{"success":1,"data":{"assets":[]}}`))}
	t.Cleanup(func() {
		exchangeOptions = nil
	})

	_, err := runCommand("balances")
	require.NoError(t, err)
	require.NotNil(t, saved.Request)
	assert.Equal(t, "sub-key", saved.Header.Get("ACCESS-KEY"))

	t.Setenv("SUB_API_SECRET", "")
	_, err = runCommand("balances")
	assert.EqualError(t, err, "SUB_API_SECRET is required")
}

func TestOrdersSubmitCmd(t *testing.T) {
	useCredentials(t)

	var body []byte
	transport := &httptesting.MockTransport{}
	transport.POST("/v1/user/spot/order", func(req *http.Request) (*http.Response, error) {
		body = httptesting.ReadRequestBody(req)
		return httptesting.BuildResponseString(http.StatusOK, `{"success":1,"data":{"order_id":42,"pair":"btc_jpy",
"side":"buy","type":"limit","start_amount":"0.001","remaining_amount":"0.001","executed_amount":"0",
"price":"5000000","post_only":false,"average_price":"0","ordered_at":1700000000000,"status":"UNFILLED"}}`), nil
	})
	useTransport(t, transport)

	out, err := runCommand("orders", "submit", "--pair", "btc_jpy", "--side", "buy",
		"--type", "limit", "--amount", "0.001", "--price", "5000000")
	require.NoError(t, err)
	assert.Contains(t, out, "42")
	assert.JSONEq(t, `{"pair":"btc_jpy","side":"buy","type":"limit","amount":"0.001","price":"5000000"}`, string(body))

	_, err = runCommand("orders", "submit", "--pair", "btc_jpy", "--side", "hold", "--amount", "1", "--price", "1")
	assert.EqualError(t, err, `--side must be buy or sell, "hold" given`)
}

func TestWithdrawRequestCmd_GeneratesOTP(t *testing.T) {
	useCredentials(t)
	viper.Set("bitbank-otp-secret", "JBSWY3DPEHPK3PXP")

	var body []byte
	transport := &httptesting.MockTransport{}
	transport.POST("/v1/user/request_withdrawal", func(req *http.Request) (*http.Response, error) {
		body = httptesting.ReadRequestBody(req)
		return httptesting.BuildResponseString(http.StatusOK, `{"success":1,"data":{"uuid":"w1","asset":"btc",
"account_uuid":"2b6a4f4e-0c1d-4c0e-9d55-2c1e8f2b7a10","amount":"0.01","fee":"0.0006","label":"cold","address":"addr","txid":null,
"status":"CONFIRMING","requested_at":1700000002000}}`), nil
	})
	useTransport(t, transport)

	out, err := runCommand("withdraw", "request", "--asset", "btc", "--uuid", "2b6a4f4e-0c1d-4c0e-9d55-2c1e8f2b7a10", "--amount", "0.01")
	require.NoError(t, err)
	assert.Contains(t, out, "CONFIRMING")

	var params map[string]string
	require.NoError(t, json.Unmarshal(body, &params))
	assert.Equal(t, "btc", params["asset"])
	assert.Equal(t, "2b6a4f4e-0c1d-4c0e-9d55-2c1e8f2b7a10", params["uuid"])
	assert.Len(t, params["otp_token"], 6)
}
