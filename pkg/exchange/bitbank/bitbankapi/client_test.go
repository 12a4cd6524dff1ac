package bitbankapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/bitbank/pkg/nonce"
	"github.com/c9s/bitbank/pkg/testing/httptesting"
	"github.com/c9s/bitbank/pkg/testutil"
)

const (
	testKey    = "key"
	testSecret = "secret"
)

// newTestClient returns an authenticated client whose first nonce is 1000.
func newTestClient(httpClient *http.Client) *RestClient {
	client := NewClient()
	client.Auth(testKey, testSecret)
	client.HttpClient = httpClient
	client.nonce = nonce.NewNanosecondNonce(time.Unix(0, 999))
	return client
}

func readFixture(t *testing.T, name string) string {
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(data)
}

func fixtureReply(t *testing.T, name string) httptesting.RoundTripFunc {
	content := readFixture(t, name)
	return func(req *http.Request) (*http.Response, error) {
		resp := httptesting.BuildResponseString(http.StatusOK, content)
		httptesting.SetHeader(resp, "Content-Type", "application/json")
		return resp, nil
	}
}

func TestSign(t *testing.T) {
	t.Run("reference vector", func(t *testing.T) {
		assert.Equal(t,
			"467e693256b73f9a4baf4f95c03fcec2a5246196f6bdf33e3fd9a9065ad9180d",
			Sign("1234567890test", "secret"))
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, Sign("1000/v1/user/assets", "secret"), Sign("1000/v1/user/assets", "secret"))
	})

	t.Run("lowercase hex", func(t *testing.T) {
		sig := Sign("1000/v1/user/assets", "secret")
		assert.Len(t, sig, 64)
		assert.Regexp(t, "^[0-9a-f]{64}$", sig)
	})

	t.Run("sensitive to message and secret", func(t *testing.T) {
		base := Sign("1234567890test", "secret")
		assert.NotEqual(t, base, Sign("1234567890tesT", "secret"))
		assert.NotEqual(t, base, Sign("1234567890test", "secreT"))
	})
}

func TestSigningMessage(t *testing.T) {
	t.Run("get without query", func(t *testing.T) {
		assert.Equal(t, "1000/v1/user/assets",
			SigningMessage(http.MethodGet, "1000", "/v1/user/assets", "", nil))
	})

	t.Run("get with query", func(t *testing.T) {
		assert.Equal(t, "1000/v1/user/spot/order?order_id=123&pair=btc_jpy",
			SigningMessage(http.MethodGet, "1000", "/v1/user/spot/order", "order_id=123&pair=btc_jpy", nil))
	})

	t.Run("post signs the body only", func(t *testing.T) {
		body := []byte(`{"pair":"btc_jpy","order_id":"123"}`)
		assert.Equal(t, `1000{"pair":"btc_jpy","order_id":"123"}`,
			SigningMessage(http.MethodPost, "1000", "/v1/user/spot/cancel_order", "", body))
	})
}

func TestRestClient_PrivateGet(t *testing.T) {
	ctx := context.Background()

	t.Run("signed headers", func(t *testing.T) {
		var saved httptesting.SavedRequest
		client := newTestClient(httptesting.HttpClientSaver(&saved, `{"success":1,"data":{"assets":[]}}`))

		values, err := client.PrivateGet(ctx, "/v1/user/assets", nil)
		require.NoError(t, err)
		assert.EqualValues(t, 1, values["success"])

		require.NotNil(t, saved.Request)
		assert.Equal(t, "https://api.bitbank.cc/v1/user/assets", saved.URL.String())
		assert.Equal(t, "key", saved.Header.Get(HeaderAccessKey))
		assert.Equal(t, "1000", saved.Header.Get(HeaderAccessNonce))
		assert.Equal(t,
			"0e3d40f76e42f6fdd2855cc9f70e23498f88a9b3e712e4ce43a1f3356718fd82",
			saved.Header.Get(HeaderAccessSignature))
	})

	t.Run("query is sorted and signed", func(t *testing.T) {
		var saved httptesting.SavedRequest
		client := newTestClient(httptesting.HttpClientSaver(&saved, `{"success":1,"data":{}}`))

		query := url.Values{}
		query.Set("pair", "btc_jpy")
		query.Set("order_id", "123")

		_, err := client.PrivateGet(ctx, "/v1/user/spot/order", query)
		require.NoError(t, err)

		assert.Equal(t, "order_id=123&pair=btc_jpy", saved.URL.RawQuery)

		n := saved.Header.Get(HeaderAccessNonce)
		assert.Equal(t,
			Sign(n+"/v1/user/spot/order?order_id=123&pair=btc_jpy", testSecret),
			saved.Header.Get(HeaderAccessSignature))
	})

	t.Run("query in the path is merged with params", func(t *testing.T) {
		var saved httptesting.SavedRequest
		client := newTestClient(httptesting.HttpClientSaver(&saved, `{"success":1,"data":{}}`))

		_, err := client.PrivateGet(ctx, "/v1/user/spot/active_orders?pair=btc_jpy", url.Values{"count": {"10"}})
		require.NoError(t, err)

		assert.Equal(t, "count=10&pair=btc_jpy", saved.URL.RawQuery)

		n := saved.Header.Get(HeaderAccessNonce)
		assert.Equal(t,
			Sign(n+"/v1/user/spot/active_orders?count=10&pair=btc_jpy", testSecret),
			saved.Header.Get(HeaderAccessSignature))
	})

	t.Run("query in the path is kept without params", func(t *testing.T) {
		var saved httptesting.SavedRequest
		client := newTestClient(httptesting.HttpClientSaver(&saved, `{"success":1,"data":{}}`))

		_, err := client.PrivateGet(ctx, "/v1/user/spot/active_orders?pair=btc_jpy", nil)
		require.NoError(t, err)
		assert.Equal(t, "pair=btc_jpy", saved.URL.RawQuery)
	})

	t.Run("nonce increases per request", func(t *testing.T) {
		var saved httptesting.SavedRequest
		client := newTestClient(httptesting.HttpClientSaver(&saved, `{"success":1,"data":{}}`))

		var last int64
		for i := 0; i < 5; i++ {
			_, err := client.PrivateGet(ctx, "/v1/user/assets", nil)
			require.NoError(t, err)

			n, err := strconv.ParseInt(saved.Header.Get(HeaderAccessNonce), 10, 64)
			require.NoError(t, err)
			assert.Greater(t, n, last)
			last = n
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		var saved httptesting.SavedRequest
		client := NewClient()
		client.HttpClient = httptesting.HttpClientSaver(&saved, `{"success":1,"data":{}}`)

		values, err := client.PrivateGet(ctx, "/v1/user/assets", nil)
		assert.EqualError(t, err, "empty api key")
		assert.Nil(t, values)
		assert.Nil(t, saved.Request, "no request should be sent")

		client.Auth("key", "")
		_, err = client.PrivateGet(ctx, "/v1/user/assets", nil)
		assert.EqualError(t, err, "empty api secret")
		assert.Nil(t, saved.Request)
	})

	t.Run("transport error", func(t *testing.T) {
		client := newTestClient(httptesting.HttpClientWithError(errors.New("connection refused")))

		values, err := client.PrivateGet(ctx, "/v1/user/assets", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		assert.Nil(t, values)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		client := newTestClient(httptesting.HttpClientWithStatus(http.StatusUnauthorized, readFixture(t, "error_auth.json")))

		values, err := client.PrivateGet(ctx, "/v1/user/assets", nil)
		assert.Nil(t, values)

		var errResponse *ErrorResponse
		require.True(t, errors.As(err, &errResponse))
		assert.Equal(t, http.StatusUnauthorized, errResponse.StatusCode)
		assert.Equal(t, 20001, errResponse.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		client := newTestClient(httptesting.HttpClientWithContent(`{"success":`))

		values, err := client.PrivateGet(ctx, "/v1/user/assets", nil)
		assert.Error(t, err)
		assert.Nil(t, values)
	})

	t.Run("top level array", func(t *testing.T) {
		client := newTestClient(httptesting.HttpClientWithContent(`[1,2,3]`))

		values, err := client.PrivateGet(ctx, "/v1/user/assets", nil)
		assert.Error(t, err)
		assert.Nil(t, values)
	})

	t.Run("null body", func(t *testing.T) {
		client := newTestClient(httptesting.HttpClientWithContent(`null`))

		values, err := client.PrivateGet(ctx, "/v1/user/assets", nil)
		assert.Error(t, err)
		assert.Nil(t, values)
	})

	t.Run("failure envelope is returned as is", func(t *testing.T) {
		client := newTestClient(httptesting.HttpClientWithContent(`{"success":0,"data":{"code":10000}}`))

		values, err := client.PrivateGet(ctx, "/v1/user/assets", nil)
		require.NoError(t, err)
		assert.EqualValues(t, 0, values["success"])
	})
}

func TestRestClient_PrivatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("string body is sent verbatim", func(t *testing.T) {
		var saved httptesting.SavedRequest
		client := newTestClient(httptesting.HttpClientSaver(&saved, `{"success":1,"data":{}}`))

		body := `{"pair":"btc_jpy","order_id":"123"}`
		_, err := client.PrivatePost(ctx, "/v1/user/spot/cancel_order", body)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, saved.Method)
		assert.Equal(t, body, string(saved.Body))
		assert.Equal(t, "application/json", saved.Header.Get("Content-Type"))
		assert.Equal(t, "1000", saved.Header.Get(HeaderAccessNonce))
		assert.Equal(t,
			"6e3b3111f0f4f0419e9fa438c206bdd0ac7b71b3724767f860bf4c32414debd2",
			saved.Header.Get(HeaderAccessSignature))
	})

	t.Run("map body is encoded with sorted keys", func(t *testing.T) {
		var saved httptesting.SavedRequest
		client := newTestClient(httptesting.HttpClientSaver(&saved, `{"success":1,"data":{}}`))

		_, err := client.PrivatePost(ctx, "/v1/user/spot/cancel_order", map[string]interface{}{
			"pair":     "btc_jpy",
			"order_id": 123,
		})
		require.NoError(t, err)

		assert.Equal(t, `{"order_id":123,"pair":"btc_jpy"}`, string(saved.Body))

		n := saved.Header.Get(HeaderAccessNonce)
		assert.Equal(t, Sign(n+string(saved.Body), testSecret), saved.Header.Get(HeaderAccessSignature))
	})

	t.Run("unmarshalable body", func(t *testing.T) {
		var saved httptesting.SavedRequest
		client := newTestClient(httptesting.HttpClientSaver(&saved, `{"success":1,"data":{}}`))

		_, err := client.PrivatePost(ctx, "/v1/user/spot/cancel_order", map[string]interface{}{
			"ch": make(chan int),
		})
		assert.Error(t, err)
		assert.Nil(t, saved.Request)
	})
}

func TestRestClient_PublicGet(t *testing.T) {
	var saved httptesting.SavedRequest
	client := newTestClient(httptesting.HttpClientSaver(&saved, readFixture(t, "ticker.json")))

	values, err := client.PublicGet(context.Background(), "/btc_jpy/ticker")
	require.NoError(t, err)

	assert.Equal(t, "https://public.bitbank.cc/btc_jpy/ticker", saved.URL.String())
	assert.Empty(t, saved.Header.Get(HeaderAccessKey))
	assert.Empty(t, saved.Header.Get(HeaderAccessNonce))
	assert.Empty(t, saved.Header.Get(HeaderAccessSignature))

	data, ok := values["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "5219999", data["last"])
}

func TestRestClient_MarketDataRequests(t *testing.T) {
	ctx := context.Background()

	transport := &httptesting.MockTransport{}
	transport.GET("/btc_jpy/ticker", fixtureReply(t, "ticker.json"))
	transport.GET("/btc_jpy/depth", fixtureReply(t, "depth.json"))
	transport.GET("/btc_jpy/transactions", fixtureReply(t, "transactions.json"))
	transport.GET("/btc_jpy/transactions/20231114", fixtureReply(t, "transactions.json"))
	transport.GET("/btc_jpy/candlestick/1hour/20231114", fixtureReply(t, "candlestick.json"))

	// public requests must work without credentials
	client := NewClient()
	client.HttpClient = &http.Client{Transport: transport}

	t.Run("ticker", func(t *testing.T) {
		ticker, err := client.NewGetTickerRequest().Pair("btc_jpy").Do(ctx)
		require.NoError(t, err)
		assert.Equal(t, "5219999", ticker.Last.String())
		assert.Equal(t, "152.6582", ticker.Volume.String())
		assert.Equal(t, int64(1700000000123), ticker.Timestamp.Time().UnixMilli())
	})

	t.Run("depth", func(t *testing.T) {
		depth, err := client.NewGetDepthRequest().Pair("btc_jpy").Do(ctx)
		require.NoError(t, err)
		require.Len(t, depth.Asks, 2)
		require.Len(t, depth.Bids, 3)
		assert.Equal(t, "5220000", depth.Asks[0].Price.String())
		assert.Equal(t, "0.012", depth.Asks[0].Volume.String())
		assert.Equal(t, "9183726450", depth.SequenceId)
	})

	t.Run("transactions", func(t *testing.T) {
		list, err := client.NewGetTransactionsRequest().Pair("btc_jpy").Do(ctx)
		require.NoError(t, err)
		require.Len(t, list.Transactions, 2)
		assert.Equal(t, int64(1033127371), list.Transactions[0].TransactionId)
		assert.Equal(t, OrderSideBuy, list.Transactions[0].Side)
	})

	t.Run("transactions by date", func(t *testing.T) {
		list, err := client.NewGetTransactionsByDateRequest().
			Pair("btc_jpy").
			Time(time.Date(2023, 11, 14, 10, 0, 0, 0, time.UTC)).
			Do(ctx)
		require.NoError(t, err)
		assert.Len(t, list.Transactions, 2)
	})

	t.Run("candlestick", func(t *testing.T) {
		list, err := client.NewGetCandlestickRequest().
			Pair("btc_jpy").
			CandleType(CandlestickType1Hour).
			Time(time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC)).
			Do(ctx)
		require.NoError(t, err)
		require.Len(t, list.Candlestick, 1)
		assert.Equal(t, CandlestickType1Hour, list.Candlestick[0].Type)
		require.Len(t, list.Candlestick[0].OHLCV, 2)
		assert.Equal(t, "5129000", list.Candlestick[0].OHLCV[1].Close.String())
	})

	t.Run("missing pair", func(t *testing.T) {
		_, err := client.NewGetTickerRequest().Do(ctx)
		assert.EqualError(t, err, "pair is required, empty string given")
	})
}

func TestRestClient_PrivateRequests(t *testing.T) {
	ctx := context.Background()

	var lastRequest *http.Request
	var lastBody []byte
	capture := func(name string) httptesting.RoundTripFunc {
		reply := fixtureReply(t, name)
		return func(req *http.Request) (*http.Response, error) {
			lastRequest = req
			lastBody = httptesting.ReadRequestBody(req)
			return reply(req)
		}
	}

	transport := &httptesting.MockTransport{}
	transport.GET("/v1/user/assets", capture("assets.json"))
	transport.GET("/v1/user/spot/order", capture("order.json"))
	transport.GET("/v1/user/spot/active_orders", capture("orders.json"))
	transport.POST("/v1/user/spot/order", capture("order.json"))
	transport.POST("/v1/user/spot/cancel_order", capture("order.json"))
	transport.POST("/v1/user/spot/cancel_orders", capture("orders.json"))
	transport.POST("/v1/user/spot/orders_info", capture("orders.json"))
	transport.GET("/v1/user/withdrawal_account", capture("withdrawal_account.json"))
	transport.POST("/v1/user/request_withdrawal", capture("withdrawal.json"))

	client := newTestClient(&http.Client{Transport: transport})

	assertSigned := func(t *testing.T) {
		require.NotNil(t, lastRequest)
		n := lastRequest.Header.Get(HeaderAccessNonce)
		_, err := strconv.ParseInt(n, 10, 64)
		require.NoError(t, err)

		message := SigningMessage(lastRequest.Method, n, lastRequest.URL.EscapedPath(), lastRequest.URL.RawQuery, lastBody)
		assert.Equal(t, Sign(message, testSecret), lastRequest.Header.Get(HeaderAccessSignature))
		assert.Equal(t, testKey, lastRequest.Header.Get(HeaderAccessKey))
	}

	t.Run("assets", func(t *testing.T) {
		list, err := client.NewGetAssetsRequest().Do(ctx)
		require.NoError(t, err)
		assertSigned(t)

		require.Len(t, list.Assets, 2)
		jpy := list.Assets[0]
		assert.Equal(t, "jpy", jpy.Asset)
		assert.Equal(t, "125000.5", jpy.FreeAmount.String())
		assert.Equal(t, "30000", jpy.WithdrawalFee.Threshold.String())

		btc := list.Assets[1]
		assert.Equal(t, "0.0006", btc.WithdrawalFee.Fee.String())
		assert.True(t, btc.StopWithdrawal)
	})

	t.Run("order", func(t *testing.T) {
		order, err := client.NewGetOrderRequest().Pair("btc_jpy").OrderId(28150001).Do(ctx)
		require.NoError(t, err)
		assertSigned(t)

		assert.Equal(t, "order_id=28150001&pair=btc_jpy", lastRequest.URL.RawQuery)
		assert.Equal(t, int64(28150001), order.OrderId)
		assert.Equal(t, OrderStatusPartiallyFilled, order.Status)
		assert.False(t, order.Status.Closed())
	})

	t.Run("active orders", func(t *testing.T) {
		list, err := client.NewGetActiveOrdersRequest().
			Pair("btc_jpy").
			Count(2).
			Since(time.UnixMilli(1700000000000)).
			Do(ctx)
		require.NoError(t, err)
		assertSigned(t)

		assert.Equal(t, "count=2&pair=btc_jpy&since=1700000000000", lastRequest.URL.RawQuery)
		require.Len(t, list.Orders, 2)
		assert.Equal(t, OrderTypeStopLimit, list.Orders[1].Type)
		assert.Equal(t, "4850000", list.Orders[1].TriggerPrice.String())
	})

	t.Run("submit order", func(t *testing.T) {
		order, err := client.NewSubmitOrderRequest().
			Pair("btc_jpy").
			Side(OrderSideBuy).
			OrderType(OrderTypeLimit).
			Amount("0.01").
			Price("5000000").
			PostOnly(true).
			Do(ctx)
		require.NoError(t, err)
		assertSigned(t)

		assert.JSONEq(t,
			`{"pair":"btc_jpy","amount":"0.01","price":"5000000","side":"buy","type":"limit","post_only":true}`,
			string(lastBody))
		assert.Equal(t, int64(28150001), order.OrderId)
	})

	t.Run("submit order requires amount", func(t *testing.T) {
		lastRequest = nil
		_, err := client.NewSubmitOrderRequest().
			Pair("btc_jpy").
			Side(OrderSideBuy).
			OrderType(OrderTypeMarket).
			Do(ctx)
		assert.EqualError(t, err, "amount is required, empty string given")
		assert.Nil(t, lastRequest)
	})

	t.Run("submit order rejects unknown side", func(t *testing.T) {
		_, err := client.NewSubmitOrderRequest().
			Pair("btc_jpy").
			Side("hold").
			OrderType(OrderTypeMarket).
			Amount("1").
			Do(ctx)
		assert.Error(t, err)
	})

	t.Run("cancel order", func(t *testing.T) {
		_, err := client.NewCancelOrderRequest().Pair("btc_jpy").OrderId(28150001).Do(ctx)
		require.NoError(t, err)
		assertSigned(t)
		assert.JSONEq(t, `{"pair":"btc_jpy","order_id":28150001}`, string(lastBody))
	})

	t.Run("cancel orders", func(t *testing.T) {
		list, err := client.NewCancelOrdersRequest().Pair("btc_jpy").OrderIds([]int64{28150001, 28150002}).Do(ctx)
		require.NoError(t, err)
		assertSigned(t)
		assert.JSONEq(t, `{"pair":"btc_jpy","order_ids":[28150001,28150002]}`, string(lastBody))
		assert.Len(t, list.Orders, 2)
	})

	t.Run("orders info", func(t *testing.T) {
		_, err := client.NewGetOrdersInfoRequest().Pair("btc_jpy").OrderIds([]int64{28150001}).Do(ctx)
		require.NoError(t, err)
		assertSigned(t)

		_, err = client.NewGetOrdersInfoRequest().Pair("btc_jpy").Do(ctx)
		assert.EqualError(t, err, "order_ids is required, empty slice given")
	})

	t.Run("withdrawal account", func(t *testing.T) {
		list, err := client.NewGetWithdrawalAccountRequest().Asset("btc").Do(ctx)
		require.NoError(t, err)
		assertSigned(t)
		assert.Equal(t, "asset=btc", lastRequest.URL.RawQuery)
		require.Len(t, list.Accounts, 1)
		assert.Equal(t, "cold wallet", list.Accounts[0].Label)
	})

	t.Run("request withdrawal", func(t *testing.T) {
		w, err := client.NewRequestWithdrawalRequest().
			Asset("btc").
			Uuid("2b6a4f4e-0c1d-4c0e-9d55-2c1e8f2b7a10").
			Amount("0.01").
			OtpToken("123456").
			Do(ctx)
		require.NoError(t, err)
		assertSigned(t)

		assert.JSONEq(t,
			`{"asset":"btc","uuid":"2b6a4f4e-0c1d-4c0e-9d55-2c1e8f2b7a10","amount":"0.01","otp_token":"123456"}`,
			string(lastBody))
		assert.Equal(t, "CONFIRMING", w.Status)
		assert.Empty(t, w.TxID)
	})
}

func TestRestClient_APIError(t *testing.T) {
	client := newTestClient(httptesting.HttpClientWithContent(readFixture(t, "error_auth.json")))

	list, err := client.NewGetAssetsRequest().Do(context.Background())
	assert.Nil(t, list)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 20001, apiErr.Code)
	assert.Equal(t, "bitbank api error code 20001", apiErr.Error())
}

func TestRestClient_ErrorResponseFromHTML(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/btc_jpy/ticker", func(req *http.Request) (*http.Response, error) {
		resp := httptesting.BuildResponseString(http.StatusBadGateway, "<html><body><h1>502 Bad Gateway</h1></body></html>")
		httptesting.SetHeader(resp, "Content-Type", "text/html; charset=utf-8")
		return resp, nil
	})

	client := NewClient()
	client.HttpClient = &http.Client{Transport: transport}

	_, err := client.NewGetTickerRequest().Pair("btc_jpy").Do(context.Background())

	var errResponse *ErrorResponse
	require.True(t, errors.As(err, &errResponse))
	assert.Equal(t, http.StatusBadGateway, errResponse.StatusCode)
	assert.Equal(t, "502 Bad Gateway", errResponse.Message)
	assert.Contains(t, errResponse.Error(), "GET https://public.bitbank.cc/btc_jpy/ticker")
}

func TestRestClient_Recorded(t *testing.T) {
	client := NewClient()
	client.HttpClient = &http.Client{Timeout: 5 * time.Second}

	key, secret, ok := testutil.IntegrationTestConfigured(t, "BITBANK")
	if ok {
		client.Auth(key, secret)
	} else {
		client.Auth(testKey, testSecret)
	}

	isRecording, saveRecord := httptesting.RunHttpTestWithRecorder(t, client.HttpClient, "testdata/recorded_assets.json")
	if isRecording && !ok {
		t.Skip("BITBANK_API_KEY and BITBANK_API_SECRET are required to record")
	}
	defer saveRecord()

	ctx := context.Background()

	ticker, err := client.NewGetTickerRequest().Pair("btc_jpy").Do(ctx)
	require.NoError(t, err)
	assert.True(t, ticker.Last.IsPositive())

	assets, err := client.NewGetAssetsRequest().Do(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, assets.Assets)
}
