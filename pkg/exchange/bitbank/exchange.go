package bitbank

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/c9s/bitbank/pkg/exchange/bitbank/bitbankapi"
)

const ID = "bitbank"

var log = logrus.WithFields(logrus.Fields{
	"exchange": ID,
})

type Option func(e *Exchange) error

// WithHTTPClient replaces the underlying http client, mostly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(e *Exchange) error {
		e.client.HttpClient = client
		return nil
	}
}

func WithPublicBaseURL(baseURL string) Option {
	return func(e *Exchange) error {
		u, err := url.Parse(baseURL)
		if err != nil {
			return errors.Wrapf(err, "invalid public base url %q", baseURL)
		}
		e.client.PublicBaseURL = u
		return nil
	}
}

func WithPrivateBaseURL(baseURL string) Option {
	return func(e *Exchange) error {
		u, err := url.Parse(baseURL)
		if err != nil {
			return errors.Wrapf(err, "invalid private base url %q", baseURL)
		}
		e.client.BaseURL = u
		return nil
	}
}

// WithProxy routes every request through the given proxy url.
func WithProxy(proxyURL string) Option {
	return func(e *Exchange) error {
		if proxyURL == "" {
			return nil
		}

		proxy, err := url.Parse(proxyURL)
		if err != nil {
			return errors.Wrapf(err, "invalid proxy url %q", proxyURL)
		}

		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.Proxy = http.ProxyURL(proxy)

		// the installed client may belong to the caller, so it is copied
		httpClient := *e.client.HttpClient
		httpClient.Transport = transport
		e.client.HttpClient = &httpClient
		return nil
	}
}

// Exchange exposes one method per bitbank endpoint on top of bitbankapi.RestClient.
// It is safe for concurrent use; all private calls share one nonce stream.
type Exchange struct {
	client *bitbankapi.RestClient
}

func New(key, secret string, options ...Option) (*Exchange, error) {
	client := bitbankapi.NewClient()
	if len(key) > 0 && len(secret) > 0 {
		client.Auth(key, secret)
	}

	e := &Exchange{client: client}

	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

func (e *Exchange) Name() string {
	return ID
}

// Client returns the low-level rest client for requests the façade does not cover.
func (e *Exchange) Client() *bitbankapi.RestClient {
	return e.client
}

func (e *Exchange) GetTicker(ctx context.Context, pair string) (*bitbankapi.Ticker, error) {
	return e.client.NewGetTickerRequest().Pair(toLocalPair(pair)).Do(ctx)
}

func (e *Exchange) GetDepth(ctx context.Context, pair string) (*bitbankapi.Depth, error) {
	return e.client.NewGetDepthRequest().Pair(toLocalPair(pair)).Do(ctx)
}

func (e *Exchange) GetTransactions(ctx context.Context, pair string) ([]bitbankapi.Transaction, error) {
	resp, err := e.client.NewGetTransactionsRequest().Pair(toLocalPair(pair)).Do(ctx)
	if err != nil {
		return nil, err
	}

	return resp.Transactions, nil
}

// GetTransactionsByDate returns the transactions of the given day, date is YYYYMMDD.
func (e *Exchange) GetTransactionsByDate(ctx context.Context, pair, date string) ([]bitbankapi.Transaction, error) {
	resp, err := e.client.NewGetTransactionsByDateRequest().
		Pair(toLocalPair(pair)).
		Date(date).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	return resp.Transactions, nil
}

func (e *Exchange) GetCandlestick(
	ctx context.Context, pair string, candleType bitbankapi.CandlestickType, date string,
) ([]bitbankapi.Candlestick, error) {
	resp, err := e.client.NewGetCandlestickRequest().
		Pair(toLocalPair(pair)).
		CandleType(candleType).
		Date(date).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	return resp.Candlestick, nil
}

// GetCandlestickAt is GetCandlestick with the date segment formatted from t.
func (e *Exchange) GetCandlestickAt(
	ctx context.Context, pair string, candleType bitbankapi.CandlestickType, t time.Time,
) ([]bitbankapi.Candlestick, error) {
	return e.GetCandlestick(ctx, pair, candleType, candleType.FormatDate(t))
}

func (e *Exchange) GetAssets(ctx context.Context) ([]bitbankapi.Asset, error) {
	resp, err := e.client.NewGetAssetsRequest().Do(ctx)
	if err != nil {
		return nil, err
	}

	return resp.Assets, nil
}

func (e *Exchange) GetOrder(ctx context.Context, pair string, orderID int64) (*bitbankapi.Order, error) {
	return e.client.NewGetOrderRequest().
		Pair(toLocalPair(pair)).
		OrderId(orderID).
		Do(ctx)
}

// SubmitOrder describes an order for Exchange.Order. Price is ignored for market orders.
type SubmitOrder struct {
	Pair     string
	Side     bitbankapi.OrderSide
	Type     bitbankapi.OrderType
	Amount   decimal.Decimal
	Price    decimal.Decimal
	PostOnly bool

	// TriggerPrice is used by the stop and stop_limit orders
	TriggerPrice decimal.Decimal
}

func (e *Exchange) Order(ctx context.Context, order SubmitOrder) (*bitbankapi.Order, error) {
	if !order.Amount.IsPositive() {
		return nil, errors.Errorf("invalid order amount %s", order.Amount)
	}

	req := e.client.NewSubmitOrderRequest().
		Pair(toLocalPair(order.Pair)).
		Side(order.Side).
		OrderType(order.Type).
		Amount(order.Amount.String())

	switch order.Type {
	case bitbankapi.OrderTypeLimit, bitbankapi.OrderTypeStopLimit:
		if !order.Price.IsPositive() {
			return nil, errors.Errorf("%s order requires a positive price, %s given", order.Type, order.Price)
		}
		req.Price(order.Price.String())
	}

	switch order.Type {
	case bitbankapi.OrderTypeStop, bitbankapi.OrderTypeStopLimit:
		if !order.TriggerPrice.IsPositive() {
			return nil, errors.Errorf("%s order requires a positive trigger price, %s given", order.Type, order.TriggerPrice)
		}
		req.TriggerPrice(order.TriggerPrice.String())
	}

	if order.PostOnly {
		req.PostOnly(true)
	}

	created, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	log.Infof("order %d submitted: %s %s %s %s @ %s", created.OrderId, created.Pair, created.Side, created.Type, created.StartAmount, created.Price)
	return created, nil
}

func (e *Exchange) CancelOrder(ctx context.Context, pair string, orderID int64) (*bitbankapi.Order, error) {
	return e.client.NewCancelOrderRequest().
		Pair(toLocalPair(pair)).
		OrderId(orderID).
		Do(ctx)
}

func (e *Exchange) CancelOrders(ctx context.Context, pair string, orderIDs ...int64) ([]bitbankapi.Order, error) {
	resp, err := e.client.NewCancelOrdersRequest().
		Pair(toLocalPair(pair)).
		OrderIds(orderIDs).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	return resp.Orders, nil
}

func (e *Exchange) GetOrdersInfo(ctx context.Context, pair string, orderIDs ...int64) ([]bitbankapi.Order, error) {
	resp, err := e.client.NewGetOrdersInfoRequest().
		Pair(toLocalPair(pair)).
		OrderIds(orderIDs).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	return resp.Orders, nil
}

// ActiveOrdersQuery holds the optional filters of GetActiveOrders, zero values are omitted.
type ActiveOrdersQuery struct {
	Count  int
	FromID int64
	EndID  int64
	Since  time.Time
	End    time.Time
}

func (e *Exchange) GetActiveOrders(ctx context.Context, pair string, q ActiveOrdersQuery) ([]bitbankapi.Order, error) {
	req := e.client.NewGetActiveOrdersRequest().Pair(toLocalPair(pair))
	if q.Count > 0 {
		req.Count(q.Count)
	}
	if q.FromID > 0 {
		req.FromId(q.FromID)
	}
	if q.EndID > 0 {
		req.EndId(q.EndID)
	}
	if !q.Since.IsZero() {
		req.Since(q.Since)
	}
	if !q.End.IsZero() {
		req.End(q.End)
	}

	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	return resp.Orders, nil
}

func (e *Exchange) GetWithdrawalAccount(ctx context.Context, asset string) ([]bitbankapi.WithdrawalAccount, error) {
	resp, err := e.client.NewGetWithdrawalAccountRequest().
		Asset(strings.ToLower(asset)).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	return resp.Accounts, nil
}

// WithdrawalRequest describes a withdrawal for Exchange.RequestWithdrawal, empty fields are omitted.
type WithdrawalRequest struct {
	Asset       string
	AccountUUID string
	Amount      decimal.Decimal
	OTPToken    string
	SMSToken    string
}

func (e *Exchange) RequestWithdrawal(ctx context.Context, w WithdrawalRequest) (*bitbankapi.Withdrawal, error) {
	req := e.client.NewRequestWithdrawalRequest().Asset(strings.ToLower(w.Asset))
	if w.AccountUUID != "" {
		if _, err := uuid.Parse(w.AccountUUID); err != nil {
			return nil, errors.Wrapf(err, "invalid withdrawal account uuid %q", w.AccountUUID)
		}
		req.Uuid(w.AccountUUID)
	}
	if !w.Amount.IsZero() {
		req.Amount(w.Amount.String())
	}
	if w.OTPToken != "" {
		req.OtpToken(w.OTPToken)
	}
	if w.SMSToken != "" {
		req.SmsToken(w.SMSToken)
	}

	withdrawal, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	log.Infof("withdrawal %s requested: %s %s to %s", withdrawal.UUID, withdrawal.Amount, withdrawal.Asset, withdrawal.Address)
	return withdrawal, nil
}

// toLocalPair converts "BTC_JPY", "btc-jpy" and "btc_jpy" into the bitbank form "btc_jpy".
func toLocalPair(pair string) string {
	return strings.ToLower(strings.ReplaceAll(pair, "-", "_"))
}
