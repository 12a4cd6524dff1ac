package bitbankapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

type OrderType string

const (
	OrderTypeLimit     OrderType = "limit"
	OrderTypeMarket    OrderType = "market"
	OrderTypeStop      OrderType = "stop"
	OrderTypeStopLimit OrderType = "stop_limit"
)

type OrderStatus string

const (
	OrderStatusInactive                OrderStatus = "INACTIVE"
	OrderStatusUnfilled                OrderStatus = "UNFILLED"
	OrderStatusPartiallyFilled         OrderStatus = "PARTIALLY_FILLED"
	OrderStatusFullyFilled             OrderStatus = "FULLY_FILLED"
	OrderStatusCanceledUnfilled        OrderStatus = "CANCELED_UNFILLED"
	OrderStatusCanceledPartiallyFilled OrderStatus = "CANCELED_PARTIALLY_FILLED"
)

// Closed reports whether the order can no longer be matched.
func (s OrderStatus) Closed() bool {
	switch s {
	case OrderStatusFullyFilled, OrderStatusCanceledUnfilled, OrderStatusCanceledPartiallyFilled:
		return true
	}
	return false
}

// Timestamp is a unix timestamp in milliseconds.
type Timestamp time.Time

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) String() string {
	return time.Time(t).String()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(time.Time(t).UnixMilli(), 10)), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch vt := v.(type) {
	case nil:
		*t = Timestamp{}
		return nil

	case float64:
		*t = Timestamp(time.UnixMilli(int64(vt)))
		return nil

	case string:
		if vt == "" {
			*t = Timestamp{}
			return nil
		}

		ms, err := strconv.ParseInt(vt, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid millisecond timestamp %q", vt)
		}

		*t = Timestamp(time.UnixMilli(ms))
		return nil
	}

	return fmt.Errorf("can not parse %T %s as millisecond timestamp", v, data)
}

type Ticker struct {
	Sell      decimal.Decimal `json:"sell"`
	Buy       decimal.Decimal `json:"buy"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Last      decimal.Decimal `json:"last"`
	Volume    decimal.Decimal `json:"vol"`
	Timestamp Timestamp       `json:"timestamp"`
}

// PriceVolume is one level of the order book, encoded as ["price", "amount"].
type PriceVolume struct {
	Price  decimal.Decimal
	Volume decimal.Decimal
}

func (p *PriceVolume) UnmarshalJSON(data []byte) error {
	var level []decimal.Decimal
	if err := json.Unmarshal(data, &level); err != nil {
		return err
	}

	if len(level) != 2 {
		return fmt.Errorf("unexpected price level %s", data)
	}

	p.Price = level[0]
	p.Volume = level[1]
	return nil
}

func (p PriceVolume) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{p.Price.String(), p.Volume.String()})
}

type Depth struct {
	Asks       []PriceVolume `json:"asks"`
	Bids       []PriceVolume `json:"bids"`
	Timestamp  Timestamp     `json:"timestamp"`
	SequenceId string        `json:"sequenceId"`
}

type Transaction struct {
	TransactionId int64           `json:"transaction_id"`
	Side          OrderSide       `json:"side"`
	Price         decimal.Decimal `json:"price"`
	Amount        decimal.Decimal `json:"amount"`
	ExecutedAt    Timestamp       `json:"executed_at"`
}

type TransactionList struct {
	Transactions []Transaction `json:"transactions"`
}

type CandlestickType string

const (
	CandlestickType1Min   CandlestickType = "1min"
	CandlestickType5Min   CandlestickType = "5min"
	CandlestickType15Min  CandlestickType = "15min"
	CandlestickType30Min  CandlestickType = "30min"
	CandlestickType1Hour  CandlestickType = "1hour"
	CandlestickType4Hour  CandlestickType = "4hour"
	CandlestickType8Hour  CandlestickType = "8hour"
	CandlestickType12Hour CandlestickType = "12hour"
	CandlestickType1Day   CandlestickType = "1day"
	CandlestickType1Week  CandlestickType = "1week"
	CandlestickType1Month CandlestickType = "1month"
)

// DateLayout returns the layout of the date path segment: intraday candles up to
// one hour are queried per day, larger ones per year.
func (t CandlestickType) DateLayout() string {
	switch t {
	case CandlestickType1Min, CandlestickType5Min, CandlestickType15Min, CandlestickType30Min, CandlestickType1Hour:
		return "20060102"
	}
	return "2006"
}

// FormatDate formats tm into the date path segment expected for this candle type.
func (t CandlestickType) FormatDate(tm time.Time) string {
	return tm.Format(t.DateLayout())
}

func ParseCandlestickType(s string) (CandlestickType, error) {
	t := CandlestickType(s)
	switch t {
	case CandlestickType1Min, CandlestickType5Min, CandlestickType15Min, CandlestickType30Min,
		CandlestickType1Hour, CandlestickType4Hour, CandlestickType8Hour, CandlestickType12Hour,
		CandlestickType1Day, CandlestickType1Week, CandlestickType1Month:
		return t, nil
	}

	return "", fmt.Errorf("incorrect candlestick type: %q", s)
}

// OHLCV is encoded as ["open", "high", "low", "close", "volume", timestamp].
type OHLCV struct {
	Open, High, Low, Close decimal.Decimal
	Volume                 decimal.Decimal
	Timestamp              Timestamp
}

func (o *OHLCV) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if len(fields) != 6 {
		return fmt.Errorf("unexpected ohlcv length %d: %s", len(fields), data)
	}

	values := []*decimal.Decimal{&o.Open, &o.High, &o.Low, &o.Close, &o.Volume}
	for i, v := range values {
		if err := json.Unmarshal(fields[i], v); err != nil {
			return errors.Wrapf(err, "ohlcv field %d", i)
		}
	}

	return json.Unmarshal(fields[5], &o.Timestamp)
}

type Candlestick struct {
	Type  CandlestickType `json:"type"`
	OHLCV []OHLCV         `json:"ohlcv"`
}

type CandlestickList struct {
	Candlestick []Candlestick `json:"candlestick"`
	Timestamp   Timestamp     `json:"timestamp"`
}

// WithdrawalFee is either a flat fee or a fee schedule split at a threshold.
type WithdrawalFee struct {
	Fee       decimal.Decimal `json:"-"`
	Threshold decimal.Decimal `json:"threshold"`
	Under     decimal.Decimal `json:"under"`
	Over      decimal.Decimal `json:"over"`
}

func (f *WithdrawalFee) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '{' {
		type schedule WithdrawalFee
		var s schedule
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = WithdrawalFee(s)
		return nil
	}

	return json.Unmarshal(data, &f.Fee)
}

// ForAmount returns the fee charged for withdrawing amount.
func (f WithdrawalFee) ForAmount(amount decimal.Decimal) decimal.Decimal {
	if f.Threshold.IsZero() {
		return f.Fee
	}

	if amount.LessThan(f.Threshold) {
		return f.Under
	}
	return f.Over
}

type Asset struct {
	Asset             string          `json:"asset"`
	FreeAmount        decimal.Decimal `json:"free_amount"`
	AmountPrecision   int             `json:"amount_precision"`
	OnhandAmount      decimal.Decimal `json:"onhand_amount"`
	LockedAmount      decimal.Decimal `json:"locked_amount"`
	WithdrawingAmount decimal.Decimal `json:"withdrawing_amount"`
	WithdrawalFee     WithdrawalFee   `json:"withdrawal_fee"`
	StopDeposit       bool            `json:"stop_deposit"`
	StopWithdrawal    bool            `json:"stop_withdrawal"`
}

type AssetList struct {
	Assets []Asset `json:"assets"`
}

type Order struct {
	OrderId         int64           `json:"order_id"`
	Pair            string          `json:"pair"`
	Side            OrderSide       `json:"side"`
	Type            OrderType       `json:"type"`
	StartAmount     decimal.Decimal `json:"start_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	ExecutedAmount  decimal.Decimal `json:"executed_amount"`
	Price           decimal.Decimal `json:"price"`
	PostOnly        bool            `json:"post_only"`
	AveragePrice    decimal.Decimal `json:"average_price"`
	OrderedAt       Timestamp       `json:"ordered_at"`
	ExpireAt        Timestamp       `json:"expire_at"`
	TriggeredAt     Timestamp       `json:"triggered_at"`
	TriggerPrice    decimal.Decimal `json:"trigger_price"`
	Status          OrderStatus     `json:"status"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
}

type WithdrawalAccount struct {
	UUID    string `json:"uuid"`
	Label   string `json:"label"`
	Address string `json:"address"`
}

type WithdrawalAccountList struct {
	Accounts []WithdrawalAccount `json:"accounts"`
}

type Withdrawal struct {
	UUID        string          `json:"uuid"`
	Asset       string          `json:"asset"`
	AccountUUID string          `json:"account_uuid"`
	Amount      decimal.Decimal `json:"amount"`
	Fee         decimal.Decimal `json:"fee"`
	Label       string          `json:"label"`
	Address     string          `json:"address"`
	TxID        string          `json:"txid"`
	Status      string          `json:"status"`
	RequestedAt Timestamp       `json:"requested_at"`
}
