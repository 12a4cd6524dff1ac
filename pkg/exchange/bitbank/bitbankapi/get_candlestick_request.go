package bitbankapi

import (
	"time"

	"github.com/c9s/requestgen"
)

//go:generate GetRequest -url "/:pair/candlestick/:candleType/:date" -type GetCandlestickRequest -responseDataType .CandlestickList
type GetCandlestickRequest struct {
	client requestgen.APIClient

	pair       string          `param:"pair,slug,required"`
	candleType CandlestickType `param:"candleType,slug,required"`

	// date is YYYYMMDD for candles up to 1hour, YYYY for the larger ones
	date string `param:"date,slug,required"`
}

func (c *RestClient) NewGetCandlestickRequest() *GetCandlestickRequest {
	return &GetCandlestickRequest{client: c}
}

// Time sets the date segment from t using the layout of the candle type,
// so CandleType must be set first.
func (g *GetCandlestickRequest) Time(t time.Time) *GetCandlestickRequest {
	return g.Date(g.candleType.FormatDate(t))
}
