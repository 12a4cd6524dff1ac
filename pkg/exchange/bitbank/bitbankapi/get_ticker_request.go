package bitbankapi

import (
	"github.com/c9s/requestgen"
)

//go:generate GetRequest -url "/:pair/ticker" -type GetTickerRequest -responseDataType .Ticker
type GetTickerRequest struct {
	client requestgen.APIClient

	pair string `param:"pair,slug,required"`
}

func (c *RestClient) NewGetTickerRequest() *GetTickerRequest {
	return &GetTickerRequest{client: c}
}
