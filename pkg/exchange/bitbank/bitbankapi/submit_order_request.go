package bitbankapi

import (
	"github.com/c9s/requestgen"
)

//go:generate PostRequest -url "/v1/user/spot/order" -type SubmitOrderRequest -responseDataType .Order
type SubmitOrderRequest struct {
	client requestgen.AuthenticatedAPIClient

	pair   string `param:"pair,required"`
	amount string `param:"amount,required"`

	// price is not required for market orders
	price *string `param:"price"`

	side      OrderSide `param:"side,required" validValues:"buy,sell"`
	orderType OrderType `param:"type,required" validValues:"limit,market,stop,stop_limit"`

	postOnly     *bool   `param:"post_only"`
	triggerPrice *string `param:"trigger_price"`
}

func (c *RestClient) NewSubmitOrderRequest() *SubmitOrderRequest {
	return &SubmitOrderRequest{client: c}
}
