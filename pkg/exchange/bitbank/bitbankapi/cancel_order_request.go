package bitbankapi

import (
	"github.com/c9s/requestgen"
)

//go:generate PostRequest -url "/v1/user/spot/cancel_order" -type CancelOrderRequest -responseDataType .Order
type CancelOrderRequest struct {
	client requestgen.AuthenticatedAPIClient

	pair    string `param:"pair,required"`
	orderId int64  `param:"order_id"`
}

func (c *RestClient) NewCancelOrderRequest() *CancelOrderRequest {
	return &CancelOrderRequest{client: c}
}

// CancelOrdersRequest cancels up to 30 orders of one pair at once.
//
//go:generate PostRequest -url "/v1/user/spot/cancel_orders" -type CancelOrdersRequest -responseDataType .OrderList
type CancelOrdersRequest struct {
	client requestgen.AuthenticatedAPIClient

	pair     string  `param:"pair,required"`
	orderIds []int64 `param:"order_ids,required"`
}

func (c *RestClient) NewCancelOrdersRequest() *CancelOrdersRequest {
	return &CancelOrdersRequest{client: c}
}
