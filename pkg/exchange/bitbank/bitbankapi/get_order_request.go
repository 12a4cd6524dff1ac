package bitbankapi

import (
	"github.com/c9s/requestgen"
)

//go:generate GetRequest -url "/v1/user/spot/order" -type GetOrderRequest -responseDataType .Order
type GetOrderRequest struct {
	client requestgen.AuthenticatedAPIClient

	pair    string `param:"pair,required"`
	orderId int64  `param:"order_id"`
}

func (c *RestClient) NewGetOrderRequest() *GetOrderRequest {
	return &GetOrderRequest{client: c}
}

//go:generate PostRequest -url "/v1/user/spot/orders_info" -type GetOrdersInfoRequest -responseDataType .OrderList
type GetOrdersInfoRequest struct {
	client requestgen.AuthenticatedAPIClient

	pair     string  `param:"pair,required"`
	orderIds []int64 `param:"order_ids,required"`
}

func (c *RestClient) NewGetOrdersInfoRequest() *GetOrdersInfoRequest {
	return &GetOrdersInfoRequest{client: c}
}
