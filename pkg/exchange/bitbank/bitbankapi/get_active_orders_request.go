package bitbankapi

import (
	"time"

	"github.com/c9s/requestgen"
)

//go:generate GetRequest -url "/v1/user/spot/active_orders" -type GetActiveOrdersRequest -responseDataType .OrderList
type GetActiveOrdersRequest struct {
	client requestgen.AuthenticatedAPIClient

	pair   string     `param:"pair,required"`
	count  *int       `param:"count"`
	fromId *int64     `param:"from_id"`
	endId  *int64     `param:"end_id"`
	since  *time.Time `param:"since,milliseconds"`
	end    *time.Time `param:"end,milliseconds"`
}

func (c *RestClient) NewGetActiveOrdersRequest() *GetActiveOrdersRequest {
	return &GetActiveOrdersRequest{client: c}
}
