package bitbankapi

import (
	"github.com/c9s/requestgen"
)

//go:generate GetRequest -url "/:pair/depth" -type GetDepthRequest -responseDataType .Depth
type GetDepthRequest struct {
	client requestgen.APIClient

	pair string `param:"pair,slug,required"`
}

func (c *RestClient) NewGetDepthRequest() *GetDepthRequest {
	return &GetDepthRequest{client: c}
}
