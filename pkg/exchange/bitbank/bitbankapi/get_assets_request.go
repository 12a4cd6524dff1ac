package bitbankapi

import (
	"github.com/c9s/requestgen"
)

//go:generate GetRequest -url "/v1/user/assets" -type GetAssetsRequest -responseDataType .AssetList
type GetAssetsRequest struct {
	client requestgen.AuthenticatedAPIClient
}

func (c *RestClient) NewGetAssetsRequest() *GetAssetsRequest {
	return &GetAssetsRequest{client: c}
}
