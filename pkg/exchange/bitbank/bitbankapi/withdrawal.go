package bitbankapi

import (
	"github.com/c9s/requestgen"
)

//go:generate GetRequest -url "/v1/user/withdrawal_account" -type GetWithdrawalAccountRequest -responseDataType .WithdrawalAccountList
type GetWithdrawalAccountRequest struct {
	client requestgen.AuthenticatedAPIClient

	asset string `param:"asset,required"`
}

//go:generate PostRequest -url "/v1/user/request_withdrawal" -type RequestWithdrawalRequest -responseDataType .Withdrawal
type RequestWithdrawalRequest struct {
	client requestgen.AuthenticatedAPIClient

	asset string `param:"asset,required"`

	// uuid is the withdrawal account uuid from GetWithdrawalAccountRequest
	uuid   *string `param:"uuid"`
	amount *string `param:"amount"`

	// otpToken and smsToken are required when the two-factor authentication is enabled
	otpToken *string `param:"otp_token"`
	smsToken *string `param:"sms_token"`
}

func (c *RestClient) NewGetWithdrawalAccountRequest() *GetWithdrawalAccountRequest {
	return &GetWithdrawalAccountRequest{client: c}
}

func (c *RestClient) NewRequestWithdrawalRequest() *RequestWithdrawalRequest {
	return &RequestWithdrawalRequest{client: c}
}
