// Code generated by "requestgen -method POST -responseType .APIResponse -responseDataField Data -url /v1/user/request_withdrawal -type RequestWithdrawalRequest -responseDataType .Withdrawal"; DO NOT EDIT.

package bitbankapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
)

func (r *RequestWithdrawalRequest) Asset(asset string) *RequestWithdrawalRequest {
	r.asset = asset
	return r
}

func (r *RequestWithdrawalRequest) Uuid(uuid string) *RequestWithdrawalRequest {
	r.uuid = &uuid
	return r
}

func (r *RequestWithdrawalRequest) Amount(amount string) *RequestWithdrawalRequest {
	r.amount = &amount
	return r
}

func (r *RequestWithdrawalRequest) OtpToken(otpToken string) *RequestWithdrawalRequest {
	r.otpToken = &otpToken
	return r
}

func (r *RequestWithdrawalRequest) SmsToken(smsToken string) *RequestWithdrawalRequest {
	r.smsToken = &smsToken
	return r
}

// GetQueryParameters builds and checks the query parameters and returns url.Values
func (r *RequestWithdrawalRequest) GetQueryParameters() (url.Values, error) {
	var params = map[string]interface{}{}

	query := url.Values{}
	for _k, _v := range params {
		query.Add(_k, fmt.Sprintf("%v", _v))
	}

	return query, nil
}

// GetParameters builds and checks the parameters and return the result in a map object
func (r *RequestWithdrawalRequest) GetParameters() (map[string]interface{}, error) {
	var params = map[string]interface{}{}
	// check asset field -> json key asset
	asset := r.asset

	// TEMPLATE check-required
	if len(asset) == 0 {
		return nil, fmt.Errorf("asset is required, empty string given")
	}
	// END TEMPLATE check-required

	// assign parameter of asset
	params["asset"] = asset
	// check uuid field -> json key uuid
	if r.uuid != nil {
		uuid := *r.uuid

		// assign parameter of uuid
		params["uuid"] = uuid
	} else {
	}
	// check amount field -> json key amount
	if r.amount != nil {
		amount := *r.amount

		// assign parameter of amount
		params["amount"] = amount
	} else {
	}
	// check otpToken field -> json key otp_token
	if r.otpToken != nil {
		otpToken := *r.otpToken

		// assign parameter of otpToken
		params["otp_token"] = otpToken
	} else {
	}
	// check smsToken field -> json key sms_token
	if r.smsToken != nil {
		smsToken := *r.smsToken

		// assign parameter of smsToken
		params["sms_token"] = smsToken
	} else {
	}

	return params, nil
}

// GetParametersQuery converts the parameters from GetParameters into the url.Values format
func (r *RequestWithdrawalRequest) GetParametersQuery() (url.Values, error) {
	query := url.Values{}

	params, err := r.GetParameters()
	if err != nil {
		return query, err
	}

	for _k, _v := range params {
		if r.isVarSlice(_v) {
			r.iterateSlice(_v, func(it interface{}) {
				query.Add(_k+"[]", fmt.Sprintf("%v", it))
			})
		} else {
			query.Add(_k, fmt.Sprintf("%v", _v))
		}
	}

	return query, nil
}

// GetParametersJSON converts the parameters from GetParameters into the JSON format
func (r *RequestWithdrawalRequest) GetParametersJSON() ([]byte, error) {
	params, err := r.GetParameters()
	if err != nil {
		return nil, err
	}

	return json.Marshal(params)
}

// GetSlugParameters builds and checks the slug parameters and return the result in a map object
func (r *RequestWithdrawalRequest) GetSlugParameters() (map[string]interface{}, error) {
	var params = map[string]interface{}{}

	return params, nil
}

func (r *RequestWithdrawalRequest) applySlugsToUrl(url string, slugs map[string]string) string {
	for _k, _v := range slugs {
		needleRE := regexp.MustCompile(":" + _k + "\\b")
		url = needleRE.ReplaceAllString(url, _v)
	}

	return url
}

func (r *RequestWithdrawalRequest) iterateSlice(slice interface{}, _f func(it interface{})) {
	sliceValue := reflect.ValueOf(slice)
	for _i := 0; _i < sliceValue.Len(); _i++ {
		it := sliceValue.Index(_i).Interface()
		_f(it)
	}
}

func (r *RequestWithdrawalRequest) isVarSlice(_v interface{}) bool {
	rt := reflect.TypeOf(_v)
	switch rt.Kind() {
	case reflect.Slice:
		return true
	}
	return false
}

func (r *RequestWithdrawalRequest) GetSlugsMap() (map[string]string, error) {
	slugs := map[string]string{}
	params, err := r.GetSlugParameters()
	if err != nil {
		return slugs, err
	}

	for _k, _v := range params {
		slugs[_k] = fmt.Sprintf("%v", _v)
	}

	return slugs, nil
}

// GetPath returns the request path of the API
func (r *RequestWithdrawalRequest) GetPath() string {
	return "/v1/user/request_withdrawal"
}

// Do generates the request object and send the request object to the API endpoint
func (r *RequestWithdrawalRequest) Do(ctx context.Context) (*Withdrawal, error) {

	params, err := r.GetParameters()
	if err != nil {
		return nil, err
	}
	query := url.Values{}

	var apiURL string

	apiURL = r.GetPath()

	req, err := r.client.NewAuthenticatedRequest(ctx, "POST", apiURL, query, params)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var apiResponse APIResponse

	type responseUnmarshaler interface {
		Unmarshal(data []byte) error
	}
	if unmarshaler, ok := interface{}(&apiResponse).(responseUnmarshaler); ok {
		if err := unmarshaler.Unmarshal(response.Body); err != nil {
			return nil, err
		}
	} else {
		// The line below checks the content type, however, some API server might not send the correct content type header,
		// Hence, this is commented for backward compatibility
		// response.IsJSON()
		if err := response.DecodeJSON(&apiResponse); err != nil {
			return nil, err
		}
	}

	type responseValidator interface {
		Validate() error
	}
	if validator, ok := interface{}(&apiResponse).(responseValidator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	var data Withdrawal
	if err := json.Unmarshal(apiResponse.Data, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
