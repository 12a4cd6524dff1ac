// Code generated by "requestgen -method GET -responseType .APIResponse -responseDataField Data -url /:pair/candlestick/:candleType/:date -type GetCandlestickRequest -responseDataType .CandlestickList"; DO NOT EDIT.

package bitbankapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
)

func (g *GetCandlestickRequest) Pair(pair string) *GetCandlestickRequest {
	g.pair = pair
	return g
}

func (g *GetCandlestickRequest) CandleType(candleType CandlestickType) *GetCandlestickRequest {
	g.candleType = candleType
	return g
}

func (g *GetCandlestickRequest) Date(date string) *GetCandlestickRequest {
	g.date = date
	return g
}

// GetQueryParameters builds and checks the query parameters and returns url.Values
func (g *GetCandlestickRequest) GetQueryParameters() (url.Values, error) {
	var params = map[string]interface{}{}

	query := url.Values{}
	for _k, _v := range params {
		query.Add(_k, fmt.Sprintf("%v", _v))
	}

	return query, nil
}

// GetParameters builds and checks the parameters and return the result in a map object
func (g *GetCandlestickRequest) GetParameters() (map[string]interface{}, error) {
	var params = map[string]interface{}{}

	return params, nil
}

// GetParametersQuery converts the parameters from GetParameters into the url.Values format
func (g *GetCandlestickRequest) GetParametersQuery() (url.Values, error) {
	query := url.Values{}

	params, err := g.GetParameters()
	if err != nil {
		return query, err
	}

	for _k, _v := range params {
		if g.isVarSlice(_v) {
			g.iterateSlice(_v, func(it interface{}) {
				query.Add(_k+"[]", fmt.Sprintf("%v", it))
			})
		} else {
			query.Add(_k, fmt.Sprintf("%v", _v))
		}
	}

	return query, nil
}

// GetParametersJSON converts the parameters from GetParameters into the JSON format
func (g *GetCandlestickRequest) GetParametersJSON() ([]byte, error) {
	params, err := g.GetParameters()
	if err != nil {
		return nil, err
	}

	return json.Marshal(params)
}

// GetSlugParameters builds and checks the slug parameters and return the result in a map object
func (g *GetCandlestickRequest) GetSlugParameters() (map[string]interface{}, error) {
	var params = map[string]interface{}{}
	// check pair field -> json key pair
	pair := g.pair

	// TEMPLATE check-required
	if len(pair) == 0 {
		return nil, fmt.Errorf("pair is required, empty string given")
	}
	// END TEMPLATE check-required

	// assign parameter of pair
	params["pair"] = pair
	// check candleType field -> json key candleType
	candleType := g.candleType

	// TEMPLATE check-required
	if len(candleType) == 0 {
		return nil, fmt.Errorf("candleType is required, empty string given")
	}
	// END TEMPLATE check-required

	// assign parameter of candleType
	params["candleType"] = candleType
	// check date field -> json key date
	date := g.date

	// TEMPLATE check-required
	if len(date) == 0 {
		return nil, fmt.Errorf("date is required, empty string given")
	}
	// END TEMPLATE check-required

	// assign parameter of date
	params["date"] = date

	return params, nil
}

func (g *GetCandlestickRequest) applySlugsToUrl(url string, slugs map[string]string) string {
	for _k, _v := range slugs {
		needleRE := regexp.MustCompile(":" + _k + "\\b")
		url = needleRE.ReplaceAllString(url, _v)
	}

	return url
}

func (g *GetCandlestickRequest) iterateSlice(slice interface{}, _f func(it interface{})) {
	sliceValue := reflect.ValueOf(slice)
	for _i := 0; _i < sliceValue.Len(); _i++ {
		it := sliceValue.Index(_i).Interface()
		_f(it)
	}
}

func (g *GetCandlestickRequest) isVarSlice(_v interface{}) bool {
	rt := reflect.TypeOf(_v)
	switch rt.Kind() {
	case reflect.Slice:
		return true
	}
	return false
}

func (g *GetCandlestickRequest) GetSlugsMap() (map[string]string, error) {
	slugs := map[string]string{}
	params, err := g.GetSlugParameters()
	if err != nil {
		return slugs, err
	}

	for _k, _v := range params {
		slugs[_k] = fmt.Sprintf("%v", _v)
	}

	return slugs, nil
}

// GetPath returns the request path of the API
func (g *GetCandlestickRequest) GetPath() string {
	return "/:pair/candlestick/:candleType/:date"
}

// Do generates the request object and send the request object to the API endpoint
func (g *GetCandlestickRequest) Do(ctx context.Context) (*CandlestickList, error) {

	// empty params for GET operation
	var params interface{}
	query, err := g.GetParametersQuery()
	if err != nil {
		return nil, err
	}

	var apiURL string

	apiURL = g.GetPath()
	slugs, err := g.GetSlugsMap()
	if err != nil {
		return nil, err
	}

	apiURL = g.applySlugsToUrl(apiURL, slugs)

	req, err := g.client.NewRequest(ctx, "GET", apiURL, query, params)
	if err != nil {
		return nil, err
	}

	response, err := g.client.SendRequest(req)
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
	var data CandlestickList
	if err := json.Unmarshal(apiResponse.Data, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
