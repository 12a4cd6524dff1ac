package bitbankapi

//go:generate -command GetRequest requestgen -method GET -responseType .APIResponse -responseDataField Data
//go:generate -command PostRequest requestgen -method POST -responseType .APIResponse -responseDataField Data

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/bitbank/pkg/nonce"
)

const defaultHTTPTimeout = time.Second * 15

const (
	PublicBaseURL  = "https://public.bitbank.cc"
	PrivateBaseURL = "https://api.bitbank.cc"
)

const (
	HeaderAccessKey       = "ACCESS-KEY"
	HeaderAccessNonce     = "ACCESS-NONCE"
	HeaderAccessSignature = "ACCESS-SIGNATURE"
)

var log = logrus.WithField("exchange", "bitbank")

// Values is the generic decoded form of a response body.
type Values map[string]interface{}

// APIResponse is the envelope of every bitbank response:
//
//	{"success": 1, "data": {...}}
//
// on failure success is 0 and data carries the error code:
//
//	{"success": 0, "data": {"code": 20001}}
type APIResponse struct {
	Success int             `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func (a APIResponse) Validate() error {
	if a.Success != 1 {
		apiErr := &APIError{}
		if len(a.Data) > 0 {
			if err := json.Unmarshal(a.Data, apiErr); err != nil {
				return errors.Wrapf(err, "unable to decode error payload: %s", a.Data)
			}
		}
		return apiErr
	}
	return nil
}

type RestClient struct {
	requestgen.BaseAPIClient

	// PublicBaseURL is used by the unauthenticated market data endpoints,
	// BaseAPIClient.BaseURL by the private ones.
	PublicBaseURL *url.URL

	key, secret string

	nonce *nonce.NanosecondNonce
}

func NewClient() *RestClient {
	publicURL, err := url.Parse(PublicBaseURL)
	if err != nil {
		panic(err)
	}

	privateURL, err := url.Parse(PrivateBaseURL)
	if err != nil {
		panic(err)
	}

	return &RestClient{
		BaseAPIClient: requestgen.BaseAPIClient{
			BaseURL: privateURL,
			HttpClient: &http.Client{
				Timeout: defaultHTTPTimeout,
			},
		},
		PublicBaseURL: publicURL,
		nonce:         nonce.NewNanosecondNonce(time.Now()),
	}
}

func (c *RestClient) Auth(key, secret string) {
	c.key = key
	// pragma: allowlist nextline secret
	c.secret = secret
}

// NewRequest creates an unauthenticated request against the public endpoint.
func (c *RestClient) NewRequest(
	ctx context.Context, method, refURL string, params url.Values, payload interface{},
) (*http.Request, error) {
	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	if err := mergeQuery(rel, params); err != nil {
		return nil, err
	}

	body, err := castPayload(payload)
	if err != nil {
		return nil, err
	}

	pathURL := c.PublicBaseURL.ResolveReference(rel)
	return http.NewRequestWithContext(ctx, method, pathURL.String(), bytes.NewReader(body))
}

// NewAuthenticatedRequest creates new http request for authenticated routes.
func (c *RestClient) NewAuthenticatedRequest(
	ctx context.Context, method, refURL string, params url.Values, payload interface{},
) (*http.Request, error) {
	if len(c.key) == 0 {
		return nil, errors.New("empty api key")
	}

	if len(c.secret) == 0 {
		return nil, errors.New("empty api secret")
	}

	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	if err := mergeQuery(rel, params); err != nil {
		return nil, err
	}

	// pathURL is for sending request
	pathURL := c.BaseURL.ResolveReference(rel)

	// the body is serialized once, the same bytes are signed and sent
	body, err := castPayload(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, pathURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	if method != http.MethodGet {
		req.Header.Add("Content-Type", "application/json")
	}
	req.Header.Add("Accept", "application/json")

	c.attachAuthHeaders(req, method, pathURL.EscapedPath(), rel.RawQuery, body)
	return req, nil
}

func (c *RestClient) attachAuthHeaders(req *http.Request, method, path, rawQuery string, body []byte) {
	n := strconv.FormatInt(c.nonce.GetInt64(), 10)
	signature := Sign(SigningMessage(method, n, path, rawQuery, body), c.secret)

	debugf("signing %s %s nonce=%s", method, path, n)

	req.Header.Set(HeaderAccessKey, c.key)
	req.Header.Set(HeaderAccessNonce, n)
	req.Header.Set(HeaderAccessSignature, signature)
}

// mergeQuery adds params to the query already carried by rel and re-encodes
// it with sorted keys. A nil params leaves rel untouched.
func mergeQuery(rel *url.URL, params url.Values) error {
	if params == nil {
		return nil
	}

	query, err := url.ParseQuery(rel.RawQuery)
	if err != nil {
		return errors.Wrapf(err, "invalid query in %q", rel.String())
	}

	for k, vs := range params {
		for _, v := range vs {
			query.Add(k, v)
		}
	}

	rel.RawQuery = query.Encode()
	return nil
}

// SigningMessage builds the string bitbank recomputes on the server side.
// GET requests sign nonce + path + query (the query keeps its leading "?"),
// every other method signs nonce + body. There are no separators.
func SigningMessage(method, nonce, path, rawQuery string, body []byte) string {
	if method == http.MethodGet {
		if rawQuery != "" {
			return nonce + path + "?" + rawQuery
		}
		return nonce + path
	}

	return nonce + string(body)
}

// Sign returns the lower-case hex encoded HMAC-SHA256 of payload keyed by secret.
func Sign(payload string, secret string) string {
	var sig = hmac.New(sha256.New, []byte(secret))
	_, err := sig.Write([]byte(payload))
	if err != nil {
		return ""
	}

	return hex.EncodeToString(sig.Sum(nil))
}

// SendRequest sends the request to the API server and handle the response
func (c *RestClient) SendRequest(req *http.Request) (*requestgen.Response, error) {
	start := time.Now()
	response, err := c.sendRequest(req)
	recordLatencyMetrics(req, float64(time.Since(start).Milliseconds()), err)
	return response, err
}

func (c *RestClient) sendRequest(req *http.Request) (*requestgen.Response, error) {
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	}

	// NewResponse reads the response body and closes it
	response, err := requestgen.NewResponse(resp)
	if err != nil {
		return response, err
	}

	// Check error, if there is an error, return the ErrorResponse struct type
	if response.IsError() {
		errorResponse, err := ToErrorResponse(response)
		if err != nil {
			return response, err
		}
		return response, errorResponse
	}

	return response, nil
}

// PublicGet sends an unauthenticated GET request and decodes the whole response object.
func (c *RestClient) PublicGet(ctx context.Context, path string) (Values, error) {
	req, err := c.NewRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	return c.sendAndDecode(req)
}

// PrivateGet sends a signed GET request. The query is encoded with sorted keys
// and signed together with the path.
func (c *RestClient) PrivateGet(ctx context.Context, path string, query url.Values) (Values, error) {
	req, err := c.NewAuthenticatedRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	return c.sendAndDecode(req)
}

// PrivatePost sends a signed POST request. body may be a string, a []byte or
// anything encoding/json can marshal; maps are encoded with sorted keys.
func (c *RestClient) PrivatePost(ctx context.Context, path string, body interface{}) (Values, error) {
	req, err := c.NewAuthenticatedRequest(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}

	return c.sendAndDecode(req)
}

func (c *RestClient) sendAndDecode(req *http.Request) (Values, error) {
	response, err := c.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var values Values
	if err := response.DecodeJSON(&values); err != nil {
		return nil, errors.Wrapf(err, "unable to decode response of %s %s: %q", req.Method, req.URL.Path, response.Body)
	}

	if values == nil {
		return nil, errors.Errorf("unexpected empty response of %s %s: %q", req.Method, req.URL.Path, response.Body)
	}

	return values, nil
}

func castPayload(payload interface{}) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}

	switch v := payload.(type) {
	case string:
		return []byte(v), nil

	case []byte:
		return v, nil

	}
	return json.Marshal(payload)
}
