package httptesting

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

func BuildResponse(code int, payload []byte) *http.Response {
	return &http.Response{
		StatusCode:    code,
		Status:        http.StatusText(code),
		Header:        http.Header{},
		Body:          io.NopCloser(bytes.NewBuffer(payload)),
		ContentLength: int64(len(payload)),
	}
}

func BuildResponseString(code int, payload string) *http.Response {
	return BuildResponse(code, []byte(payload))
}

// BuildResponseJson marshals data and sets the json content type.
// A value that can not be marshaled yields a 500 response carrying the error.
func BuildResponseJson(code int, data interface{}) *http.Response {
	out, err := json.Marshal(data)
	if err != nil {
		resp := BuildResponseString(http.StatusInternalServerError, err.Error())
		SetHeader(resp, "Content-Type", "text/plain")
		return resp
	}

	resp := BuildResponse(code, out)
	SetHeader(resp, "Content-Type", "application/json")
	return resp
}

func SetHeader(resp *http.Response, name string, value string) *http.Response {
	if resp.Header == nil {
		resp.Header = http.Header{}
	}
	resp.Header.Set(name, value)
	return resp
}

// ReadRequestBody drains req.Body and restores it so the request can still be sent.
func ReadRequestBody(req *http.Request) []byte {
	if req.Body == nil {
		return nil
	}

	body, _ := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body
}
