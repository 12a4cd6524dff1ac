package bitbankapi

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/c9s/requestgen"
)

var htmlTagPattern = regexp.MustCompile("<[/]?[a-zA-Z-]+.*?>")

// APIError is the error payload of a response whose success flag is 0.
// The code table lives at https://github.com/bitbankinc/bitbank-api-docs/blob/master/errors.md
type APIError struct {
	Code int `json:"code"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bitbank api error code %d", e.Code)
}

// ErrorResponse is returned when the server replies with a non-2xx status.
type ErrorResponse struct {
	*requestgen.Response

	// Code is the exchange error code, zero when the body is not a bitbank envelope
	Code    int
	Message string
}

func (r *ErrorResponse) Error() string {
	// custom round trippers may leave Request unset
	if req := r.Response.Response.Request; req != nil {
		return fmt.Sprintf("%s %s: %d %d %s",
			req.Method,
			req.URL.String(),
			r.Response.Response.StatusCode,
			r.Code,
			r.Message,
		)
	}

	return fmt.Sprintf("%d %d %s", r.Response.Response.StatusCode, r.Code, r.Message)
}

// ToErrorResponse converts a non-2xx response into *ErrorResponse. It never
// fails: bodies that are not a bitbank envelope are kept as the message.
func ToErrorResponse(response *requestgen.Response) (*ErrorResponse, error) {
	errorResponse := &ErrorResponse{Response: response}

	if strings.HasPrefix(response.Header.Get("Content-Type"), "text/html") {
		// convert 5xx error from the HTML page to the ErrorResponse
		errorResponse.Message = strings.TrimSpace(htmlTagPattern.ReplaceAllLiteralString(string(response.Body), ""))
		return errorResponse, nil
	}

	var apiResponse APIResponse
	if err := json.Unmarshal(response.Body, &apiResponse); err == nil {
		var apiErr APIError
		if len(apiResponse.Data) > 0 && json.Unmarshal(apiResponse.Data, &apiErr) == nil {
			errorResponse.Code = apiErr.Code
		}
	}

	if errorResponse.Code == 0 {
		errorResponse.Message = string(response.Body)
	}

	return errorResponse, nil
}
