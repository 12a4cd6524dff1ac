package httptesting

import (
	"net/http"
)

// EchoSave replies every request with the same content and optionally keeps
// the last request so the caller can inspect the url, headers and body.
type EchoSave struct {
	// saveTo points at a variable owned by the caller. http.RoundTripper has a
	// single method, so this is how the request leaves the transport.
	saveTo *SavedRequest

	status  int
	content string
	err     error
}

// SavedRequest is the last request seen by an EchoSave transport, with its body read out.
type SavedRequest struct {
	*http.Request

	Body []byte
}

func (st *EchoSave) RoundTrip(req *http.Request) (*http.Response, error) {
	if st.saveTo != nil {
		st.saveTo.Request = req
		st.saveTo.Body = ReadRequestBody(req)
	}

	if st.err != nil {
		return nil, st.err
	}

	status := st.status
	if status == 0 {
		status = http.StatusOK
	}

	resp := BuildResponseString(status, st.content)
	SetHeader(resp, "Content-Type", "application/json")
	resp.Request = req
	return resp, nil
}

func HttpClientWithContent(content string) *http.Client {
	transport := EchoSave{content: content}
	return &http.Client{Transport: &transport}
}

func HttpClientWithStatus(status int, content string) *http.Client {
	transport := EchoSave{status: status, content: content}
	return &http.Client{Transport: &transport}
}

func HttpClientWithError(err error) *http.Client {
	transport := EchoSave{err: err}
	return &http.Client{Transport: &transport}
}

// HttpClientSaver stores every request into saved before replying with content.
func HttpClientSaver(saved *SavedRequest, content string) *http.Client {
	transport := EchoSave{saveTo: saved, content: content}
	return &http.Client{Transport: &transport}
}
