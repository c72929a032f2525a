package apiclient

import (
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
)

// ResponseError is returned for any non-2xx response.
type ResponseError struct {
	Status  int
	Message string // "message" field of a JSON error body, if any
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("apiclient: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("apiclient: unexpected status %d %s", e.Status, http.StatusText(e.Status))
}

func newResponseError(res *http.Response) *ResponseError {
	e := &ResponseError{Status: res.StatusCode}

	bs, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if err != nil || len(bs) == 0 {
		return e
	}

	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(bs, &body) == nil {
		e.Message = body.Message
	}

	return e
}
