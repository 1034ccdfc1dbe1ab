package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a *RequestError. 2xx
// responses map to nil.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &RequestError{
		Message: extractErrorMessage(resp.Body(), resp.StatusCode()),
		Status:  resp.StatusCode(),
	}
}

// extractErrorMessage resolves the human-readable message for a failed
// response. Fallback chain: the JSON body's "detail" or "message" field, the
// string form of whatever JSON did parse, the raw body text, and finally the
// HTTP status text.
func extractErrorMessage(body []byte, status int) string {
	raw := strings.TrimSpace(string(body))

	var parsed any
	if err := json.Unmarshal(body, &parsed); err == nil && parsed != nil {
		if obj, ok := parsed.(map[string]any); ok {
			if msg, ok := obj["detail"].(string); ok && msg != "" {
				return msg
			}
			if msg, ok := obj["message"].(string); ok && msg != "" {
				return msg
			}
		}
		if msg := strings.TrimSpace(fmt.Sprintf("%v", parsed)); msg != "" {
			return msg
		}
	}

	if raw != "" {
		return raw
	}

	return http.StatusText(status)
}

// transportError classifies a failure where no HTTP response was received
// (connection refused, timeout, DNS). Status stays 0.
func transportError(op string, err error) *RequestError {
	return &RequestError{Message: fmt.Sprintf("%s request: %v", op, err)}
}
