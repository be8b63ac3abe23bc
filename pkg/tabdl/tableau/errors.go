package tableau

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrNotSignedIn indicates a site-scoped call was made before SignIn.
var ErrNotSignedIn = errors.New("not signed in")

// APIError is a non-success response from the REST API.
type APIError struct {
	StatusCode int
	Code       string // Tableau error code, e.g. "401002"
	Summary    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("tableau api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("tableau api: status %d: %s %s: %s", e.StatusCode, e.Code, e.Summary, e.Detail)
}

// Unauthorized reports whether the server rejected the credentials.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == 401
}

// newAPIError builds an APIError from a response body, which may or may not
// carry Tableau's JSON error document.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	if gjson.ValidBytes(body) {
		e := gjson.GetBytes(body, "error")
		apiErr.Code = e.Get("code").String()
		apiErr.Summary = e.Get("summary").String()
		apiErr.Detail = e.Get("detail").String()
	}
	return apiErr
}
