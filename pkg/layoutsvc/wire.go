package layoutsvc

import (
	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
)

// Routes served by the HTTP layout service.
const (
	LayoutPath    = "/layout"
	NormalizePath = "/normalize"
	HealthPath    = "/healthz"
)

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// NewErrorResponse describes err for a client.
// Errors without a code are reported as internal errors.
func NewErrorResponse(err error) ErrorResponse {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return ErrorResponse{Code: code, Message: errors.UserMessage(err)}
}

// Err turns the response back into an error.
func (r ErrorResponse) Err() error {
	code := r.Code
	if code == "" {
		code = errors.ErrCodeLayoutService
	}
	return errors.New(code, "%s", r.Message)
}

// NormalizeRequest is the body of a normalization request. A zero Capacity
// selects the width of the layout.
type NormalizeRequest struct {
	Layout   layout.Layout `json:"layout"`
	Capacity int           `json:"capacity,omitempty"`
}

// NormalizeResponse is the body of a successful normalization.
type NormalizeResponse struct {
	Layout   layout.Layout `json:"layout"`
	Capacity int           `json:"capacity"`
}
