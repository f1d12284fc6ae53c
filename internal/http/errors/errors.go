package errors

import (
	"encoding/json"
	"net/http"
)

// errorResponse controls exactly which fields reach the client. The message
// travels under the "error" key, which is what the web client matches on.
type errorResponse struct {
	Code   string `json:"code"`
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// WriteError writes an HTTP response based on the given error. It handles
// *AppError values directly and wraps anything else as an internal error.
func WriteError(w http.ResponseWriter, err error) {
	appErr := FromError(err)

	resp := errorResponse{
		Code:   appErr.Code,
		Error:  appErr.Message,
		Detail: appErr.Detail,
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)

	_ = json.NewEncoder(w).Encode(resp)
}
