package intake

import (
	"bytes"
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
)

// Response is the JSON envelope for every intake reply.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes body before touching w, so an encoding failure still
// yields a well-formed 500 reply.
func writeJSON(w http.ResponseWriter, status int, body Response) error {
	var buf bytes.Buffer
	encErr := json.NewEncoder(&buf).Encode(body)
	if encErr != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(Response{Error: &ErrorDetail{
			Code:    codeInternalError,
			Message: http.StatusText(http.StatusInternalServerError),
		}})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Join(encErr, err)
	}
	return encErr
}
