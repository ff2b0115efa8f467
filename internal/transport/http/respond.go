package httptransport

import (
	"encoding/json"
	"net/http"

	"leadgate/pkg/apperrors"
)

// The wire envelope shared with the landing page: every response is either
// {success:true, data} or {success:false, error:{code,message,details}}.

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details []apperrors.FieldError `json:"details,omitempty"`
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(successEnvelope{Success: true, Data: data})
}

// writeError centralizes domain error translation to HTTP responses so every
// handler emits a consistent JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	appErr := apperrors.From(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperrors.ToHTTPStatus(appErr.Code))
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		Success: false,
		Error: errorBody{
			Code:    string(appErr.Code),
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}
