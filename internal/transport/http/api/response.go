package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"idms/internal/requestctx"
)

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// Problem is the error body returned by document endpoints.
type Problem struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func WriteJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		requestctx.Logger(r.Context()).Warn("write json failed", zap.Error(err))
	}
}

func Success(w http.ResponseWriter, r *http.Request, data any) {
	WriteJSON(w, r, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestctx.GetRequestID(r.Context())})
}

func FailDetails(w http.ResponseWriter, r *http.Request, status int, message, details string) {
	WriteJSON(w, r, status, Problem{Error: message, Details: details})
}

// WritePDF sends content as a downloadable attachment.
func WritePDF(w http.ResponseWriter, r *http.Request, filename string, content []byte) {
	headers := w.Header()
	headers.Set("Content-Type", "application/pdf")
	headers.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	headers.Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		requestctx.Logger(r.Context()).Warn("write pdf failed", zap.Error(err), zap.String("filename", filename))
	}
}
