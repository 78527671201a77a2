package paysliphandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"idms/internal/domain/payslip"
	"idms/internal/requestctx"
	"idms/internal/transport/http/api"
	"idms/internal/transport/http/middleware"
)

type Handler struct {
	Service *payslip.Service
}

func NewHandler(service *payslip.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payslips", func(r chi.Router) {
		r.With(middleware.RequireJSON).Post("/pdf", h.handleGeneratePDF)
	})
}

func (h *Handler) handleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	var rec payslip.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			api.FailDetails(w, r, http.StatusRequestEntityTooLarge, "payslip payload too large", err.Error())
			return
		}
		api.FailDetails(w, r, http.StatusBadRequest, "invalid payslip payload", err.Error())
		return
	}

	doc, err := h.Service.Generate(r.Context(), rec)
	if err != nil {
		requestctx.Logger(r.Context()).Error("payslip pdf generation failed", zap.Error(err))
		api.FailDetails(w, r, http.StatusInternalServerError, "Failed to generate PDF", err.Error())
		return
	}

	api.WritePDF(w, r, doc.Filename, doc.Content)
}
