package paysliphandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idms/internal/domain/payslip"
	"idms/internal/transport/http/api"
	"idms/internal/transport/http/middleware"
)

const samplePayload = `{
  "company": {"name": "Acme Industries Pvt Ltd", "address": "Plot 12, MIDC, Pune"},
  "month": "August 2025",
  "employee": {
    "name": "Asha Verma", "id": "E042", "department": "Finance", "designation": "Accountant",
    "uan": "100200300400", "pan": "ABCDE1234F", "workDays": 30, "joiningDate": "01/04/2021",
    "location": "Pune", "bank": "State Bank", "accountNo": "000111222333", "lop": 0
  },
  "earnings": [{"label": "Basic", "amount": 30000}, {"label": "HRA", "amount": "12000"}],
  "deductions": [{"label": "PF", "amount": 3600}],
  "totalEarnings": 42000,
  "totalDeductions": 3600,
  "netPay": 38400,
  "printDate": "01/09/2025"
}`

func newRouter(maxBody int64) http.Handler {
	layout := payslip.DefaultLayout()
	layout.Compress = false
	svc := payslip.NewService(payslip.NewRenderer(layout), nil, nil)

	r := chi.NewRouter()
	r.Use(middleware.BodyLimit(maxBody))
	NewHandler(svc).RegisterRoutes(r)
	return r
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/payslips/pdf", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) api.Problem {
	t.Helper()
	var problem api.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return problem
}

func TestGeneratePDF(t *testing.T) {
	rec := post(t, newRouter(1<<20), samplePayload)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Payslip_E042_August_2025.pdf"`, rec.Header().Get("Content-Disposition"))

	body := rec.Body.Bytes()
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
	for _, want := range []string{"Basic:", "30,000", "HRA:", "12,000", "38,400/-", "THIRTY-EIGHT THOUSAND FOUR HUNDRED ONLY", "Print Date: 01/09/2025"} {
		assert.Contains(t, string(body), want)
	}
}

func TestGeneratePDFMissingEmployee(t *testing.T) {
	payload := `{"company": {"name": "Acme", "address": "Pune"}, "month": "May 2025", "netPay": 10}`
	rec := post(t, newRouter(1<<20), payload)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	problem := decodeProblem(t, rec)
	assert.Equal(t, "Failed to generate PDF", problem.Error)
	assert.Equal(t, payslip.ErrMissingEmployee.Error(), problem.Details)
}

func TestGeneratePDFNegativeNetPay(t *testing.T) {
	payload := strings.Replace(samplePayload, `"netPay": 38400`, `"netPay": -5`, 1)
	rec := post(t, newRouter(1<<20), payload)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeProblem(t, rec).Details, "net pay must not be negative")
}

func TestGeneratePDFInvalidJSON(t *testing.T) {
	rec := post(t, newRouter(1<<20), `{"company":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid payslip payload", decodeProblem(t, rec).Error)
}

func TestGeneratePDFBodyTooLarge(t *testing.T) {
	rec := post(t, newRouter(64), samplePayload)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "payslip payload too large", decodeProblem(t, rec).Error)
}

func TestGeneratePDFRequiresJSONContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/payslips/pdf", strings.NewReader(samplePayload))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	newRouter(1<<20).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}
