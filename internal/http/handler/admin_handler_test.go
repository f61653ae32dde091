package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/http/handler"
	"go.uber.org/zap"
)

func submitContact(t *testing.T, f *fixture, name string, withQuote bool) uuid.UUID {
	t.Helper()
	body := map[string]interface{}{"name": name, "email": strings.ToLower(name) + "@example.com", "message": "Bonjour"}
	if withQuote {
		body["quoteData"] = scenarioQuote()
	}
	w := f.do(t, http.MethodPost, "/api/contact", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp domain.ContactResponse
	decode(t, w, &resp)
	require.NotNil(t, resp.SubmissionID)
	return *resp.SubmissionID
}

func TestAdmin_ListAndGet(t *testing.T) {
	f := newFixture(t, false)
	withQuote := submitContact(t, f, "Alice", true)
	submitContact(t, f, "Bruno", false)

	w := f.do(t, http.MethodGet, "/api/admin/submissions?pageSize=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Data       []domain.SubmissionDTO `json:"data"`
		Total      int64                  `json:"total"`
		TotalPages int                    `json:"totalPages"`
	}
	decode(t, w, &page)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Data, 1)

	w = f.do(t, http.MethodGet, "/api/admin/submissions?hasQuote=true&status=dev_mode", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &page)
	require.Len(t, page.Data, 1)
	assert.Equal(t, withQuote, page.Data[0].ID)

	w = f.do(t, http.MethodGet, "/api/admin/submissions/"+withQuote.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dto domain.SubmissionDTO
	decode(t, w, &dto)
	assert.Equal(t, "Alice", dto.Name)
	assert.Equal(t, "vitrine", dto.ProjectType)
	require.NotNil(t, dto.Quote)
	assert.Equal(t, 2760.0, dto.Quote.Pricing.Total)
	assert.Equal(t, domain.SubmissionStatusDevMode, dto.Status)
}

func TestAdmin_BadRequests(t *testing.T) {
	f := newFixture(t, false)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/api/admin/submissions?status=lost", nil).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/api/admin/submissions?hasQuote=maybe", nil).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/api/admin/submissions/42", nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/api/admin/submissions/"+uuid.NewString(), nil).Code)
}

func TestAdmin_Stats(t *testing.T) {
	f := newFixture(t, false)
	submitContact(t, f, "Alice", false)
	submitContact(t, f, "Bruno", false)

	w := f.do(t, http.MethodGet, "/api/admin/submissions/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats domain.SubmissionStatsResponse
	decode(t, w, &stats)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(2), stats.ByStatus[domain.SubmissionStatusDevMode])
}

func TestAdmin_DownloadDocument(t *testing.T) {
	f := newFixture(t, false)
	withQuote := submitContact(t, f, "Alice", true)
	without := submitContact(t, f, "Bruno", false)

	w := f.do(t, http.MethodGet, "/api/admin/submissions/"+withQuote.String()+"/document", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "devis_Alice_")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))

	w = f.do(t, http.MethodGet, "/api/admin/submissions/"+without.String()+"/document", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_StoreDisabled(t *testing.T) {
	h := handler.NewAdminHandler(nil, zap.NewNop())

	w := httptest.NewRecorder()
	h.ListSubmissions(w, httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
