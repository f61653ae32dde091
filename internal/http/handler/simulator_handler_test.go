package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/http/handler"
	"github.com/webfolio/portfolio-api/internal/service"
	"github.com/webfolio/portfolio-api/internal/session"
	"go.uber.org/zap"
)

func createSession(t *testing.T, f *fixture) string {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/simulator/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var sess domain.SessionDTO
	decode(t, w, &sess)
	require.NotEqual(t, uuid.Nil, sess.ID)
	assert.Equal(t, "/api/simulator/sessions/"+sess.ID.String(), w.Header().Get("Location"))
	return "/api/simulator/sessions/" + sess.ID.String()
}

func TestCatalog(t *testing.T) {
	f := newFixture(t, false)

	w := f.do(t, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ProjectTypes []struct {
			ID string `json:"id"`
		} `json:"projectTypes"`
	}
	decode(t, w, &body)
	require.Len(t, body.ProjectTypes, 2)
	assert.Equal(t, "vitrine", body.ProjectTypes[0].ID)
}

func TestSimulatorSession_Scenario(t *testing.T) {
	f := newFixture(t, false)
	base := createSession(t, f)

	w := f.do(t, http.MethodPut, base+"/project-type", map[string]string{"projectType": "vitrine"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = f.do(t, http.MethodPost, base+"/design/option-x/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sess domain.SessionDTO
	decode(t, w, &sess)
	assert.Equal(t, 2300, sess.State.TotalPrice)
	assert.Equal(t, 460.0, sess.Tax)
	assert.Equal(t, 2760.0, sess.TotalTTC)
	assert.Equal(t, 6, sess.State.EstimatedDuration)

	w = f.do(t, http.MethodGet, base+"/quote", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var q domain.QuoteData
	decode(t, w, &q)
	assert.Equal(t, "vitrine", q.ProjectType)
	assert.Equal(t, []string{"option-x"}, q.Selections.Design)
	assert.Equal(t, 2300.0, q.Pricing.Subtotal)
	assert.Equal(t, 2760.0, q.Pricing.Total)

	// The snapshot is accepted as-is by the document endpoint
	w = f.do(t, http.MethodPost, "/api/generate-quote-pdf", map[string]interface{}{"quoteData": q})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSimulatorSession_Dependencies(t *testing.T) {
	f := newFixture(t, false)
	base := createSession(t, f)

	w := f.do(t, http.MethodPost, base+"/design/c/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sess domain.SessionDTO
	decode(t, w, &sess)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, sess.State.DesignOptions)

	// Removing b cascades to c only
	w = f.do(t, http.MethodPost, base+"/design/b/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &sess)
	assert.Equal(t, []string{"a"}, sess.State.DesignOptions)

	w = f.do(t, http.MethodPost, base+"/technical/shop/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &sess)
	assert.ElementsMatch(t, []string{"cms", "shop"}, sess.State.TechnicalFeatures)
}

func TestSimulatorSession_SectionsAndContent(t *testing.T) {
	f := newFixture(t, false)
	base := createSession(t, f)

	w := f.do(t, http.MethodPut, base+"/sections/home", map[string]string{"level": "advanced"})
	require.Equal(t, http.StatusOK, w.Code)
	var sess domain.SessionDTO
	decode(t, w, &sess)
	require.Len(t, sess.State.Sections, 1)
	assert.Equal(t, 400, sess.State.TotalPrice)

	w = f.do(t, http.MethodPut, base+"/content/pages", map[string]int{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &sess)
	assert.Equal(t, 3, sess.State.ContentOptions["pages"])

	w = f.do(t, http.MethodPut, base+"/content/pages", map[string]int{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &sess)
	assert.NotContains(t, sess.State.ContentOptions, "pages")

	w = f.do(t, http.MethodDelete, base+"/sections/home", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &sess)
	assert.Empty(t, sess.State.Sections)
	assert.Zero(t, sess.State.TotalPrice)
}

func TestSimulatorSession_Errors(t *testing.T) {
	f := newFixture(t, false)
	base := createSession(t, f)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
	}{
		{"invalid session id", http.MethodGet, "/api/simulator/sessions/nope", nil, http.StatusBadRequest},
		{"unknown session", http.MethodGet, "/api/simulator/sessions/" + uuid.NewString(), nil, http.StatusNotFound},
		{"unknown group", http.MethodPost, base + "/colors/red/toggle", nil, http.StatusBadRequest},
		{"unknown option", http.MethodPost, base + "/design/neon/toggle", nil, http.StatusBadRequest},
		{"unknown project type", http.MethodPut, base + "/project-type", map[string]string{"projectType": "castle"}, http.StatusBadRequest},
		{"invalid level", http.MethodPut, base + "/sections/home", map[string]string{"level": "ultra"}, http.StatusBadRequest},
		{"quantity over cap", http.MethodPut, base + "/content/pages", map[string]int{"quantity": 51}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestSimulatorSession_ResetAndDelete(t *testing.T) {
	f := newFixture(t, false)
	base := createSession(t, f)

	require.Equal(t, http.StatusOK, f.do(t, http.MethodPut, base+"/project-type", map[string]string{"projectType": "vitrine"}).Code)

	w := f.do(t, http.MethodPost, base+"/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sess domain.SessionDTO
	decode(t, w, &sess)
	assert.Empty(t, sess.State.ProjectType)
	assert.Zero(t, sess.State.TotalPrice)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, base, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, base, nil).Code)
}

func TestEstimate(t *testing.T) {
	f := newFixture(t, false)

	w := f.do(t, http.MethodPost, "/api/simulator/estimate", map[string]interface{}{
		"projectType": "refonte",
		"selections": map[string]interface{}{
			"design": []string{"option-x"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp domain.EstimateResponse
	decode(t, w, &resp)
	// The redesign base price is skipped and the total discounted by 25%
	assert.Equal(t, 225, resp.State.TotalPrice)
	assert.Equal(t, "refonte", resp.Quote.ProjectType)

	w = f.do(t, http.MethodPost, "/api/simulator/estimate", map[string]interface{}{
		"selections": map[string]interface{}{"design": []string{"neon"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// contendedStore rejects every update of an existing session
type contendedStore struct {
	*session.MemoryStore
}

func (c contendedStore) Save(ctx context.Context, s *session.Session) error {
	if s.Version > 0 {
		return session.ErrVersionConflict
	}
	return c.MemoryStore.Save(ctx, s)
}

func TestSimulatorHandler_ConflictingUpdates(t *testing.T) {
	svc := service.NewSimulatorService(testCatalog(t), contendedStore{session.NewMemoryStore(time.Hour)}, zap.NewNop())
	h := handler.NewSimulatorHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/sessions", h.CreateSession)
	r.Post("/sessions/{id}/{group}/{optionId}/toggle", h.Toggle)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sessions", nil))
	require.Equal(t, http.StatusCreated, w.Code)
	var sess domain.SessionDTO
	decode(t, w, &sess)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sessions/"+sess.ID.String()+"/design/option-x/toggle", nil))
	assert.Equal(t, http.StatusConflict, w.Code)

	var body errorBody
	decode(t, w, &body)
	assert.Contains(t, body.Error, "modified concurrently")
}
