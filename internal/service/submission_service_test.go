package service_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/repository"
	"github.com/webfolio/portfolio-api/internal/service"
	"github.com/webfolio/portfolio-api/internal/storage"
	"go.uber.org/zap"
)

func TestSubmissionService_List(t *testing.T) {
	store := newFakeSubmissionStore()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Create(ctx, &domain.Submission{Name: "n", Email: "n@example.com", Status: domain.SubmissionStatusSent}))
	}
	require.NoError(t, store.Create(ctx, &domain.Submission{Name: "f", Email: "f@example.com", Status: domain.SubmissionStatusFailed}))

	svc := service.NewSubmissionService(store, nil, zap.NewNop())

	page, err := svc.List(ctx, 2, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(6), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Data, 2)

	page, err = svc.List(ctx, 0, 0, &repository.SubmissionFilters{Status: domain.SubmissionStatusFailed})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
	assert.Equal(t, int64(1), page.Total)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats[domain.SubmissionStatusSent])
}

func TestSubmissionService_GetByID(t *testing.T) {
	store := newFakeSubmissionStore()
	ctx := context.Background()
	sub := &domain.Submission{
		Name:      "Jean",
		Email:     "jean@example.com",
		Status:    domain.SubmissionStatusSent,
		QuoteJSON: `{"projectType":"vitrine","pricing":{"subtotal":2300,"tax":460,"total":2760}}`,
	}
	require.NoError(t, store.Create(ctx, sub))

	svc := service.NewSubmissionService(store, nil, zap.NewNop())

	dto, err := svc.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	require.NotNil(t, dto.Quote)
	assert.Equal(t, 2760.0, dto.Quote.Pricing.Total)

	_, err = svc.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSubmissionService_Document(t *testing.T) {
	ctx := context.Background()
	archive, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	key, _, err := archive.Upload(ctx, "devis_jean.pdf", "application/pdf", bytes.NewReader([]byte("%PDF-1.3")))
	require.NoError(t, err)

	store := newFakeSubmissionStore()
	withDoc := &domain.Submission{Name: "Jean", DocumentKey: key, DocumentName: "devis_jean.pdf"}
	withoutDoc := &domain.Submission{Name: "Marie"}
	missing := &domain.Submission{Name: "Paul", DocumentKey: "quotes/2020/01/gone.pdf", DocumentName: "gone.pdf"}
	for _, s := range []*domain.Submission{withDoc, withoutDoc, missing} {
		require.NoError(t, store.Create(ctx, s))
	}

	svc := service.NewSubmissionService(store, archive, zap.NewNop())

	doc, err := svc.Document(ctx, withDoc.ID)
	require.NoError(t, err)
	defer doc.Body.Close()
	content, err := io.ReadAll(doc.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(content))
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "devis_jean.pdf", doc.Filename)

	_, err = svc.Document(ctx, withoutDoc.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Document(ctx, missing.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
