package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/mapper"
	"github.com/webfolio/portfolio-api/internal/repository"
	"github.com/webfolio/portfolio-api/internal/storage"
	"go.uber.org/zap"
)

// SubmissionReader is the read side of the lead store
type SubmissionReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	List(ctx context.Context, page, pageSize int, filters *repository.SubmissionFilters) ([]domain.Submission, int64, error)
	CountByStatus(ctx context.Context) (map[domain.SubmissionStatus]int64, error)
}

// ArchivedDocument is a quote file read back from the archive
type ArchivedDocument struct {
	Filename    string
	ContentType string
	Body        io.ReadCloser
}

// SubmissionService serves the admin view of received leads
type SubmissionService struct {
	repo    SubmissionReader
	archive storage.Storage
	logger  *zap.Logger
}

func NewSubmissionService(repo SubmissionReader, archive storage.Storage, logger *zap.Logger) *SubmissionService {
	return &SubmissionService{
		repo:    repo,
		archive: archive,
		logger:  logger,
	}
}

func (s *SubmissionService) List(ctx context.Context, page, pageSize int, filters *repository.SubmissionFilters) (*domain.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}

	submissions, total, err := s.repo.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	dtos := make([]domain.SubmissionDTO, len(submissions))
	for i := range submissions {
		dtos[i] = mapper.ToSubmissionDTO(&submissions[i])
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *SubmissionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SubmissionDTO, error) {
	submission, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToSubmissionDTO(submission)
	return &dto, nil
}

// Stats counts submissions per delivery status
func (s *SubmissionService) Stats(ctx context.Context) (map[domain.SubmissionStatus]int64, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}
	return counts, nil
}

// Document opens the archived quote of a submission. The caller closes Body.
func (s *SubmissionService) Document(ctx context.Context, id uuid.UUID) (*ArchivedDocument, error) {
	submission, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if submission.DocumentKey == "" || s.archive == nil {
		return nil, fmt.Errorf("%w: submission has no archived document", ErrNotFound)
	}

	body, err := s.archive.Download(ctx, submission.DocumentKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, fmt.Errorf("failed to download document: %w", err)
	}

	return &ArchivedDocument{
		Filename:    submission.DocumentName,
		ContentType: contentTypeFor(submission.DocumentName),
		Body:        body,
	}, nil
}

func (s *SubmissionService) get(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	submission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: submission %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return submission, nil
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}
