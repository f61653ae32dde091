package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/webfolio/portfolio-api/internal/domain"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// SubmissionFilters narrows the admin submission list
type SubmissionFilters struct {
	Status   domain.SubmissionStatus
	Search   string
	HasQuote *bool
}

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *SubmissionRepository) Update(ctx context.Context, submission *domain.Submission) error {
	return r.db.WithContext(ctx).Save(submission).Error
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	var submission domain.Submission
	err := r.db.WithContext(ctx).First(&submission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// List returns a page of submissions, newest first
func (r *SubmissionRepository) List(ctx context.Context, page, pageSize int, filters *SubmissionFilters) ([]domain.Submission, int64, error) {
	var submissions []domain.Submission
	var total int64

	query := r.applyFilters(r.db.WithContext(ctx).Model(&domain.Submission{}), filters)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&submissions).Error

	return submissions, total, err
}

func (r *SubmissionRepository) applyFilters(query *gorm.DB, filters *SubmissionFilters) *gorm.DB {
	if filters == nil {
		return query
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ?",
			pattern, pattern, pattern)
	}
	if filters.HasQuote != nil {
		if *filters.HasQuote {
			query = query.Where("quote_json <> ''")
		} else {
			query = query.Where("quote_json = '' OR quote_json IS NULL")
		}
	}
	return query
}

// CountByStatus returns the number of submissions per delivery status
func (r *SubmissionRepository) CountByStatus(ctx context.Context) (map[domain.SubmissionStatus]int64, error) {
	var rows []struct {
		Status domain.SubmissionStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Submission{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.SubmissionStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
