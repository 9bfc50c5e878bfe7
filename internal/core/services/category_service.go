package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/google/uuid"
)

// CategoryService manages categories.
type CategoryService struct {
	categoryRepo portsrepo.CategoryRepository
}

func NewCategoryService(repo portsrepo.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: repo}
}

var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category := domain.Category{
		CategoryID:  uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Type:        domain.CategoryType(req.Type),
		AuditFields: domain.NewAuditFields(userID, time.Now()),
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()), slog.String("category_id", category.CategoryID))
		return nil, err
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID), slog.String("type", string(category.Type)))
	return &category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, userID string, typeFilter domain.CategoryType) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, userID, typeFilter)
}
