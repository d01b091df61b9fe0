package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// categoryService manages animal category master data. System categories are
// seeded by migration and are immutable here.
type categoryService struct {
	categoryRepo      portsrepo.CategoryRepositoryFacade
	reconciliationSvc portssvc.ReconciliationSvcFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, reconciliationSvc portssvc.ReconciliationSvcFacade) portssvc.CategorySvcFacade {
	return &categoryService{
		categoryRepo:      categoryRepo,
		reconciliationSvc: reconciliationSvc,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory registers a custom category and provisions a zero snapshot
// row for every active farm.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category := domain.Category{
		CategoryID:   uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		IsSystem:     false,
		IsActive:     true,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	if err := s.reconciliationSvc.EnsureBalancesForCategory(ctx, category.CategoryID, creatorUserID); err != nil {
		logger.Error("Failed to provision balances for new category", slog.String("error", err.Error()), slog.String("category_id", category.CategoryID))
		return nil, fmt.Errorf("failed to provision balances: %w", err)
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

// GetCategoryByID retrieves a category by its ID.
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

// GetCategoryBySlug retrieves a system category by its programmatic slug.
func (s *categoryService) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryBySlug(ctx, slug)
}

// ListCategories retrieves categories ordered by display order.
func (s *categoryService) ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, includeInactive)
}

// DeactivateCategory marks a custom category inactive. System categories
// cannot be deactivated because fixed flows like weaning depend on them.
func (s *categoryService) DeactivateCategory(ctx context.Context, categoryID string, requestingUserID string) error {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category.IsSystem {
		return fmt.Errorf("%w: system category %s cannot be deactivated", apperrors.ErrValidation, categoryID)
	}
	if !category.IsActive {
		return fmt.Errorf("%w: category %s is already inactive", apperrors.ErrValidation, categoryID)
	}

	category.IsActive = false
	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return fmt.Errorf("failed to deactivate category: %w", err)
	}
	return nil
}
