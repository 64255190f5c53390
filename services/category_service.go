package services

import (
	"context"
	"fmt"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/models"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/repository"
)

// ICategoryService defines the interface for category-related business logic.
type ICategoryService interface {
	ListCategories(ctx context.Context, search string) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	// SaveCategory upserts under id, or under a new id when id is empty.
	SaveCategory(ctx context.Context, id, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CategoryService implements ICategoryService.
type CategoryService struct {
	repo   repository.ICategoryRepository
	events IEventPublisher
	newID  IDGenerator
}

// NewCategoryService creates a new CategoryService instance.
func NewCategoryService(repo repository.ICategoryRepository, events IEventPublisher, newID IDGenerator) ICategoryService {
	if newID == nil {
		newID = TimestampID
	}
	return &CategoryService{repo: repo, events: events, newID: newID}
}

// ListCategories reads every category and keeps those whose name contains search.
func (s *CategoryService) ListCategories(ctx context.Context, search string) ([]models.Category, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCategories(all, search), nil
}

// FilterCategories is the list view's search: case-insensitive substring on the name.
func FilterCategories(categories []models.Category, search string) []models.Category {
	filtered := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if containsFold(c.Name, search) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) SaveCategory(ctx context.Context, id, name string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if id == "" {
		id = s.newID()
	}
	category := &models.Category{ID: id, Name: name}
	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	s.events.Publish(ctx, ChangeEvent{Type: EventUpserted, Collection: models.CollectionCategories, ID: id, Data: category})
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(ctx, ChangeEvent{Type: EventDeleted, Collection: models.CollectionCategories, ID: id})
	return nil
}
