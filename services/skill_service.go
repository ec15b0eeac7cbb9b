package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type SkillService struct {
	client Requester
	logger zerolog.Logger
}

func NewSkillService(client Requester) *SkillService {
	return &SkillService{
		client: client,
		logger: log.With().Str("serviceName", "skillService").Logger(),
	}
}

// List returns the skill categories. Inactive ones are only included on request.
func (s *SkillService) List(ctx context.Context, includeInactive bool) ([]*models.SkillCategory, error) {
	query := url.Values{}
	query.Set("includeInactive", strconv.FormatBool(includeInactive))

	var categories []*models.SkillCategory
	if err := s.client.Get(ctx, "/skills?"+query.Encode(), &categories); err != nil {
		return nil, wrapServiceError(s.logger, err, "Failed to fetch skills")
	}
	return normalizeList(categories), nil
}

func (s *SkillService) GetByID(ctx context.Context, id string) (*models.SkillCategory, error) {
	return s.category(ctx, "Failed to fetch skill", func(dst *models.SkillCategory) error {
		return s.client.Get(ctx, skillPath(id), dst)
	})
}

func (s *SkillService) Create(ctx context.Context, category models.SkillCategory) (*models.SkillCategory, error) {
	return s.category(ctx, "Failed to create skill", func(dst *models.SkillCategory) error {
		return s.client.Post(ctx, "/skills", category, dst)
	})
}

// CreateDirect creates a category in one call, items included.
func (s *SkillService) CreateDirect(ctx context.Context, category models.SkillCategory) (*models.SkillCategory, error) {
	return s.category(ctx, "Failed to create skill category", func(dst *models.SkillCategory) error {
		return s.client.Post(ctx, "/skills/direct", category, dst)
	})
}

func (s *SkillService) Update(ctx context.Context, id string, patch models.SkillCategoryPatch) (*models.SkillCategory, error) {
	return s.category(ctx, "Failed to update skill", func(dst *models.SkillCategory) error {
		return s.client.Put(ctx, skillPath(id), patch, dst)
	})
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, skillPath(id), nil); err != nil {
		return wrapServiceError(s.logger, err, "Failed to delete skill")
	}
	return nil
}

// AddItem appends an item and returns the parent category as stored.
func (s *SkillService) AddItem(ctx context.Context, categoryID string, item models.SkillItem) (*models.SkillCategory, error) {
	return s.category(ctx, "Failed to add skill item", func(dst *models.SkillCategory) error {
		return s.client.Post(ctx, skillPath(categoryID)+"/items", item, dst)
	})
}

func (s *SkillService) UpdateItem(ctx context.Context, categoryID, itemID string, patch models.SkillItemPatch) (*models.SkillCategory, error) {
	return s.category(ctx, "Failed to update skill item", func(dst *models.SkillCategory) error {
		return s.client.Put(ctx, itemPath(categoryID, itemID), patch, dst)
	})
}

func (s *SkillService) DeleteItem(ctx context.Context, categoryID, itemID string) (*models.SkillCategory, error) {
	return s.category(ctx, "Failed to delete skill item", func(dst *models.SkillCategory) error {
		return s.client.Delete(ctx, itemPath(categoryID, itemID), dst)
	})
}

// Reorder assigns display orders and returns the full list in its new order.
func (s *SkillService) Reorder(ctx context.Context, entries []models.ReorderEntry) ([]*models.SkillCategory, error) {
	if entries == nil {
		entries = []models.ReorderEntry{}
	}

	var categories []*models.SkillCategory
	if err := s.client.Put(ctx, "/skills/reorder", entries, &categories); err != nil {
		return nil, wrapServiceError(s.logger, err, "Failed to reorder skills")
	}
	return normalizeList(categories), nil
}

func (s *SkillService) category(ctx context.Context, fallback string, call func(*models.SkillCategory) error) (*models.SkillCategory, error) {
	var category models.SkillCategory
	if err := call(&category); err != nil {
		return nil, wrapServiceError(s.logger, err, fallback)
	}
	category.Normalize()
	return &category, nil
}

func skillPath(id string) string {
	return "/skills/" + url.PathEscape(id)
}

func itemPath(categoryID, itemID string) string {
	return skillPath(categoryID) + "/items/" + url.PathEscape(itemID)
}
