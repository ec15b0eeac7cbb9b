package hooks

import (
	"context"

	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rpupo63/portfolio-sync/store"
)

// Skills binds a SkillStore. includeInactive applies to Ensure and Refresh.
type Skills struct {
	store           *store.SkillStore
	includeInactive bool
}

func UseSkills(s *store.SkillStore, includeInactive bool) Skills {
	return Skills{store: s, includeInactive: includeInactive}
}

func (h Skills) State() store.SkillState {
	return h.store.State()
}

func (h Skills) Subscribe(fn func(store.SkillState)) func() {
	return h.store.Subscribe(fn)
}

func (h Skills) Ensure(ctx context.Context) store.SkillState {
	_ = h.EnsureLoaded(ctx)
	return h.store.State()
}

func (h Skills) EnsureLoaded(ctx context.Context) error {
	return h.store.EnsureSkills(ctx, h.includeInactive)
}

func (h Skills) Refresh(ctx context.Context) store.Result[[]*models.SkillCategory] {
	return h.store.FetchSkills(ctx, h.includeInactive)
}

func (h Skills) Fetch(ctx context.Context, id string) store.Result[*models.SkillCategory] {
	return h.store.FetchSkill(ctx, id)
}

func (h Skills) Create(ctx context.Context, category models.SkillCategory) store.Result[*models.SkillCategory] {
	return h.store.CreateSkill(ctx, category)
}

func (h Skills) CreateDirect(ctx context.Context, category models.SkillCategory) store.Result[*models.SkillCategory] {
	return h.store.CreateSkillDirect(ctx, category)
}

func (h Skills) Update(ctx context.Context, id string, patch models.SkillCategoryPatch) store.Result[*models.SkillCategory] {
	return h.store.UpdateSkill(ctx, id, patch)
}

func (h Skills) Delete(ctx context.Context, id string) store.Result[string] {
	return h.store.DeleteSkill(ctx, id)
}

func (h Skills) AddItem(ctx context.Context, categoryID string, item models.SkillItem) store.Result[*models.SkillCategory] {
	return h.store.AddSkillItem(ctx, categoryID, item)
}

func (h Skills) UpdateItem(ctx context.Context, categoryID, itemID string, patch models.SkillItemPatch) store.Result[*models.SkillCategory] {
	return h.store.UpdateSkillItem(ctx, categoryID, itemID, patch)
}

func (h Skills) DeleteItem(ctx context.Context, categoryID, itemID string) store.Result[*models.SkillCategory] {
	return h.store.DeleteSkillItem(ctx, categoryID, itemID)
}

func (h Skills) Reorder(ctx context.Context, entries []models.ReorderEntry) store.Result[[]*models.SkillCategory] {
	return h.store.ReorderSkills(ctx, entries)
}

func (h Skills) Select(category *models.SkillCategory) {
	h.store.Select(category)
}

func (h Skills) ClearError() {
	h.store.ClearError()
}
