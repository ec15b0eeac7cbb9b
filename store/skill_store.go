package store

import (
	"context"

	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

type SkillService interface {
	List(ctx context.Context, includeInactive bool) ([]*models.SkillCategory, error)
	GetByID(ctx context.Context, id string) (*models.SkillCategory, error)
	Create(ctx context.Context, category models.SkillCategory) (*models.SkillCategory, error)
	CreateDirect(ctx context.Context, category models.SkillCategory) (*models.SkillCategory, error)
	Update(ctx context.Context, id string, patch models.SkillCategoryPatch) (*models.SkillCategory, error)
	Delete(ctx context.Context, id string) error
	AddItem(ctx context.Context, categoryID string, item models.SkillItem) (*models.SkillCategory, error)
	UpdateItem(ctx context.Context, categoryID, itemID string, patch models.SkillItemPatch) (*models.SkillCategory, error)
	DeleteItem(ctx context.Context, categoryID, itemID string) (*models.SkillCategory, error)
	Reorder(ctx context.Context, entries []models.ReorderEntry) ([]*models.SkillCategory, error)
}

type SkillState struct {
	Categories    []*models.SkillCategory
	Selected      *models.SkillCategory
	LoadRequested bool
	Lifecycle
}

type SkillStore struct {
	m       *machine[SkillState]
	service SkillService
	group   singleflight.Group
	logger  zerolog.Logger
}

func NewSkillStore(service SkillService) *SkillStore {
	return &SkillStore{
		m:       newMachine(SkillState{Categories: []*models.SkillCategory{}}),
		service: service,
		logger:  log.With().Str("serviceName", "skillStore").Logger(),
	}
}

func (s *SkillStore) State() SkillState {
	return s.m.snapshot()
}

func (s *SkillStore) Subscribe(fn func(SkillState)) func() {
	return s.m.subscribe(fn)
}

func (s *SkillStore) FetchSkills(ctx context.Context, includeInactive bool) Result[[]*models.SkillCategory] {
	return dispatch(ctx, s.m, reduceFetchSkills, func(ctx context.Context) ([]*models.SkillCategory, error) {
		return s.service.List(ctx, includeInactive)
	})
}

func (s *SkillStore) FetchSkill(ctx context.Context, id string) Result[*models.SkillCategory] {
	return dispatch(ctx, s.m, reduceFetchSkill, func(ctx context.Context) (*models.SkillCategory, error) {
		return s.service.GetByID(ctx, id)
	})
}

func (s *SkillStore) CreateSkill(ctx context.Context, category models.SkillCategory) Result[*models.SkillCategory] {
	return dispatch(ctx, s.m, reduceCreateSkill, func(ctx context.Context) (*models.SkillCategory, error) {
		return s.service.Create(ctx, category)
	})
}

// CreateSkillDirect replaces a loaded category with the same label instead
// of appending a second one.
func (s *SkillStore) CreateSkillDirect(ctx context.Context, category models.SkillCategory) Result[*models.SkillCategory] {
	return dispatch(ctx, s.m, reduceCreateSkillDirect, func(ctx context.Context) (*models.SkillCategory, error) {
		return s.service.CreateDirect(ctx, category)
	})
}

func (s *SkillStore) UpdateSkill(ctx context.Context, id string, patch models.SkillCategoryPatch) Result[*models.SkillCategory] {
	return s.replace(ctx, func(ctx context.Context) (*models.SkillCategory, error) {
		return s.service.Update(ctx, id, patch)
	})
}

func (s *SkillStore) DeleteSkill(ctx context.Context, id string) Result[string] {
	return dispatch(ctx, s.m, reduceDeleteSkill, func(ctx context.Context) (string, error) {
		return id, s.service.Delete(ctx, id)
	})
}

func (s *SkillStore) AddSkillItem(ctx context.Context, categoryID string, item models.SkillItem) Result[*models.SkillCategory] {
	return s.replace(ctx, func(ctx context.Context) (*models.SkillCategory, error) {
		return s.service.AddItem(ctx, categoryID, item)
	})
}

func (s *SkillStore) UpdateSkillItem(ctx context.Context, categoryID, itemID string, patch models.SkillItemPatch) Result[*models.SkillCategory] {
	return s.replace(ctx, func(ctx context.Context) (*models.SkillCategory, error) {
		return s.service.UpdateItem(ctx, categoryID, itemID, patch)
	})
}

func (s *SkillStore) DeleteSkillItem(ctx context.Context, categoryID, itemID string) Result[*models.SkillCategory] {
	return s.replace(ctx, func(ctx context.Context) (*models.SkillCategory, error) {
		return s.service.DeleteItem(ctx, categoryID, itemID)
	})
}

// ReorderSkills replaces the collection with the server's new ordering.
func (s *SkillStore) ReorderSkills(ctx context.Context, entries []models.ReorderEntry) Result[[]*models.SkillCategory] {
	return dispatch(ctx, s.m, reduceReorderSkills, func(ctx context.Context) ([]*models.SkillCategory, error) {
		return s.service.Reorder(ctx, entries)
	})
}

func (s *SkillStore) Select(category *models.SkillCategory) {
	s.m.apply(func(st SkillState) SkillState {
		st.Selected = category
		return st
	})
}

func (s *SkillStore) ClearError() {
	s.m.apply(func(st SkillState) SkillState {
		st.Error = ""
		return st
	})
}

// EnsureSkills fetches the categories once; see ProjectStore.EnsureProjects.
func (s *SkillStore) EnsureSkills(ctx context.Context, includeInactive bool) error {
	_, err, _ := s.group.Do("skills", func() (any, error) {
		if st := s.State(); st.LoadRequested || len(st.Categories) > 0 {
			return nil, nil
		}
		return nil, s.FetchSkills(ctx, includeInactive).Error()
	})
	return err
}

func (s *SkillStore) replace(ctx context.Context, call func(context.Context) (*models.SkillCategory, error)) Result[*models.SkillCategory] {
	result := dispatch(ctx, s.m, reduceReplaceSkill, call)
	if result.OK() && !containsID(s.State().Categories, result.Value.ID) {
		s.logger.Debug().Str("categoryID", result.Value.ID).Msg("updated category is not in the loaded collection")
	}
	return result
}

func reduceFetchSkills(s SkillState, r Result[[]*models.SkillCategory]) SkillState {
	s.Lifecycle = reduceLifecycle(s.Lifecycle, false, r)
	switch r.Status {
	case Pending:
		s.LoadRequested = true
	case Fulfilled:
		s.Categories = r.Value
		if s.Categories == nil {
			s.Categories = []*models.SkillCategory{}
		}
	}
	return s
}

func reduceFetchSkill(s SkillState, r Result[*models.SkillCategory]) SkillState {
	s.Lifecycle = reduceLifecycle(s.Lifecycle, false, r)
	if r.OK() {
		s.Selected = r.Value
	}
	return s
}

func reduceCreateSkill(s SkillState, r Result[*models.SkillCategory]) SkillState {
	s.Lifecycle = reduceLifecycle(s.Lifecycle, true, r)
	if r.OK() {
		s.Categories = appendItem(s.Categories, r.Value)
	}
	return s
}

func reduceCreateSkillDirect(s SkillState, r Result[*models.SkillCategory]) SkillState {
	s.Lifecycle = reduceLifecycle(s.Lifecycle, true, r)
	if !r.OK() {
		return s
	}
	for i, existing := range s.Categories {
		if existing != nil && sameLabel(existing.Category, r.Value.Category) {
			s.Categories = replaceAt(s.Categories, i, r.Value)
			return s
		}
	}
	s.Categories = appendItem(s.Categories, r.Value)
	return s
}

func reduceReplaceSkill(s SkillState, r Result[*models.SkillCategory]) SkillState {
	s.Lifecycle = reduceLifecycle(s.Lifecycle, true, r)
	if r.OK() {
		s.Categories = replaceByID(s.Categories, r.Value)
		if s.Selected != nil && s.Selected.ID == r.Value.ID {
			s.Selected = r.Value
		}
	}
	return s
}

func reduceDeleteSkill(s SkillState, r Result[string]) SkillState {
	s.Lifecycle = reduceLifecycle(s.Lifecycle, true, r)
	if r.OK() {
		s.Categories = removeByID(s.Categories, r.Value)
		if s.Selected != nil && s.Selected.ID == r.Value {
			s.Selected = nil
		}
	}
	return s
}

func reduceReorderSkills(s SkillState, r Result[[]*models.SkillCategory]) SkillState {
	s.Lifecycle = reduceLifecycle(s.Lifecycle, true, r)
	if r.OK() {
		s.Categories = r.Value
		if s.Categories == nil {
			s.Categories = []*models.SkillCategory{}
		}
	}
	return s
}
