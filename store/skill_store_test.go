package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rpupo63/portfolio-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func loadedSkillStore(t *testing.T, svc *mockSkillService, categories ...*models.SkillCategory) *SkillStore {
	t.Helper()
	svc.On("List", mock.Anything, true).Return(categories, nil).Once()
	s := NewSkillStore(svc)
	require.True(t, s.FetchSkills(context.Background(), true).OK())
	return s
}

func TestCreateDirectReplacesMatchingLabel(t *testing.T) {
	ctx := context.Background()
	backend, frontend := category("c1", "Backend"), category("c2", "Frontend")
	svc := &mockSkillService{}
	s := loadedSkillStore(t, svc, backend, frontend)

	replacement := category("c9", "Backend ")
	svc.On("CreateDirect", mock.Anything, models.SkillCategory{Category: "Backend"}).Return(replacement, nil)

	require.True(t, s.CreateSkillDirect(ctx, models.SkillCategory{Category: "Backend"}).OK())
	st := s.State()
	require.Len(t, st.Categories, 2)
	assert.Same(t, replacement, st.Categories[0])
	assert.Same(t, frontend, st.Categories[1])
}

func TestCreateDirectAppendsNovelLabel(t *testing.T) {
	ctx := context.Background()
	svc := &mockSkillService{}
	s := loadedSkillStore(t, svc, category("c1", "Backend"))

	devops := category("c3", "DevOps")
	lower := category("c4", "backend")
	svc.On("CreateDirect", mock.Anything, models.SkillCategory{Category: "DevOps"}).Return(devops, nil)
	svc.On("CreateDirect", mock.Anything, models.SkillCategory{Category: "backend"}).Return(lower, nil)

	s.CreateSkillDirect(ctx, models.SkillCategory{Category: "DevOps"})
	assert.Len(t, s.State().Categories, 2)

	// label matching is case-sensitive
	s.CreateSkillDirect(ctx, models.SkillCategory{Category: "backend"})
	assert.Len(t, s.State().Categories, 3)
}

func TestItemOperationsReplaceParent(t *testing.T) {
	ctx := context.Background()
	svc := &mockSkillService{}
	backend := category("c1", "Backend")
	s := loadedSkillStore(t, svc, backend, category("c2", "Frontend"))
	s.Select(backend)

	withItem := category("c1", "Backend")
	withItem.Skills = []models.SkillItem{{WireID: models.WireID{ID: "i1"}, Name: "Go"}}
	svc.On("AddItem", mock.Anything, "c1", models.SkillItem{Name: "Go"}).Return(withItem, nil)

	require.True(t, s.AddSkillItem(ctx, "c1", models.SkillItem{Name: "Go"}).OK())
	assert.Same(t, withItem, s.State().Categories[0])
	assert.Same(t, withItem, s.State().Selected)

	emptied := category("c1", "Backend")
	svc.On("DeleteItem", mock.Anything, "c1", "i1").Return(emptied, nil)
	require.True(t, s.DeleteSkillItem(ctx, "c1", "i1").OK())
	assert.Same(t, emptied, s.State().Categories[0])

	level := models.Expert
	svc.On("UpdateItem", mock.Anything, "c1", "i1", models.SkillItemPatch{Proficiency: &level}).
		Return(nil, errors.New("Skill item not found"))
	result := s.UpdateSkillItem(ctx, "c1", "i1", models.SkillItemPatch{Proficiency: &level})
	assert.Equal(t, "Skill item not found", result.Err)
	assert.Same(t, emptied, s.State().Categories[0])
}

func TestReorderReplacesCollection(t *testing.T) {
	ctx := context.Background()
	a, b := category("c1", "A"), category("c2", "B")
	svc := &mockSkillService{}
	s := loadedSkillStore(t, svc, a, b)

	entries := []models.ReorderEntry{{ID: "c2", DisplayOrder: 0}, {ID: "c1", DisplayOrder: 1}}
	svc.On("Reorder", mock.Anything, entries).Return([]*models.SkillCategory{b, a}, nil)

	require.True(t, s.ReorderSkills(ctx, entries).OK())
	assert.Equal(t, []*models.SkillCategory{b, a}, s.State().Categories)
}

func TestSkillCrud(t *testing.T) {
	ctx := context.Background()
	svc := &mockSkillService{}
	s := loadedSkillStore(t, svc)

	created := category("c1", "Backend")
	svc.On("Create", mock.Anything, models.SkillCategory{Category: "Backend"}).Return(created, nil)
	s.CreateSkill(ctx, models.SkillCategory{Category: "Backend"})
	assert.Len(t, s.State().Categories, 1)

	color := "red"
	recolored := category("c1", "Backend")
	recolored.Color = "red"
	svc.On("Update", mock.Anything, "c1", models.SkillCategoryPatch{Color: &color}).Return(recolored, nil)
	s.UpdateSkill(ctx, "c1", models.SkillCategoryPatch{Color: &color})
	assert.Equal(t, "red", s.State().Categories[0].Color)

	svc.On("GetByID", mock.Anything, "c1").Return(recolored, nil)
	s.FetchSkill(ctx, "c1")
	assert.Same(t, recolored, s.State().Selected)

	svc.On("Delete", mock.Anything, "c1").Return(nil)
	s.DeleteSkill(ctx, "c1")
	assert.Empty(t, s.State().Categories)
	assert.Nil(t, s.State().Selected)
}

func TestEnsureSkillsOnceUntilRefresh(t *testing.T) {
	ctx := context.Background()
	svc := &mockSkillService{}
	svc.On("List", mock.Anything, false).Return([]*models.SkillCategory{category("c1", "Backend")}, nil)

	s := NewSkillStore(svc)
	require.NoError(t, s.EnsureSkills(ctx, false))
	require.NoError(t, s.EnsureSkills(ctx, false))
	svc.AssertNumberOfCalls(t, "List", 1)

	s.FetchSkills(ctx, false)
	svc.AssertNumberOfCalls(t, "List", 2)
}
