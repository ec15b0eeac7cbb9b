package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCopiesStorageKey(t *testing.T) {
	var p Project
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"a1","title":"Site"}`), &p))
	assert.Equal(t, "", p.ID)

	p.Normalize()
	assert.Equal(t, "a1", p.ID)
	assert.Equal(t, "a1", p.Identifier())
}

func TestNormalizeKeepsIDWhenNoStorageKey(t *testing.T) {
	p := Project{WireID: WireID{ID: "x"}}
	p.Normalize()
	assert.Equal(t, "x", p.ID)
}

func TestSkillCategoryNormalizesItems(t *testing.T) {
	var c SkillCategory
	raw := `{"_id":"c1","category":"Backend","skills":[{"_id":"i1","name":"Go","proficiency":"Expert"}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	c.Normalize()
	assert.Equal(t, "c1", c.ID)
	require.Len(t, c.Skills, 1)
	assert.Equal(t, "i1", c.Skills[0].ID)
	assert.Equal(t, Expert, c.Skills[0].Proficiency)
}

func TestProficiencyOrderAndJSON(t *testing.T) {
	assert.True(t, Beginner.Less(Intermediate))
	assert.True(t, Intermediate.Less(Advanced))
	assert.True(t, Advanced.Less(Expert))
	assert.False(t, Expert.Less(Beginner))

	out, err := json.Marshal(Advanced)
	require.NoError(t, err)
	assert.Equal(t, `"Advanced"`, string(out))

	var p Proficiency
	assert.Error(t, json.Unmarshal([]byte(`"Guru"`), &p))
}

func TestProjectPatchApply(t *testing.T) {
	title := "New"
	features := []string{"a"}
	p := Project{Title: "Old", Category: "web"}

	ProjectPatch{Title: &title, Features: &features}.Apply(&p)
	assert.Equal(t, "New", p.Title)
	assert.Equal(t, "web", p.Category)
	assert.Equal(t, []string{"a"}, p.Features)
}

func TestDefaultSiteSettingsSocialKeys(t *testing.T) {
	out, err := json.Marshal(DefaultSiteSettings())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	links := decoded["socialLinks"].(map[string]any)
	for _, key := range []string{"linkedin", "github", "twitter", "instagram", "behance", "dribbble"} {
		assert.Contains(t, links, key)
	}
	assert.NotContains(t, decoded, "_id")
}

func TestDefaultSiteSettingsFullyPopulated(t *testing.T) {
	d := DefaultSiteSettings()
	for name, value := range map[string]string{
		"name": d.Name, "title": d.Title, "description": d.Description,
		"email": d.Email, "phone": d.Phone, "location": d.Location,
	} {
		assert.NotEmpty(t, value, name)
	}
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.False(t, Theme("blue").Valid())
}
