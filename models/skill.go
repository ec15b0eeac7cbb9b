package models

import (
	"encoding/json"
	"fmt"
)

// Proficiency is an ordered skill level. The zero value is unset.
type Proficiency int

const (
	Beginner Proficiency = iota + 1
	Intermediate
	Advanced
	Expert
)

var proficiencyNames = map[Proficiency]string{
	Beginner:     "Beginner",
	Intermediate: "Intermediate",
	Advanced:     "Advanced",
	Expert:       "Expert",
}

func (p Proficiency) String() string {
	if name, ok := proficiencyNames[p]; ok {
		return name
	}
	return ""
}

func (p Proficiency) Less(other Proficiency) bool {
	return p < other
}

func ParseProficiency(s string) (Proficiency, error) {
	for level, name := range proficiencyNames {
		if name == s {
			return level, nil
		}
	}
	return 0, fmt.Errorf("unknown proficiency %q", s)
}

func (p Proficiency) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Proficiency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*p = 0
		return nil
	}
	level, err := ParseProficiency(s)
	if err != nil {
		return err
	}
	*p = level
	return nil
}

// SkillItem belongs to exactly one SkillCategory.
type SkillItem struct {
	WireID
	Name               string      `json:"name"`
	Keywords           []string    `json:"keywords"`
	Proficiency        Proficiency `json:"proficiency"`
	Experience         string      `json:"experience"`
	Description        string      `json:"description"`
	Projects           []string    `json:"projects,omitempty"`
	Certifications     []string    `json:"certifications,omitempty"`
	ToolsUsed          []string    `json:"toolsUsed,omitempty"`
	BestPractices      []string    `json:"bestPractices,omitempty"`
	Achievements       []string    `json:"achievements,omitempty"`
	Methodologies      []string    `json:"methodologies,omitempty"`
	PerformanceMetrics []string    `json:"performanceMetrics,omitempty"`
	Roles              []string    `json:"roles,omitempty"`
	Endorsements       []string    `json:"endorsements,omitempty"`
	Version            string      `json:"version,omitempty"`
	Difficulty         string      `json:"difficulty,omitempty"`
	IsActive           bool        `json:"isActive"`
	DisplayOrder       int         `json:"displayOrder"`
}

type SkillItemPatch struct {
	Name         *string      `json:"name,omitempty"`
	Keywords     *[]string    `json:"keywords,omitempty"`
	Proficiency  *Proficiency `json:"proficiency,omitempty"`
	Experience   *string      `json:"experience,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Version      *string      `json:"version,omitempty"`
	Difficulty   *string      `json:"difficulty,omitempty"`
	IsActive     *bool        `json:"isActive,omitempty"`
	DisplayOrder *int         `json:"displayOrder,omitempty"`
}

func (p SkillItemPatch) Apply(item *SkillItem) {
	setString(&item.Name, p.Name)
	setList(&item.Keywords, p.Keywords)
	if p.Proficiency != nil {
		item.Proficiency = *p.Proficiency
	}
	setString(&item.Experience, p.Experience)
	setString(&item.Description, p.Description)
	setString(&item.Version, p.Version)
	setString(&item.Difficulty, p.Difficulty)
	setBool(&item.IsActive, p.IsActive)
	setInt(&item.DisplayOrder, p.DisplayOrder)
}

// SkillCategory groups skill items under a label. The label is the soft
// uniqueness key used by direct creation.
type SkillCategory struct {
	WireID
	Category     string      `json:"category"`
	Description  string      `json:"description,omitempty"`
	Icon         string      `json:"icon,omitempty"`
	Color        string      `json:"color,omitempty"`
	IsActive     bool        `json:"isActive"`
	IsFeatured   bool        `json:"isFeatured"`
	DisplayOrder int         `json:"displayOrder"`
	Skills       []SkillItem `json:"skills"`
}

// Normalize also normalizes the owned items.
func (c *SkillCategory) Normalize() {
	c.WireID.Normalize()
	for i := range c.Skills {
		c.Skills[i].Normalize()
	}
}

type SkillCategoryPatch struct {
	Category     *string      `json:"category,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Icon         *string      `json:"icon,omitempty"`
	Color        *string      `json:"color,omitempty"`
	IsActive     *bool        `json:"isActive,omitempty"`
	IsFeatured   *bool        `json:"isFeatured,omitempty"`
	DisplayOrder *int         `json:"displayOrder,omitempty"`
	Skills       *[]SkillItem `json:"skills,omitempty"`
}

func (p SkillCategoryPatch) Apply(c *SkillCategory) {
	setString(&c.Category, p.Category)
	setString(&c.Description, p.Description)
	setString(&c.Icon, p.Icon)
	setString(&c.Color, p.Color)
	setBool(&c.IsActive, p.IsActive)
	setBool(&c.IsFeatured, p.IsFeatured)
	setInt(&c.DisplayOrder, p.DisplayOrder)
	if p.Skills != nil {
		c.Skills = append([]SkillItem(nil), (*p.Skills)...)
	}
}

// ReorderEntry assigns a display order to one category.
type ReorderEntry struct {
	ID           string `json:"id"`
	DisplayOrder int    `json:"displayOrder"`
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
