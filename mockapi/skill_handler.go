package mockapi

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-sync/errs"
	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *DocumentRepo[models.SkillCategory]
}

func newSkillHandler(skillRepo *DocumentRepo[models.SkillCategory]) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

// ordered returns the categories by display order, inactive ones only on request.
func (h skillHandler) ordered(includeInactive bool) []models.SkillCategory {
	all := h.skillRepo.FindAll()
	out := make([]models.SkillCategory, 0, len(all))
	for _, c := range all {
		if c.IsActive || includeInactive {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}

func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeInactive, _ := strconv.ParseBool(r.URL.Query().Get("includeInactive"))
		h.responder.WriteJSON(w, h.ordered(includeInactive))
	}
}

func (h skillHandler) getSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, ok := h.skillRepo.FindByID(chi.URLParam(r, "categoryID"))
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("Skill category not found"))
			return
		}
		h.responder.WriteJSON(w, category)
	}
}

func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := h.decodeCategory(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, h.skillRepo.Add(category))
	}
}

// createSkillDirect upserts by category label: an existing category with
// the same trimmed label is overwritten in place and keeps its _id.
func (h skillHandler) createSkillDirect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := h.decodeCategory(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		for _, existing := range h.skillRepo.FindAll() {
			if strings.TrimSpace(existing.Category) != category.Category {
				continue
			}
			updated, ok, _ := h.skillRepo.Update(existing.RawID, func(c *models.SkillCategory) error {
				*c = category
				return nil
			})
			if ok {
				h.responder.WriteJSON(w, updated)
				return
			}
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, h.skillRepo.Add(category))
	}
}

func (h skillHandler) decodeCategory(r *http.Request) (models.SkillCategory, error) {
	var category models.SkillCategory
	if err := decodeJSON(r, &category); err != nil {
		return category, err
	}
	category.Category = strings.TrimSpace(category.Category)
	if category.Category == "" {
		return category, errs.NewMissingRequiredFieldError("category")
	}
	category.Skills = withItemIDs(category.Skills)
	return category, nil
}

func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.SkillCategoryPatch
		if err := decodeJSON(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if patch.Skills != nil {
			items := withItemIDs(*patch.Skills)
			patch.Skills = &items
		}

		updated, ok, _ := h.skillRepo.Update(chi.URLParam(r, "categoryID"), func(c *models.SkillCategory) error {
			patch.Apply(c)
			return nil
		})
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("Skill category not found"))
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.skillRepo.Delete(chi.URLParam(r, "categoryID")) {
			h.responder.WriteError(w, errs.NewNotFoundError("Skill category not found"))
			return
		}
		h.responder.WriteMessage(w, "Skill category deleted successfully")
	}
}

func (h skillHandler) addItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item models.SkillItem
		if err := decodeJSON(r, &item); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if strings.TrimSpace(item.Name) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		item.WireID = models.WireID{RawID: uuid.NewString()}

		h.mutateItems(w, r, http.StatusCreated, func(items []models.SkillItem) ([]models.SkillItem, error) {
			return append(items, item), nil
		})
	}
}

func (h skillHandler) updateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.SkillItemPatch
		if err := decodeJSON(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		itemID := chi.URLParam(r, "itemID")

		h.mutateItems(w, r, http.StatusOK, func(items []models.SkillItem) ([]models.SkillItem, error) {
			for i := range items {
				if items[i].RawID == itemID {
					patch.Apply(&items[i])
					return items, nil
				}
			}
			return nil, errs.NewNotFoundError("Skill item not found")
		})
	}
}

func (h skillHandler) deleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemID")

		h.mutateItems(w, r, http.StatusOK, func(items []models.SkillItem) ([]models.SkillItem, error) {
			for i := range items {
				if items[i].RawID == itemID {
					return append(items[:i], items[i+1:]...), nil
				}
			}
			return nil, errs.NewNotFoundError("Skill item not found")
		})
	}
}

// mutateItems runs fn over a private copy of the category's items and
// answers with the whole category.
func (h skillHandler) mutateItems(w http.ResponseWriter, r *http.Request, status int, fn func([]models.SkillItem) ([]models.SkillItem, error)) {
	updated, ok, err := h.skillRepo.Update(chi.URLParam(r, "categoryID"), func(c *models.SkillCategory) error {
		items, err := fn(append([]models.SkillItem(nil), c.Skills...))
		if err != nil {
			return err
		}
		c.Skills = items
		return nil
	})
	if !ok {
		h.responder.WriteError(w, errs.NewNotFoundError("Skill category not found"))
		return
	}
	if err != nil {
		h.responder.WriteError(w, err)
		return
	}
	h.responder.WriteJSONStatus(w, status, updated)
}

func (h skillHandler) reorderSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entries []models.ReorderEntry
		if err := decodeJSON(r, &entries); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		for _, entry := range entries {
			order := entry.DisplayOrder
			_, ok, _ := h.skillRepo.Update(entry.ID, func(c *models.SkillCategory) error {
				c.DisplayOrder = order
				return nil
			})
			if !ok {
				h.logger.Warn().Str("categoryID", entry.ID).Msg("reorder entry for unknown category")
			}
		}
		h.responder.WriteJSON(w, h.ordered(true))
	}
}

func withItemIDs(items []models.SkillItem) []models.SkillItem {
	out := make([]models.SkillItem, len(items))
	for i, item := range items {
		if item.RawID == "" {
			item.RawID = item.ID
		}
		if item.RawID == "" {
			item.RawID = uuid.NewString()
		}
		item.ID = ""
		out[i] = item
	}
	return out
}
