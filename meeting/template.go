// Package meeting manages the catalog of meeting templates.
package meeting

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/franciscoj/podium/internal/models"
)

// Validate checks a template for structural problems: an empty section
// list, non-positive planned durations, duplicate order values, duplicate
// section ids, or unknown section types. Templates are validated before
// they are saved or handed to the timer so that malformed data is rejected
// up front, never mid-session.
func Validate(t *models.Template) error {
	if t.Name == "" {
		return errEmptyName
	}

	if len(t.Sections) == 0 {
		return errNoSections.Fmt(t.Name)
	}

	seenOrder := make(map[int]bool, len(t.Sections))
	seenID := make(map[string]bool, len(t.Sections))

	for i := range t.Sections {
		s := &t.Sections[i]

		if s.Duration <= 0 {
			return errNonPositiveDuration.Fmt(s.Name, s.Duration)
		}

		if seenOrder[s.Order] {
			return errDuplicateOrder.Fmt(s.Order)
		}

		seenOrder[s.Order] = true

		if seenID[s.ID] {
			return errDuplicateSectionID.Fmt(s.ID)
		}

		seenID[s.ID] = true

		if !slices.Contains(models.SectionTypes, s.Type) {
			return errUnknownSectionType.Fmt(s.Name, s.Type)
		}
	}

	return nil
}

// Normalise sorts the sections by their order and recomputes the derived
// total duration. It must be called whenever sections change so the total
// can never drift out of sync by hand-editing.
func Normalise(t *models.Template) {
	slices.SortStableFunc(t.Sections, func(a, b models.Section) int {
		return a.Order - b.Order
	})

	var total int
	for i := range t.Sections {
		total += t.Sections[i].Duration
	}

	t.TotalDuration = total
}

// New assembles a validated template from its parts.
func New(
	name string,
	templateType models.TemplateType,
	sections []models.Section,
) (*models.Template, error) {
	t := &models.Template{
		ID:           uuid.NewString(),
		Name:         name,
		Type:         templateType,
		Sections:     sections,
		LastModified: time.Now(),
	}

	Normalise(t)

	if err := Validate(t); err != nil {
		return nil, err
	}

	return t, nil
}
