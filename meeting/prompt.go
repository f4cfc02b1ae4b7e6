package meeting

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/franciscoj/podium/internal/models"
)

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a name is required")
	}

	return nil
}

func validateMinutes(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("enter a whole number of minutes greater than zero")
	}

	return nil
}

func sectionTypeOptions() []huh.Option[models.SectionType] {
	opts := make([]huh.Option[models.SectionType], 0, len(models.SectionTypes))

	for _, st := range models.SectionTypes {
		opts = append(opts, huh.NewOption(string(st), st))
	}

	return opts
}

// Prompt walks the user through creating a new meeting template and saves
// it to the catalog.
func (c *Catalog) Prompt() (*models.Template, error) {
	var (
		name         string
		templateType models.TemplateType
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Template name").
				Validate(validateName).
				Value(&name),
			huh.NewSelect[models.TemplateType]().
				Title("Meeting type").
				Options(
					huh.NewOption("Weekday", models.TemplateWeekday),
					huh.NewOption("Weekend", models.TemplateWeekend),
				).
				Value(&templateType),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	var sections []models.Section

	for {
		var (
			sectionName string
			minutes     string
			sectionType models.SectionType
			required    = true
			addAnother  bool
		)

		sectionForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("Section %d name", len(sections)+1)).
					Validate(validateName).
					Value(&sectionName),
				huh.NewInput().
					Title("Planned duration (minutes)").
					Validate(validateMinutes).
					Value(&minutes),
				huh.NewSelect[models.SectionType]().
					Title("Section type").
					Options(sectionTypeOptions()...).
					Value(&sectionType),
				huh.NewConfirm().
					Title("Is this section required?").
					Value(&required),
				huh.NewConfirm().
					Title("Add another section?").
					Value(&addAnother),
			),
		)

		if err := sectionForm.Run(); err != nil {
			return nil, err
		}

		duration, _ := strconv.Atoi(strings.TrimSpace(minutes))

		sections = append(sections, models.Section{
			ID:         uuid.NewString(),
			Name:       strings.TrimSpace(sectionName),
			Duration:   duration,
			Order:      len(sections) + 1,
			Type:       sectionType,
			IsRequired: required,
		})

		if !addAnother {
			break
		}
	}

	t, err := New(strings.TrimSpace(name), templateType, sections)
	if err != nil {
		return nil, err
	}

	return t, c.Save(t)
}
