package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscoj/podium/internal/models"
)

func validSections() []models.Section {
	return []models.Section{
		{
			ID:       "talk",
			Name:     "Talk",
			Duration: 10,
			Order:    2,
			Type:     models.SectionTalk,
		},
		{
			ID:       "song",
			Name:     "Song",
			Duration: 3,
			Order:    1,
			Type:     models.SectionSong,
		},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.Template)
		wantErr error
	}{
		{
			name:   "valid template",
			mutate: func(*models.Template) {},
		},
		{
			name: "empty name",
			mutate: func(tmpl *models.Template) {
				tmpl.Name = ""
			},
			wantErr: errEmptyName,
		},
		{
			name: "no sections",
			mutate: func(tmpl *models.Template) {
				tmpl.Sections = nil
			},
			wantErr: errNoSections,
		},
		{
			name: "zero duration",
			mutate: func(tmpl *models.Template) {
				tmpl.Sections[0].Duration = 0
			},
			wantErr: errNonPositiveDuration,
		},
		{
			name: "negative duration",
			mutate: func(tmpl *models.Template) {
				tmpl.Sections[1].Duration = -5
			},
			wantErr: errNonPositiveDuration,
		},
		{
			name: "duplicate order",
			mutate: func(tmpl *models.Template) {
				tmpl.Sections[1].Order = tmpl.Sections[0].Order
			},
			wantErr: errDuplicateOrder,
		},
		{
			name: "duplicate section id",
			mutate: func(tmpl *models.Template) {
				tmpl.Sections[1].ID = tmpl.Sections[0].ID
			},
			wantErr: errDuplicateSectionID,
		},
		{
			name: "unknown section type",
			mutate: func(tmpl *models.Template) {
				tmpl.Sections[0].Type = "intermission"
			},
			wantErr: errUnknownSectionType,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tmpl := &models.Template{
				ID:       "t1",
				Name:     "Test",
				Type:     models.TemplateWeekday,
				Sections: validSections(),
			}

			tc.mutate(tmpl)

			err := Validate(tmpl)

			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNormalise(t *testing.T) {
	tmpl := &models.Template{
		Name:     "Test",
		Sections: validSections(),
	}

	Normalise(tmpl)

	assert.Equal(t, "song", tmpl.Sections[0].ID)
	assert.Equal(t, "talk", tmpl.Sections[1].ID)
	assert.Equal(t, 13, tmpl.TotalDuration)
}

func TestNew(t *testing.T) {
	tmpl, err := New("My Meeting", models.TemplateWeekend, validSections())
	require.NoError(t, err)

	assert.NotEmpty(t, tmpl.ID)
	assert.Equal(t, "My Meeting", tmpl.Name)
	assert.Equal(t, 13, tmpl.TotalDuration)
	assert.False(t, tmpl.LastModified.IsZero())

	_, err = New("", models.TemplateWeekend, validSections())
	assert.ErrorIs(t, err, errEmptyName)
}

func TestBuiltinTemplates(t *testing.T) {
	templates := builtinTemplates()
	require.Len(t, templates, 2)

	midweek, weekend := templates[0], templates[1]

	assert.Equal(t, "weekday-default", midweek.ID)
	assert.True(t, midweek.IsDefault)
	assert.Len(t, midweek.Sections, 12)
	assert.Equal(t, 85, midweek.TotalDuration)
	assert.NoError(t, Validate(midweek))

	assert.Equal(t, "weekend-default", weekend.ID)
	assert.True(t, weekend.IsDefault)
	assert.Len(t, weekend.Sections, 7)
	assert.Equal(t, 105, weekend.TotalDuration)
	assert.NoError(t, Validate(weekend))
}
