package meeting

import (
	"sort"
	"time"

	"github.com/maruel/natural"

	"github.com/franciscoj/podium/internal/models"
	"github.com/franciscoj/podium/store"
)

// Catalog manages meeting templates on top of the data store.
type Catalog struct {
	db store.DB
}

// NewCatalog returns a catalog backed by the given store.
func NewCatalog(db store.DB) *Catalog {
	return &Catalog{db: db}
}

// Seed stores the built-in templates if the catalog is empty.
func (c *Catalog) Seed() error {
	templates, err := c.db.GetTemplates()
	if err != nil {
		return err
	}

	if len(templates) > 0 {
		return nil
	}

	for _, t := range builtinTemplates() {
		if err := c.db.UpdateTemplate(t); err != nil {
			return err
		}
	}

	return nil
}

// List returns all templates sorted naturally by name.
func (c *Catalog) List() ([]*models.Template, error) {
	templates, err := c.db.GetTemplates()
	if err != nil {
		return nil, err
	}

	sort.Slice(templates, func(i, j int) bool {
		return natural.Less(templates[i].Name, templates[j].Name)
	})

	return templates, nil
}

// Get returns a template by its ID.
func (c *Catalog) Get(id string) (*models.Template, error) {
	return c.db.GetTemplate(id)
}

// Find returns the template whose ID or name matches the given value, or
// the default weekday template when the value is empty.
func (c *Catalog) Find(nameOrID string) (*models.Template, error) {
	templates, err := c.db.GetTemplates()
	if err != nil {
		return nil, err
	}

	if nameOrID == "" {
		for _, t := range templates {
			if t.IsDefault && t.Type == models.TemplateWeekday {
				return t, nil
			}
		}

		for _, t := range templates {
			if t.IsDefault {
				return t, nil
			}
		}

		return nil, errTemplateNotFound.Fmt("(default)")
	}

	for _, t := range templates {
		if t.ID == nameOrID || t.Name == nameOrID {
			return t, nil
		}
	}

	return nil, errTemplateNotFound.Fmt(nameOrID)
}

// Save validates, normalises, and stores a template.
func (c *Catalog) Save(t *models.Template) error {
	Normalise(t)

	if err := Validate(t); err != nil {
		return err
	}

	t.LastModified = time.Now()

	return c.db.UpdateTemplate(t)
}

// Delete removes a template. Built-in templates are protected.
func (c *Catalog) Delete(nameOrID string) error {
	t, err := c.Find(nameOrID)
	if err != nil {
		return err
	}

	if t.IsDefault {
		return errDeleteBuiltin.Fmt(t.Name)
	}

	return c.db.DeleteTemplate(t.ID)
}
