package store

import (
	"time"

	"github.com/franciscoj/podium/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// UpdateTemplate creates or overwrites a meeting template.
	UpdateTemplate(t *models.Template) error
	// GetTemplate returns the template with the given ID.
	GetTemplate(id string) (*models.Template, error)
	// GetTemplates returns all saved meeting templates.
	GetTemplates() ([]*models.Template, error)
	// DeleteTemplate deletes a saved meeting template.
	DeleteTemplate(id string) error
	// SaveSession stores a finished timer session.
	SaveSession(sess *models.Session) error
	// GetSessions returns finished sessions that started within the given
	// time bounds.
	GetSessions(startTime, endTime time.Time) ([]*models.Session, error)
	// DeleteSessions deletes one or more saved sessions.
	DeleteSessions(sessions []*models.Session) error
	// Close ends the database connection.
	Close() error
	// Open begins a database connection.
	Open() error
}
