// Package store connects to the data store and manages meeting templates
// and finished timer sessions.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/franciscoj/podium/internal/apperr"
	"github.com/franciscoj/podium/internal/models"
	"github.com/franciscoj/podium/internal/timeutil"
)

var pathToDB string

var (
	errPodiumRunning = &apperr.Error{
		Kind:    "store_locked",
		Message: "is Podium already running? Only one instance can be active at a time",
	}

	errTemplateNotFound = &apperr.Error{
		Kind:    "template_not_found",
		Message: "template not found: %s",
	}
)

const (
	templateBucket = "templates"
	sessionBucket  = "sessions"
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) UpdateTemplate(t *models.Template) error {
	value, err := json.Marshal(t)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(templateBucket)).Put([]byte(t.ID), value)
	})
}

func (c *Client) GetTemplate(id string) (*models.Template, error) {
	var t models.Template

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(templateBucket)).Get([]byte(id))
		if len(b) == 0 {
			return errTemplateNotFound.Fmt(id)
		}

		return json.Unmarshal(b, &t)
	})
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (c *Client) GetTemplates() ([]*models.Template, error) {
	var templates []*models.Template

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(templateBucket)).
			ForEach(func(_, v []byte) error {
				var t models.Template

				err := json.Unmarshal(v, &t)
				if err != nil {
					return err
				}

				templates = append(templates, &t)

				return nil
			})
	})

	return templates, err
}

func (c *Client) DeleteTemplate(id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(templateBucket)).Delete([]byte(id))
	})
}

func (c *Client) SaveSession(sess *models.Session) error {
	key := timeutil.ToKey(sess.StartTime)

	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put(key, value)
	})
}

func (c *Client) GetSessions(
	startTime, endTime time.Time,
) ([]*models.Session, error) {
	var sessions []*models.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()
		min := timeutil.ToKey(startTime)
		max := timeutil.ToKey(endTime)

		for k, v := cur.Seek(min); k != nil && bytes.Compare(k, max) <= 0; k, v = cur.Next() {
			var sess models.Session

			err := json.Unmarshal(v, &sess)
			if err != nil {
				return err
			}

			sessions = append(sessions, &sess)
		}

		return nil
	})

	return sessions, err
}

func (c *Client) DeleteSessions(sessions []*models.Session) error {
	return c.Update(func(tx *bolt.Tx) error {
		for i := range sessions {
			key := timeutil.ToKey(sessions[i].StartTime)

			err := tx.Bucket([]byte(sessionBucket)).Delete(key)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{
		db,
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errPodiumRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	pathToDB = dbPath

	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}
	// Create the necessary buckets for storing data if they do not exist
	// already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(templateBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
