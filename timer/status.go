package timer

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/renameio/v2"

	"github.com/franciscoj/podium/config"
	"github.com/franciscoj/podium/internal/apperr"
	"github.com/franciscoj/podium/internal/models"
)

var (
	errWritingStatus = &apperr.Error{
		Kind:    "status_write",
		Message: "unable to write status file",
	}

	errReadingStatus = &apperr.Error{
		Kind:    "status_read",
		Message: "unable to read status file",
	}
)

// Status is the cross-process view of the timer, written to a well-known
// file after every transition so that detached displays can follow along.
type Status struct {
	State        State            `json:"state"`
	TemplateName string           `json:"template_name"`
	Sections     []models.Section `json:"sections"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// WriteStatusFile atomically replaces the status file so a concurrent
// reader never observes a partial write.
func WriteStatusFile(s *Status) error {
	b, err := json.Marshal(s)
	if err != nil {
		return errWritingStatus.Wrap(err)
	}

	if err := renameio.WriteFile(config.StatusFilePath(), b, 0o644); err != nil {
		return errWritingStatus.Wrap(err)
	}

	return nil
}

// ReadStatusFile reads and decodes the status file. A missing file is
// reported through os.ErrNotExist so callers can distinguish "no timer
// running" from a corrupt file.
func ReadStatusFile() (*Status, error) {
	b, err := os.ReadFile(config.StatusFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}

		return nil, errReadingStatus.Wrap(err)
	}

	var s Status
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, errReadingStatus.Wrap(err)
	}

	return &s, nil
}

// RemoveStatusFile deletes the status file when the operator console
// exits. A file that is already gone is not an error.
func RemoveStatusFile() error {
	err := os.Remove(config.StatusFilePath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
