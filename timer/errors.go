package timer

import "github.com/franciscoj/podium/internal/apperr"

var (
	// ErrNoTemplate is returned when a control operation requires a
	// selected meeting template and none is set.
	ErrNoTemplate = &apperr.Error{
		Kind:    "no_template",
		Message: "no meeting template selected",
	}

	// ErrInvalidSectionIndex is returned when a section navigation would
	// move past the template bounds.
	ErrInvalidSectionIndex = &apperr.Error{
		Kind:    "invalid_section_index",
		Message: "cannot move %s: already at the %s section",
	}

	// ErrIllegalTransition is returned when a control operation is invoked
	// in a state that does not permit it.
	ErrIllegalTransition = &apperr.Error{
		Kind:    "illegal_transition",
		Message: "illegal timer transition: %s",
	}

	// ErrNotAuthorized is returned when the authorization gate denies a
	// control operation.
	ErrNotAuthorized = &apperr.Error{
		Kind:    "not_authorized",
		Message: "you are not authorized to perform this action: %s",
	}
)
