package meeting

import "github.com/franciscoj/podium/internal/apperr"

var (
	errNoSections = &apperr.Error{
		Kind:    "invalid_template",
		Message: "template %q must have at least one section",
	}

	errNonPositiveDuration = &apperr.Error{
		Kind:    "invalid_template",
		Message: "section %q has a non-positive duration: %d",
	}

	errDuplicateOrder = &apperr.Error{
		Kind:    "invalid_template",
		Message: "section order %d is assigned more than once",
	}

	errDuplicateSectionID = &apperr.Error{
		Kind:    "invalid_template",
		Message: "section id %q is assigned more than once",
	}

	errUnknownSectionType = &apperr.Error{
		Kind:    "invalid_template",
		Message: "section %q has an unknown type: %s",
	}

	errEmptyName = &apperr.Error{
		Kind:    "invalid_template",
		Message: "template name cannot be empty",
	}

	errDeleteBuiltin = &apperr.Error{
		Kind:    "builtin_template",
		Message: "built-in template %q cannot be deleted",
	}

	errTemplateNotFound = &apperr.Error{
		Kind:    "template_not_found",
		Message: "no template named %q",
	}
)
