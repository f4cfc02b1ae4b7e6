package config

import "github.com/franciscoj/podium/internal/apperr"

var (
	errReadConfig = &apperr.Error{
		Kind:    "config_read",
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Kind:    "config_write",
		Message: "writing default config failed",
	}

	errInvalidColor = &apperr.Error{
		Kind:    "config_validation",
		Message: "%s color for %s must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidThreshold = &apperr.Error{
		Kind:    "config_validation",
		Message: "%s alert thresholds are invalid: warning (%ds) must be greater than critical (%ds), and both must be positive",
	}

	errUnknownAction = &apperr.Error{
		Kind:    "config_validation",
		Message: "user %q has an unknown permission action: %s",
	}

	errInvalidPeriod = &apperr.Error{
		Kind:    "filter",
		Message: "please provide a valid time period",
	}

	errInvalidStartDate = &apperr.Error{
		Kind:    "filter",
		Message: "please provide a valid start date",
	}

	errInvalidDateRange = &apperr.Error{
		Kind:    "filter",
		Message: "the start time must be earlier than the end time",
	}
)
