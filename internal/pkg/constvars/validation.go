package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"email":      "must be a valid email address",
	"oneof":      "must be one of: %s",
	"min":        "must be at least %s characters",
	"max":        "must be at most %s characters",
	"len":        "must have exactly %s entries",
	"clock_time": "must be a 24-hour HH:MM value",
	"iso_date":   "must be a calendar date in YYYY-MM-DD format",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
	"len":   true,
}
