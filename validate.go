package nexttag

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// moduleNameRegex allows alphanumerics, hyphens, dots, and underscores, with
// an alphanumeric first and last character. A single alphanumeric character
// is also a valid module name.
var moduleNameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9._-]*[a-zA-Z0-9])?$`)

// maxModuleNameLen bounds module names before they reach tag strings.
const maxModuleNameLen = 50

// ValidateField validates a single value against validator tags,
// e.g. ValidateField(path, "required").
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateModuleName rejects module identifiers that could leak unsafe
// characters into file paths or tag strings. Only alphanumerics, hyphens,
// dots, and underscores are allowed, starting and ending alphanumeric.
func ValidateModuleName(name string) error {
	if err := ValidateField(name, "required"); err != nil {
		return &ValidationError{Field: "module name", Reason: "cannot be empty"}
	}
	if len(name) > maxModuleNameLen {
		return &ValidationError{Field: "module name", Value: name, Reason: "too long (max 50 characters)"}
	}
	if !moduleNameRegex.MatchString(name) {
		return &ValidationError{
			Field:  "module name",
			Value:  name,
			Reason: "only alphanumerics, hyphens, dots, and underscores are allowed, starting and ending alphanumeric",
		}
	}
	for _, run := range []string{"--", "__", ".."} {
		if strings.Contains(name, run) {
			return &ValidationError{Field: "module name", Value: name, Reason: "consecutive special characters not allowed"}
		}
	}
	return nil
}
