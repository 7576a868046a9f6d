package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FailedTags returns the set of validation tags that failed, keyed by tag.
// Non-validation errors yield nil.
func FailedTags(err error) map[string][]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	tags := make(map[string][]string, len(validationErrors))
	for _, e := range validationErrors {
		tags[e.Tag()] = append(tags[e.Tag()], e.Field())
	}
	return tags
}

// HasTag reports whether any field failed the given tag
func HasTag(err error, tag string) bool {
	_, ok := FailedTags(err)[tag]
	return ok
}
