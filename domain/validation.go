package domain

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
)

// Validate checks v against its binding tags, the same rules applied to request bodies.
func Validate(v interface{}) error {
	return binding.Validator.ValidateStruct(v)
}

// OptionalString maps blank text to nil.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
