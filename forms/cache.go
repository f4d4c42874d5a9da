package forms

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// CacheForm represents the base form structure for cache-related forms
type CacheForm struct{}

// SetEntryForm contains the fields required to store a cache entry.
// Value carries the raw bytes to store, base64-encoded in JSON; an
// absent value stores empty bytes. The TTL is expressed in whole
// seconds and must be positive
type SetEntryForm struct {
	Key        string `form:"key" json:"key" binding:"required,min=1,max=512,cachekey"`
	Value      []byte `form:"value" json:"value"`
	TTLSeconds int64  `form:"ttl_seconds" json:"ttl_seconds" binding:"required,min=1"`
}

// Key returns the appropriate error message for key validation tags
func (f CacheForm) Key(tag string) string {
	switch tag {
	case "required":
		return "Please provide a cache key"
	case "min", "max":
		return "Cache key can be from 1 to 512 characters"
	case "cachekey":
		return "Cache key must not contain whitespace or control characters"
	default:
		return "Something went wrong, please try again later"
	}
}

// TTL returns the appropriate error message for TTL validation tags
func (f CacheForm) TTL(tag string) string {
	switch tag {
	case "required", "min":
		return "Please provide a positive TTL in seconds"
	default:
		return "Something went wrong, please try again later"
	}
}

// Set validates a SetEntryForm and returns appropriate error messages
func (f CacheForm) Set(err error) string {
	switch err.(type) {
	case validator.ValidationErrors:
		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return "Something went wrong, please try again later"
		}

		for _, err := range err.(validator.ValidationErrors) {
			if err.Field() == "Key" {
				return f.Key(err.Tag())
			}
			if err.Field() == "TTLSeconds" {
				return f.TTL(err.Tag())
			}
		}
	default:
		return "Invalid request"
	}
	return "Something went wrong, please try again later"
}
