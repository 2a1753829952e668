package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingDescriptor = errors.New("descriptor file not found")
	ErrMissingContent    = errors.New("content file not found")
	ErrInvalidContent    = errors.New("content file is not valid UTF-8")
)

// ValidationError reports a descriptor field with an unusable value.
type ValidationError struct {
	Path  string
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Path, e.Field, e.Msg)
}

// Keywords accepts either a comma separated string or a list of strings.
type Keywords string

func (k *Keywords) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*k = ""
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("meta_keywords: %w", err)
		}
		parts := list[:0]
		for _, s := range list {
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, s)
			}
		}
		*k = Keywords(strings.Join(parts, ", "))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("meta_keywords: %w", err)
	}
	*k = Keywords(s)
	return nil
}

// descriptor mirrors metadata.json. Pointer fields distinguish "absent"
// from zero values so defaults can be applied.
type descriptor struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Sequence        *int     `json:"sequence"`
	Status          *int     `json:"status"`
	IsFree          *bool    `json:"is_free"`
	MetaTitle       *string  `json:"meta_title"`
	MetaDescription *string  `json:"meta_description"`
	MetaKeywords    Keywords `json:"meta_keywords"`
}

func parseDescriptor(path string, data []byte) (*descriptor, error) {
	var d descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if d.Sequence != nil && *d.Sequence < 1 {
		return nil, &ValidationError{Path: path, Field: "sequence", Msg: "must be at least 1"}
	}
	if d.Status != nil && *d.Status < 0 {
		return nil, &ValidationError{Path: path, Field: "status", Msg: "must not be negative"}
	}
	return &d, nil
}

func (d *descriptor) title() string {
	if d.Title == nil {
		return ""
	}
	return strings.TrimSpace(*d.Title)
}

func stringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
