// Package media implements the upload pipeline and the signed-URL proxy for
// content media: validation, storage key generation, the object-store write
// with its ACL fallback, and key-to-signed-URL resolution.
package media

import (
	"fmt"
	"strings"
)

// Type classifies an uploaded file, derived once from its MIME type at upload
// time and never re-derived.
type Type string

const (
	TypeImage Type = "image"
	TypeVideo Type = "video"
)

// EntityType is the coarse content category a file belongs to. It determines
// the first storage path segment only and carries no other semantics.
type EntityType string

const (
	EntityPost    EntityType = "post"
	EntityLog     EntityType = "log"
	EntityProject EntityType = "project"
)

// Item is a media reference embedded in a content document. Key is the only
// durable identifier; the underlying object has no independent lifecycle.
type Item struct {
	Key     string `bson:"key" json:"key"`
	Type    Type   `bson:"type" json:"type"`
	Caption string `bson:"caption,omitempty" json:"caption,omitempty"`
}

// entitySegments and typeSegments form the closed mapping from entity and
// media type to storage path segments. Invalid combinations are
// unrepresentable; there is no string interpolation of caller input.
var entitySegments = map[EntityType]string{
	EntityPost:    "posts",
	EntityLog:     "logs",
	EntityProject: "projects",
}

var typeSegments = map[Type]string{
	TypeImage: "images",
	TypeVideo: "videos",
}

// ParseEntityType normalizes and validates a form-supplied entity type.
// A blank value defaults to "post".
func ParseEntityType(s string) (EntityType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return EntityPost, nil
	}
	et := EntityType(normalized)
	if _, ok := entitySegments[et]; !ok {
		return "", NewValidationError("Invalid entity type. Must be 'post', 'log', or 'project'")
	}
	return et, nil
}

// TypeFromContentType maps a MIME type to a media type: video/* is video,
// everything else is image. Only called after the allow-list check passed.
func TypeFromContentType(contentType string) Type {
	if strings.HasPrefix(contentType, "video/") {
		return TypeVideo
	}
	return TypeImage
}

// ValidationError marks a user-correctable upload failure. Handlers map it to
// a 400 response with the message verbatim.
type ValidationError struct {
	msg string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.msg
}
