package validation

import (
	"fmt"
	"sort"
	"strings"
)

const (
	KindRequired = "required"
	KindEnum     = "enum"
	KindMin      = "min"
	KindMax      = "max"

	failedMessage = "Product validation failed"
)

// Violation is one broken constraint on one path.
type Violation struct {
	Name    string      `json:"name"`
	Kind    string      `json:"kind"`
	Path    string      `json:"path"`
	Value   interface{} `json:"value,omitempty"`
	Message string      `json:"message"`
}

// ValidationError lists every violation found in a candidate document. Its JSON
// form is what handlers send back as the response body.
type ValidationError struct {
	Name         string                `json:"name"`
	ShortMessage string                `json:"_message"`
	Message      string                `json:"message"`
	Errors       map[string]*Violation `json:"errors"`
}

func newValidationError() *ValidationError {
	return &ValidationError{
		Name:         "ValidationError",
		ShortMessage: failedMessage,
		Errors:       map[string]*Violation{},
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Fields returns the violated paths in schema order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Errors))
	for path := range e.Errors {
		fields = append(fields, path)
	}
	sort.Slice(fields, func(i, j int) bool {
		return fieldRank(fields[i]) < fieldRank(fields[j])
	})
	return fields
}

// Has reports whether path failed with the given kind.
func (e *ValidationError) Has(path, kind string) bool {
	v, ok := e.Errors[path]
	return ok && v.Kind == kind
}

// add keeps the first violation recorded for a path; a cast failure wins over
// the required check that follows it.
func (e *ValidationError) add(v *Violation) {
	if _, exists := e.Errors[v.Path]; exists {
		return
	}
	e.Errors[v.Path] = v
}

func (e *ValidationError) empty() bool {
	return len(e.Errors) == 0
}

func (e *ValidationError) finish() *ValidationError {
	parts := make([]string, 0, len(e.Errors))
	for _, path := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", path, e.Errors[path].Message))
	}
	e.Message = failedMessage + ": " + strings.Join(parts, ", ")
	return e
}

// CastError is returned when a value cannot be converted to the type a path
// expects, including identifiers that are not valid ObjectIDs.
type CastError struct {
	Name        string      `json:"name"`
	Kind        string      `json:"kind"`
	Path        string      `json:"path"`
	Value       interface{} `json:"value"`
	StringValue string      `json:"stringValue"`
	ValueType   string      `json:"valueType"`
	Message     string      `json:"message"`
}

func NewCastError(kind, path string, value interface{}) *CastError {
	rendered := renderValue(value)
	valueType := typeName(value)
	return &CastError{
		Name:        "CastError",
		Kind:        kind,
		Path:        path,
		Value:       value,
		StringValue: rendered,
		ValueType:   valueType,
		Message:     fmt.Sprintf("Cast to %s failed for value %s (type %s) at path %q", kind, rendered, valueType, path),
	}
}

// NewIDCastError describes an identifier that is not a valid ObjectID.
func NewIDCastError(id string) *CastError {
	e := NewCastError("ObjectId", "_id", id)
	e.Message += ` for model "Product"`
	return e
}

func (e *CastError) Error() string {
	return e.Message
}

func (e *CastError) violation() *Violation {
	return &Violation{
		Name:    e.Name,
		Kind:    e.Kind,
		Path:    e.Path,
		Value:   e.Value,
		Message: e.Message,
	}
}
