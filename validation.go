package extgrid

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm/schema"
)

// preformattedPrefix marks a message that is shown as is, without the
// attribute label in front of it.
const preformattedPrefix = "^"

// FieldError is a single validation failure of a record attribute.
type FieldError struct {
	Attribute string
	Message   string
}

// ValidationErrors keeps validation failures in the order they were added.
type ValidationErrors []FieldError

// Add appends a failure for attribute.
func (e *ValidationErrors) Add(attribute, message string) {
	*e = append(*e, FieldError{Attribute: attribute, Message: message})
}

// Error - implements error.
func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fmt.Sprintf("%s %s", fe.Attribute, strings.TrimPrefix(fe.Message, preformattedPrefix)))
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

var _ error = ValidationErrors(nil)

// Validatable is a record carrying validation failures.
type Validatable interface {
	ValidationErrors() ValidationErrors
}

// AttributeLabeler lets a record provide human readable attribute names.
// Records without it get Humanize.
type AttributeLabeler interface {
	HumanAttributeName(attribute string) string
}

// Humanize turns an attribute identifier into a label: "first_name" and
// "FirstName" become "First name", a trailing "_id" is dropped.
func Humanize(attribute string) string {
	name := schema.NamingStrategy{}.ColumnName("", attribute)
	if name != "id" {
		name = strings.TrimSuffix(name, "_id")
	}
	name = strings.Join(strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == ' ' }), " ")
	if name == "" {
		return ""
	}

	name = cases.Lower(language.Und).String(name)
	first, rest, _ := strings.Cut(name, " ")
	first = cases.Title(language.Und).String(first)
	if rest == "" {
		return first
	}

	return first + " " + rest
}

func humanAttributeName(record any, attribute string) string {
	if labeler, ok := record.(AttributeLabeler); ok {
		return labeler.HumanAttributeName(attribute)
	}

	return Humanize(attribute)
}

// FullMessage renders a failure for display. A message starting with "^" is
// returned without it, any other message is prefixed with the attribute label.
func FullMessage(record any, fe FieldError) string {
	if msg, ok := strings.CutPrefix(fe.Message, preformattedPrefix); ok {
		return msg
	}

	return humanAttributeName(record, fe.Attribute) + " " + fe.Message
}

// FirstError returns the first failure of record rendered with FullMessage.
// Returns false if the record has no failures.
func FirstError(record Validatable) (string, bool) {
	if record == nil {
		return "", false
	}

	errs := record.ValidationErrors()
	if len(errs) == 0 {
		return "", false
	}

	return FullMessage(record, errs[0]), true
}

// ErrorKey returns the form field name ExtJS reports a failure of attribute
// under.
func ErrorKey(attribute string) string {
	return fmt.Sprintf("%s[%s]", RootProperty, attribute)
}

// AllErrors returns every failure of record rendered with FullMessage, keyed
// by ErrorKey. A later failure of the same attribute replaces an earlier one.
func AllErrors(record Validatable) map[string]string {
	ret := make(map[string]string)
	if record == nil {
		return ret
	}

	for _, fe := range record.ValidationErrors() {
		ret[ErrorKey(fe.Attribute)] = FullMessage(record, fe)
	}

	return ret
}

// FormResponse is the reply to an ExtJS form submit.
type FormResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// FormFailure builds the failed submit reply for record: the first failure as
// message and every failure for inline display.
func FormFailure(record Validatable) FormResponse {
	msg, _ := FirstError(record)

	return FormResponse{
		Success: false,
		Message: msg,
		Errors:  AllErrors(record),
	}
}
