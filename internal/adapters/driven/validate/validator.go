// Package validate checks decoded content at the store boundary with
// go-playground/validator struct tags.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driven"
)

// Ensure Validator implements the interface.
var _ driven.ContentValidator = (*Validator)(nil)

// Validator rejects items that violate the domain tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(itemStructLevel, domain.ContentItem{})
	return &Validator{validate: v}
}

// Validate returns the items that pass and one error per rejected item.
// Every error wraps domain.ErrInvalidInput.
func (v *Validator) Validate(items []domain.ContentItem) ([]domain.ContentItem, []error) {
	valid := make([]domain.ContentItem, 0, len(items))
	var errs []error
	for _, item := range items {
		if err := v.Item(item); err != nil {
			errs = append(errs, err)
			continue
		}
		valid = append(valid, item)
	}
	return valid, errs
}

// Item validates a single item.
func (v *Validator) Item(item domain.ContentItem) error {
	err := v.validate.Struct(item)
	if err == nil {
		return nil
	}

	label := item.ID
	if label == "" {
		label = item.Slug
	}
	return fmt.Errorf("%s %q: %w: %s", item.Kind, label, domain.ErrInvalidInput, formatValidationError(err))
}

// itemStructLevel checks rules that span fields.
func itemStructLevel(sl validator.StructLevel) {
	item, ok := sl.Current().Interface().(domain.ContentItem)
	if !ok {
		return
	}
	if strings.ContainsAny(item.Slug, "/ \t\n?#") {
		sl.ReportError(item.Slug, "slug", "Slug", "slug", "")
	}
	if item.Kind != domain.KindPost && len(item.Categories) > 1 {
		sl.ReportError(item.Categories, "categories", "Categories", "single", "")
	}
}

func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}
	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "slug":
		return fmt.Sprintf("%s must not contain slashes, spaces or URL delimiters", field)
	case "single":
		return fmt.Sprintf("%s allows one category for this kind", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
