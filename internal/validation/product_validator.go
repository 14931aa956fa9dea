package validation

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"glowy/internal/models"

	"github.com/go-playground/validator/v10"
)

// canonicalCategories maps the lower-cased spelling of each allowed skincare
// category to its canonical title-cased form. Lookups are case-insensitive;
// the stored value is always the canonical spelling.
var canonicalCategories = map[string]string{
	"serum":       "Serum",
	"cleanser":    "Cleanser",
	"moisturizer": "Moisturizer",
	"toner":       "Toner",
	"sunscreen":   "Sunscreen",
	"mask":        "Mask",
	"exfoliator":  "Exfoliator",
	"eye cream":   "Eye Cream",
	"ampoule":     "Ampoule",
	"essence":     "Essence",
}

// CategoryNames returns the canonical category names in a stable order,
// used for error messages.
func CategoryNames() []string {
	names := make([]string, 0, len(canonicalCategories))
	for _, name := range canonicalCategories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Error aggregates every field rule an input violated. It is returned before
// any persistence call is attempted.
type Error struct {
	Fields map[string]string `json:"errors"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// ProductValidator normalizes and validates product payloads. The same rules
// run for create and update requests.
type ProductValidator struct {
	validate *validator.Validate
}

// NewProductValidator creates a validator with the skincare category rule
// registered and error field names taken from the json tags.
func NewProductValidator() *ProductValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// skincare_category passes when the value case-insensitively matches one
	// of the canonical categories.
	_ = v.RegisterValidation("skincare_category", func(fl validator.FieldLevel) bool {
		_, ok := canonicalCategories[strings.ToLower(fl.Field().String())]
		return ok
	})

	return &ProductValidator{validate: v}
}

// ValidateProduct normalizes the input, validates every field, and returns the
// fully canonical payload or an *Error listing each violated rule.
//
// Normalization: name and category are trimmed, a missing or whitespace-only
// description collapses to nil, the category is rewritten to its canonical
// title-cased spelling, and the price is rounded to 2 decimal places.
func (pv *ProductValidator) ValidateProduct(input models.ProductInput) (models.ProductInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		if trimmed == "" {
			input.Description = nil
		} else {
			input.Description = &trimmed
		}
	}

	if err := pv.validate.Struct(input); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return models.ProductInput{}, err
		}
		fields := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			fields[e.Field()] = messageFor(e)
		}
		return models.ProductInput{}, &Error{Fields: fields}
	}

	// Canonicalization happens only after every rule passed, so the bounds
	// are always checked against the raw value.
	input.Category = canonicalCategories[strings.ToLower(input.Category)]
	input.Price = math.Round(input.Price*100) / 100

	return input, nil
}

// messageFor translates a validator field error into the rule it states.
func messageFor(e validator.FieldError) string {
	switch e.Field() {
	case "name":
		switch e.Tag() {
		case "required":
			return "name must not be empty"
		case "min":
			return "name must have at least 3 characters"
		case "max":
			return "name must not exceed 150 characters"
		}
	case "category":
		switch e.Tag() {
		case "required":
			return "category must not be empty"
		case "skincare_category":
			return "category must be one of: " + strings.Join(CategoryNames(), ", ")
		}
	case "price":
		switch e.Tag() {
		case "gt":
			return "price must be greater than 0"
		case "lte":
			return "price must not exceed 999.99"
		}
	case "stock":
		switch e.Tag() {
		case "gte":
			return "stock must not be negative"
		case "lte":
			return "stock must not exceed 9999 units"
		}
	case "description":
		if e.Tag() == "max" {
			return "description must not exceed 500 characters"
		}
	}
	return fmt.Sprintf("failed on the '%s' rule", e.Tag())
}
