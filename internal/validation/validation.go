// Package validation checks user-supplied values against a declarative set of
// constraints. Only the constraints that are supplied are checked.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// validate runs the tag checks. notblank rejects whitespace-only strings.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// constraints is the resolved set of rules for a single value
type constraints struct {
	required  bool
	minLength *int
	maxLength *int
	min       *int
	max       *int
}

// Rule is a functional option adding one constraint
type Rule func(*constraints)

// Required requires a non-blank string or a non-zero number
func Required() Rule {
	return func(c *constraints) {
		c.required = true
	}
}

// MinLength requires a string of at least n characters
func MinLength(n int) Rule {
	return func(c *constraints) {
		c.minLength = &n
	}
}

// MaxLength requires a string of at most n characters
func MaxLength(n int) Rule {
	return func(c *constraints) {
		c.maxLength = &n
	}
}

// Min requires a number greater than or equal to n
func Min(n int) Rule {
	return func(c *constraints) {
		c.min = &n
	}
}

// Max requires a number less than or equal to n
func Max(n int) Rule {
	return func(c *constraints) {
		c.max = &n
	}
}

// Check reports whether value satisfies every rule
func Check(value any, rules ...Rule) bool {
	return Validate(value, rules...) == nil
}

// Validate checks value against rules and returns the first violated
// constraint as an *Error, or nil when every rule holds.
//
// Length rules apply to strings only; Min and Max apply to numbers only
// (signed, unsigned and floating point).
func Validate(value any, rules ...Rule) error {
	var c constraints
	for _, rule := range rules {
		if rule != nil {
			rule(&c)
		}
	}

	if value == nil {
		if c.required {
			return &Error{Constraint: ErrRequired}
		}
		return nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return run(v.String(), c.stringTags())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return run(v.Int(), c.numberTags())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := v.Uint(); u > math.MaxInt64 {
			// above every int limit, so only Max can fail
			if c.max != nil {
				return &Error{Constraint: ErrTooLarge, Limit: *c.max}
			}
			return nil
		}
		return run(int64(v.Uint()), c.numberTags())
	case reflect.Float32, reflect.Float64:
		return run(v.Float(), c.numberTags())
	default:
		if !c.required {
			return nil
		}
		return run(value, []tag{{name: "required", err: ErrRequired}})
	}
}

// tag is one validator tag and the constraint it reports on failure
type tag struct {
	name  string
	param *int
	err   error
}

func (t tag) String() string {
	if t.param == nil {
		return t.name
	}
	return fmt.Sprintf("%s=%d", t.name, *t.param)
}

func (c constraints) stringTags() []tag {
	var tags []tag
	if c.required {
		tags = append(tags, tag{name: "notblank", err: ErrRequired})
	}
	if c.minLength != nil {
		tags = append(tags, tag{name: "min", param: c.minLength, err: ErrTooShort})
	}
	if c.maxLength != nil {
		tags = append(tags, tag{name: "max", param: c.maxLength, err: ErrTooLong})
	}
	return tags
}

func (c constraints) numberTags() []tag {
	var tags []tag
	if c.required {
		tags = append(tags, tag{name: "required", err: ErrRequired})
	}
	if c.min != nil {
		tags = append(tags, tag{name: "min", param: c.min, err: ErrTooSmall})
	}
	if c.max != nil {
		tags = append(tags, tag{name: "max", param: c.max, err: ErrTooLarge})
	}
	return tags
}

// run validates value against tags in order and maps the first failure
// back to its sentinel
func run(value any, tags []tag) error {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.String()
	}

	err := validate.Var(value, strings.Join(names, ","))
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	failed := fieldErrs[0].Tag()
	for _, t := range tags {
		if t.name != failed {
			continue
		}
		verr := &Error{Constraint: t.err}
		if t.param != nil {
			verr.Limit = *t.param
		}
		return verr
	}
	return err
}

// Rules is the declarative, serialisable form of a rule set.
// Nil limits are not checked.
type Rules struct {
	Required  bool `yaml:"required"`
	MinLength *int `yaml:"min_length,omitempty"`
	MaxLength *int `yaml:"max_length,omitempty"`
	Min       *int `yaml:"min,omitempty"`
	Max       *int `yaml:"max,omitempty"`
}

// Options converts r into the equivalent functional rules
func (r Rules) Options() []Rule {
	var rules []Rule
	if r.Required {
		rules = append(rules, Required())
	}
	if r.MinLength != nil {
		rules = append(rules, MinLength(*r.MinLength))
	}
	if r.MaxLength != nil {
		rules = append(rules, MaxLength(*r.MaxLength))
	}
	if r.Min != nil {
		rules = append(rules, Min(*r.Min))
	}
	if r.Max != nil {
		rules = append(rules, Max(*r.Max))
	}
	return rules
}

// Describe renders the rule set as a short human readable hint,
// e.g. "required, 5-200 characters"
func (r Rules) Describe() string {
	var parts []string
	if r.Required {
		parts = append(parts, "required")
	}
	switch {
	case r.MinLength != nil && r.MaxLength != nil:
		parts = append(parts, fmt.Sprintf("%d-%d characters", *r.MinLength, *r.MaxLength))
	case r.MinLength != nil:
		parts = append(parts, fmt.Sprintf("at least %d characters", *r.MinLength))
	case r.MaxLength != nil:
		parts = append(parts, fmt.Sprintf("at most %d characters", *r.MaxLength))
	}
	switch {
	case r.Min != nil && r.Max != nil:
		parts = append(parts, fmt.Sprintf("%d to %d", *r.Min, *r.Max))
	case r.Min != nil:
		parts = append(parts, fmt.Sprintf("at least %d", *r.Min))
	case r.Max != nil:
		parts = append(parts, fmt.Sprintf("at most %d", *r.Max))
	}
	return strings.Join(parts, ", ")
}

// Int returns a pointer to n, for building Rules literals
func Int(n int) *int {
	return &n
}
