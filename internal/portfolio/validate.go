package portfolio

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var anchorPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the portfolio tags registered:
// platform, skill_level and anchor.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		mustRegister(v, "platform", func(fl validator.FieldLevel) bool {
			return Platform(fl.Field().String()).Valid()
		})
		mustRegister(v, "skill_level", func(fl validator.FieldLevel) bool {
			return SkillLevel(fl.Field().String()).Valid()
		})
		mustRegister(v, "anchor", func(fl validator.FieldLevel) bool {
			return anchorPattern.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Validate checks every record of the portfolio. The returned error names each
// failing field.
func Validate(c Config) error {
	return check(c)
}

// ValidateStruct checks any of the copy blocks or records on their own.
func ValidateStruct(v any) error {
	return check(v)
}

func check(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate portfolio: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid portfolio content: %s: %w", strings.Join(msgs, "; "), err)
}
