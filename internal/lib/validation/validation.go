// Package validation holds the shared request validator with the club's custom tags.
package validation

import (
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"elevate/internal/models"
)

var (
	phoneRegex    = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	githubRegex   = regexp.MustCompile(`^https://github\.com/[a-zA-Z0-9_-]+$`)
	linkedinRegex = regexp.MustCompile(`^https://linkedin\.com/in/[a-zA-Z0-9_-]+$`)
)

var (
	once   sync.Once
	global *validator.Validate
)

// New builds a validator that reports fields by their json names and knows
// the phone, github, linkedin and interest tags.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("phone", matcher(phoneRegex))
	_ = v.RegisterValidation("github", matcher(githubRegex))
	_ = v.RegisterValidation("linkedin", matcher(linkedinRegex))
	_ = v.RegisterValidation("interest", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.Interests, fl.Field().String())
	})

	return v
}

// Validator returns the process-wide validator. It is safe for concurrent use.
func Validator() *validator.Validate {
	once.Do(func() {
		global = New()
	})

	return global
}

func matcher(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}
