package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vango-dev/vangoui/internal/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Validator returns the shared validator. The story catalog uses it too so
// that the custom tags registered here are available everywhere.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
			d, err := time.ParseDuration(fl.Field().String())
			return err == nil && d >= 0
		})

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		v.RegisterTagNameFunc(fieldName)
		validateInst = v
	})
	return validateInst
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := Validator().Struct(c); err != nil {
		return errors.New("E102").
			WithDetail(DescribeValidation(err)).
			WithSuggestion("Fix the listed fields in " + ConfigFileName + " or the matching " + EnvPrefix + "* variables")
	}
	return nil
}

// DescribeValidation flattens validator errors into one sorted line per field.
func DescribeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err.Error()
	}

	lines := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		lines = append(lines, fmt.Sprintf("%s: %s", trimRoot(fe.Namespace()), ruleMessage(fe)))
	}
	sort.Strings(lines)
	return strings.Join(lines, "; ")
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "slug":
		return fmt.Sprintf("%q must be lowercase words joined by hyphens", fe.Value())
	case "duration":
		return fmt.Sprintf("%q is not a duration", fe.Value())
	default:
		return fmt.Sprintf("failed %q", fe.Tag())
	}
}

func trimRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// fieldName makes validator report json or yaml names instead of Go field
// names.
func fieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	}
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
