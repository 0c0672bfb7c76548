package httputil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// NewValidator builds a validator with English translations registered and
// field names taken from json tags, so validation messages reference the
// names clients actually send.
func NewValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)

	trans, found := uni.GetTranslator("en")
	if !found {
		return nil, nil, fmt.Errorf("translator not found for locale %q", "en")
	}

	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register translations: %w", err)
	}

	return validate, trans, nil
}

// TranslateErrors flattens validator errors into a field-to-message map.
func TranslateErrors(err error, trans ut.Translator) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Translate(trans)
		}
	}

	return fields
}
