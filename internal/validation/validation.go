// Package validation decodes request bodies and enforces their schema tags,
// turning failures into apierr responses the client can act on.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tarot-app/account-api/internal/apierr"
	"github.com/tarot-app/account-api/internal/token"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator, configured to report JSON field
// names and to treat token.Token as its raw string. Pack structs mark required
// fields as pointers, so "required" checks presence and accepts "" and 0.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
		validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
			if t, ok := v.Interface().(token.Token); ok {
				return t.Value()
			}
			return nil
		}, token.Token{})
	})
	return validate
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// BindAndValidate decodes the JSON body into payload, which must be a pointer
// to a struct, and validates it.
//
// Undecodable bodies yield a 400; schema violations yield a 422 listing every
// offending field.
func BindAndValidate(c *fiber.Ctx, payload any) error {
	if err := c.App().Config().JSONDecoder(c.Body(), payload); err != nil {
		return apierr.BadRequest("request body is not valid JSON for this endpoint", err)
	}
	return Struct(payload)
}

// Struct validates an already decoded payload.
func Struct(payload any) error {
	err := Validator().Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	return apierr.Validation(fieldErrors(verrs))
}

func fieldErrors(verrs validator.ValidationErrors) []apierr.FieldError {
	out := make([]apierr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, apierr.FieldError{Field: fieldPath(fe), Error: message(fe)})
	}
	return out
}

// fieldPath drops the root type name: "pack.AdminSubmittedToken.access_token"
// becomes "AdminSubmittedToken.access_token".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s:%s", fe.Tag(), fe.Param())
		}
		return "failed " + fe.Tag()
	}
}
