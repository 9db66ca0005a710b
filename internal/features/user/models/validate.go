package models

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	apperrors "ashen-backend/internal/common/errors"

	"github.com/go-playground/validator/v10"
)

// handleRegex restricts usernames to ASCII letters, digits and
// underscore.
var handleRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json names so validation details match
	// the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("handle", func(fl validator.FieldLevel) bool {
		return handleRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// ValidateCreate checks the untrusted input against the record schema
// and, on success, produces a full User with defaults applied: links
// default to an empty slice, is_active defaults to true. On failure the
// returned error enumerates every violated field constraint; no partial
// record is ever produced.
func ValidateCreate(input *CreateUserInput) (*User, *apperrors.AppError) {
	if err := validate.Struct(input); err != nil {
		fields := make(map[string]string)
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				// Trim the root struct name so nested fields read
				// as "links[0].url".
				ns := fe.Namespace()
				if i := strings.Index(ns, "."); i >= 0 {
					ns = ns[i+1:]
				}
				fields[ns] = reason(fe)
			}
		} else {
			fields["input"] = err.Error()
		}
		return nil, apperrors.NewValidationError(fields)
	}

	links := make([]Link, 0, len(input.Links))
	for _, l := range input.Links {
		links = append(links, Link{Label: l.Label, URL: l.URL, Icon: l.Icon})
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	return &User{
		Username:    input.Username,
		DisplayName: input.DisplayName,
		Email:       input.Email,
		Bio:         input.Bio,
		AvatarURL:   input.AvatarURL,
		Links:       links,
		IsActive:    isActive,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("cannot exceed %s characters", fe.Param())
	case "handle":
		return "must contain only letters, digits and underscores"
	case "url":
		return "must be a well-formed absolute URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
