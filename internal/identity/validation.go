package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bissquit/campus-registry/internal/domain"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// maxEmailLength is the longest address accepted in the accounts table.
const maxEmailLength = 254

// Credentials is the raw registration payload submitted by the sign-up form.
type Credentials struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,max=254,email"`
	Password  string `json:"password" validate:"required,min=8,passwordbytes"`
	Role      string `json:"role" validate:"required,role"`
}

// fieldMessages holds the user-facing message for each field and failed rule.
var fieldMessages = map[string]map[string]string{
	"FirstName": {
		"required": "First name is required",
		"max":      "First name must be at most 100 characters",
	},
	"LastName": {
		"required": "Last name is required",
		"max":      "Last name must be at most 100 characters",
	},
	"Email": {
		"required": "Email is required",
		"max":      fmt.Sprintf("Email must be at most %d characters", maxEmailLength),
		"email":    "Invalid email address",
	},
	"Password": {
		"required":      "Password is required",
		"min":           "Password must be at least 8 characters long",
		"passwordbytes": fmt.Sprintf("Password must be at most %d bytes long", maxPasswordBytes),
	},
	"Role": {
		"required": "Role is required",
		"role":     "Role must be one of " + roleList(),
	},
}

// fieldLabels names credential fields by their wire key.
var fieldLabels = map[string]string{
	"first_name": "First name",
	"last_name":  "Last name",
	"email":      "Email",
	"password":   "Password",
	"role":       "Role",
}

// typeMismatch reports a JSON value of the wrong type as a validation failure.
func typeMismatch(field string) *ValidationError {
	label, ok := fieldLabels[field]
	if !ok {
		label = field
	}
	return &ValidationError{Messages: []string{label + " must be a string"}}
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails on a malformed tag name, which is a programming error.
	if err := v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return domain.Role(fl.Field().String()).IsValid()
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("passwordbytes", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	}); err != nil {
		panic(err)
	}
	return v
}

// Normalize trims surrounding whitespace from identifying fields and puts
// names into Unicode NFC form. The password is left untouched.
func Normalize(c Credentials) Credentials {
	c.FirstName = norm.NFC.String(strings.TrimSpace(c.FirstName))
	c.LastName = norm.NFC.String(strings.TrimSpace(c.LastName))
	c.Email = strings.TrimSpace(c.Email)
	c.Role = strings.TrimSpace(c.Role)
	return c
}

// validate checks every field and collects one message per violation.
func validate(v *validator.Validate, c Credentials) error {
	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate credentials: %w", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, messageFor(fe))
	}
	return &ValidationError{Messages: messages}
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.StructField()][fe.Tag()]; ok {
		return msg
	}
	return fe.StructField() + " is invalid"
}

func roleList() string {
	names := make([]string, len(domain.Roles))
	for i, r := range domain.Roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
