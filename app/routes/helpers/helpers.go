// Package helpers holds small request plumbing shared by the route packages.
package helpers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct runs validator tags over a request body and returns
// field-level problems, or nil when the body is valid.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := map[string]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	} else {
		fields["_"] = err.Error()
	}
	return fields
}

// ValidationError writes the standard 400 response for schema violations.
func ValidationError(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(400).JSON(fiber.Map{
		"error":  "Validation failed",
		"fields": fields,
	})
}

// ParseDate accepts a calendar date as "2006-01-02" or a full RFC 3339
// timestamp, as clients send both.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// InvalidParam writes the standard 400 response for a malformed route
// parameter, returning the write error.
func InvalidParam(c *fiber.Ctx, name string) error {
	return c.Status(400).JSON(fiber.Map{"error": "Invalid " + name})
}
