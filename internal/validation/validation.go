package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"userorders/internal/apperrors"
	"userorders/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator checks inbound payloads against the user and order shapes.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateUser checks p and returns the record it describes.
func (v *Validator) ValidateUser(p *models.UserPayload) (*models.User, error) {
	if p == nil {
		return nil, apperrors.Invalid("user payload is required")
	}
	if err := v.check(p); err != nil {
		return nil, err
	}
	return p.ToUser(), nil
}

// ValidateOrder checks a single order line.
func (v *Validator) ValidateOrder(o *models.Order) (*models.Order, error) {
	if o == nil {
		return nil, apperrors.Invalid("order payload is required")
	}
	if err := v.check(o); err != nil {
		return nil, err
	}
	return &models.Order{ProductName: o.ProductName, Price: o.Price, Quantity: o.Quantity}, nil
}

func (v *Validator) check(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Invalid(err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return apperrors.Invalid(strings.Join(msgs, "; "))
}

func message(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' tag", field, fe.Tag())
	}
}

// fieldPath drops the root struct name: "UserPayload.fullName.firstName" -> "fullName.firstName".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
