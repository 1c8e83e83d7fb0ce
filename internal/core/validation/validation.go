// Package validation checks signup and login payloads before any side
// effect occurs. Checks are exhaustive: every violated constraint is
// collected and returned together so a caller can render a whole form's
// errors in one response.
//
// Syntactic rules (email format, password length, role enum) live as
// struct tags handled by go-playground/validator. The role-conditional
// requirements are kept in an explicit rule table consulted after the
// tag pass, so the conditional logic does not depend on any validation
// library feature.
package validation

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/quickbites/auth-service/internal/core/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func tagValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// conditionalRule names one field required for a specific role.
type conditionalRule struct {
	path  string
	msg   string
	value func(domain.SignupInput) string
}

// roleRules maps each role to the fields it requires. Fields belonging
// to other roles are tolerated but never validated.
var roleRules = map[string][]conditionalRule{
	domain.RoleCustomer: {
		{path: "fullName", msg: "Full name is required for customers", value: func(in domain.SignupInput) string { return in.FullName }},
		{path: "address", msg: "Address is required for customers", value: func(in domain.SignupInput) string { return in.Address }},
	},
	domain.RoleVendor: {
		{path: "businessName", msg: "Business name is required for vendors", value: func(in domain.SignupInput) string { return in.BusinessName }},
	},
	domain.RoleDelivery: {
		{path: "vehicleType", msg: "Vehicle type is required for delivery", value: func(in domain.SignupInput) string { return in.VehicleType }},
		{path: "vehicleRegistrationNumber", msg: "Vehicle registration is required for delivery", value: func(in domain.SignupInput) string { return in.VehicleRegistrationNumber }},
	},
}

// Signup validates a registration payload. A nil return means the
// payload is acceptable.
func Signup(in domain.SignupInput) *domain.ValidationError {
	fields := tagErrors(in)

	for _, rule := range roleRules[in.Role] {
		if rule.value(in) == "" {
			fields = append(fields, domain.NewFieldError(rule.path, rule.msg))
		}
	}
	if in.Role == domain.RoleDelivery && in.VehicleType != "" && !domain.ValidVehicleType(in.VehicleType) {
		fields = append(fields, domain.NewFieldError("vehicleType", "Vehicle type must be Bike or Car"))
	}

	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fields}
}

// Login validates an authentication payload.
func Login(in domain.LoginInput) *domain.ValidationError {
	fields := tagErrors(in)
	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fields}
}

// tagErrors runs the struct-tag pass and maps each violation to its
// payload path and message. go-playground/validator already collects
// every failing field rather than stopping at the first.
func tagErrors(payload any) []domain.FieldError {
	err := tagValidator().Struct(payload)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		// InvalidValidationError only happens on non-struct input.
		return []domain.FieldError{domain.NewFieldError("", "invalid payload")}
	}

	fields := make([]domain.FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, domain.NewFieldError(fieldPath(fe.Field()), fieldMessage(fe)))
	}
	return fields
}

// fieldPath maps Go field names to the flat payload keys used in error
// paths.
func fieldPath(name string) string {
	switch name {
	case "Email":
		return "email"
	case "Password":
		return "password"
	case "Role":
		return "role"
	case "PhoneNumber":
		return "phoneNumber"
	default:
		return name
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Invalid email"
	case "Password":
		if fe.Tag() == "required" {
			return "Password is required"
		}
		return "Password must be at least 6 characters"
	case "Role":
		if fe.Tag() == "required" {
			return "Role is required"
		}
		return "Invalid role"
	case "PhoneNumber":
		return "Phone number is required"
	default:
		return fe.Field() + " is invalid"
	}
}
