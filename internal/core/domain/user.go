package domain

import (
	"strings"
	"time"
)

const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleDelivery = "delivery"
)

const (
	VehicleBike = "Bike"
	VehicleCar  = "Car"
)

// CustomerProfile holds the fields required when Role is customer.
type CustomerProfile struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
}

// VendorProfile holds the fields required when Role is vendor.
type VendorProfile struct {
	BusinessName string `json:"businessName"`
}

// DeliveryProfile holds the fields required when Role is delivery.
type DeliveryProfile struct {
	VehicleType               string `json:"vehicleType"`
	VehicleRegistrationNumber string `json:"vehicleRegistrationNumber"`
}

// User models a registered account. Exactly one of the profile pointers
// is set, matching Role; the others stay nil so a record cannot carry
// fields that belong to a different role.
type User struct {
	ID           string           `json:"id"`
	Email        string           `json:"email"`
	PasswordHash string           `json:"-"`
	Role         string           `json:"role"`
	PhoneNumber  string           `json:"phoneNumber"`
	CreatedAt    time.Time        `json:"createdAt"`
	Customer     *CustomerProfile `json:"customer,omitempty"`
	Vendor       *VendorProfile   `json:"vendor,omitempty"`
	Delivery     *DeliveryProfile `json:"delivery,omitempty"`
}

// SignupInput is the full registration payload. Role-conditional fields
// are plain strings here; the validator decides which ones are required
// and the service keeps only the ones matching Role.
type SignupInput struct {
	Email                     string `validate:"required,email"`
	Password                  string `validate:"required,min=6"`
	Role                      string `validate:"required,oneof=customer vendor delivery"`
	PhoneNumber               string `validate:"required"`
	FullName                  string
	Address                   string
	BusinessName              string
	VehicleType               string
	VehicleRegistrationNumber string
}

// LoginInput is the authentication payload.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Role     string `validate:"required,oneof=customer vendor delivery"`
}

// NormalizeEmail lowercases and trims an email address. Every store
// lookup and every persisted record uses the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidVehicleType reports whether v is an accepted vehicle type.
func ValidVehicleType(v string) bool {
	return v == VehicleBike || v == VehicleCar
}
