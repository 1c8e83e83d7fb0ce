package handler

import (
	"github.com/quickbites/auth-service/internal/core/domain"
)

// --- Request / Response types ---

// Transport types are intentionally separate from the domain types so
// the JSON contract is not coupled to internal changes.

type signupRequest struct {
	Email                     string `json:"email"`
	Password                  string `json:"password"`
	Role                      string `json:"role"`
	PhoneNumber               string `json:"phoneNumber"`
	FullName                  string `json:"fullName"`
	Address                   string `json:"address"`
	BusinessName              string `json:"businessName"`
	VehicleType               string `json:"vehicleType"`
	VehicleRegistrationNumber string `json:"vehicleRegistrationNumber"`
}

func (r signupRequest) toInput() domain.SignupInput {
	return domain.SignupInput{
		Email:                     r.Email,
		Password:                  r.Password,
		Role:                      r.Role,
		PhoneNumber:               r.PhoneNumber,
		FullName:                  r.FullName,
		Address:                   r.Address,
		BusinessName:              r.BusinessName,
		VehicleType:               r.VehicleType,
		VehicleRegistrationNumber: r.VehicleRegistrationNumber,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// userResponse flattens the persisted record into the wire shape:
// profile fields appear at the top level, absent ones are omitted, and
// the password hash is never included.
type userResponse struct {
	ID                        string `json:"id"`
	Email                     string `json:"email"`
	Role                      string `json:"role"`
	PhoneNumber               string `json:"phoneNumber"`
	FullName                  string `json:"fullName,omitempty"`
	Address                   string `json:"address,omitempty"`
	BusinessName              string `json:"businessName,omitempty"`
	VehicleType               string `json:"vehicleType,omitempty"`
	VehicleRegistrationNumber string `json:"vehicleRegistrationNumber,omitempty"`
}

func newUserResponse(user *domain.User) userResponse {
	resp := userResponse{
		ID:          user.ID,
		Email:       user.Email,
		Role:        user.Role,
		PhoneNumber: user.PhoneNumber,
	}
	switch {
	case user.Customer != nil:
		resp.FullName = user.Customer.FullName
		resp.Address = user.Customer.Address
	case user.Vendor != nil:
		resp.BusinessName = user.Vendor.BusinessName
	case user.Delivery != nil:
		resp.VehicleType = user.Delivery.VehicleType
		resp.VehicleRegistrationNumber = user.Delivery.VehicleRegistrationNumber
	}
	return resp
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}
