package validation

import (
	"reflect"
	"testing"

	"github.com/quickbites/auth-service/internal/core/domain"
)

func validCustomerInput() domain.SignupInput {
	return domain.SignupInput{
		Email:       "a@b.com",
		Password:    "secret1",
		Role:        domain.RoleCustomer,
		PhoneNumber: "555",
		FullName:    "A B",
		Address:     "1 Main St",
	}
}

func TestSignup_ValidPayloads(t *testing.T) {
	cases := map[string]domain.SignupInput{
		"customer": validCustomerInput(),
		"vendor": {
			Email:        "v@b.com",
			Password:     "secret1",
			Role:         domain.RoleVendor,
			PhoneNumber:  "555",
			BusinessName: "Vendi",
		},
		"delivery": {
			Email:                     "d@b.com",
			Password:                  "secret1",
			Role:                      domain.RoleDelivery,
			PhoneNumber:               "555",
			VehicleType:               domain.VehicleBike,
			VehicleRegistrationNumber: "REG-1",
		},
	}

	for name, in := range cases {
		if verr := Signup(in); verr != nil {
			t.Errorf("%s: expected valid, got %v: %+v", name, verr, verr.Fields)
		}
	}
}

func TestSignup_BaseFieldErrors(t *testing.T) {
	verr := Signup(domain.SignupInput{
		Email:    "not-an-email",
		Password: "short",
		Role:     "admin",
	})
	if verr == nil {
		t.Fatalf("expected validation error")
	}

	want := map[string]string{
		"email":       "Invalid email",
		"password":    "Password must be at least 6 characters",
		"role":        "Invalid role",
		"phoneNumber": "Phone number is required",
	}
	if len(verr.Fields) != len(want) {
		t.Fatalf("expected %d errors, got %d: %+v", len(want), len(verr.Fields), verr.Fields)
	}
	for _, fe := range verr.Fields {
		if fe.Type != "field" || fe.Location != "body" {
			t.Errorf("unexpected error envelope: %+v", fe)
		}
		if want[fe.Path] != fe.Msg {
			t.Errorf("path %q: expected %q, got %q", fe.Path, want[fe.Path], fe.Msg)
		}
	}
}

func TestSignup_RequiredMessages(t *testing.T) {
	verr := Signup(domain.SignupInput{})
	if verr == nil {
		t.Fatalf("expected validation error")
	}

	want := map[string]string{
		"email":       "Email is required",
		"password":    "Password is required",
		"role":        "Role is required",
		"phoneNumber": "Phone number is required",
	}
	for _, fe := range verr.Fields {
		if want[fe.Path] != fe.Msg {
			t.Errorf("path %q: expected %q, got %q", fe.Path, want[fe.Path], fe.Msg)
		}
	}
}

func TestSignup_RoleConditionalFields(t *testing.T) {
	cases := []struct {
		name string
		in   domain.SignupInput
		path string
		msg  string
	}{
		{
			name: "customer missing full name",
			in: domain.SignupInput{
				Email: "a@b.com", Password: "secret1", Role: domain.RoleCustomer,
				PhoneNumber: "555", Address: "1 Main St",
			},
			path: "fullName",
			msg:  "Full name is required for customers",
		},
		{
			name: "customer missing address",
			in: domain.SignupInput{
				Email: "a@b.com", Password: "secret1", Role: domain.RoleCustomer,
				PhoneNumber: "555", FullName: "A B",
			},
			path: "address",
			msg:  "Address is required for customers",
		},
		{
			name: "vendor missing business name",
			in: domain.SignupInput{
				Email: "v@b.com", Password: "secret1", Role: domain.RoleVendor,
				PhoneNumber: "555",
			},
			path: "businessName",
			msg:  "Business name is required for vendors",
		},
		{
			name: "delivery missing vehicle type",
			in: domain.SignupInput{
				Email: "d@b.com", Password: "secret1", Role: domain.RoleDelivery,
				PhoneNumber: "555", VehicleRegistrationNumber: "REG-1",
			},
			path: "vehicleType",
			msg:  "Vehicle type is required for delivery",
		},
		{
			name: "delivery missing registration",
			in: domain.SignupInput{
				Email: "d@b.com", Password: "secret1", Role: domain.RoleDelivery,
				PhoneNumber: "555", VehicleType: domain.VehicleCar,
			},
			path: "vehicleRegistrationNumber",
			msg:  "Vehicle registration is required for delivery",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verr := Signup(tc.in)
			if verr == nil {
				t.Fatalf("expected validation error")
			}
			if len(verr.Fields) != 1 {
				t.Fatalf("expected exactly one error, got %+v", verr.Fields)
			}
			fe := verr.Fields[0]
			if fe.Path != tc.path || fe.Msg != tc.msg {
				t.Fatalf("expected {%s %s}, got {%s %s}", tc.path, tc.msg, fe.Path, fe.Msg)
			}
		})
	}
}

func TestSignup_InvalidVehicleType(t *testing.T) {
	in := domain.SignupInput{
		Email: "d@b.com", Password: "secret1", Role: domain.RoleDelivery,
		PhoneNumber: "555", VehicleType: "Truck", VehicleRegistrationNumber: "REG-1",
	}
	verr := Signup(in)
	if verr == nil {
		t.Fatalf("expected validation error")
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Path != "vehicleType" {
		t.Fatalf("expected vehicleType error, got %+v", verr.Fields)
	}
}

func TestSignup_OtherRolesFieldsTolerated(t *testing.T) {
	in := validCustomerInput()
	in.BusinessName = "Not a vendor"
	in.VehicleType = "Skateboard" // not validated outside the delivery role
	if verr := Signup(in); verr != nil {
		t.Fatalf("expected valid, got %+v", verr.Fields)
	}
}

func TestSignup_Idempotent(t *testing.T) {
	in := domain.SignupInput{Email: "bad", Role: domain.RoleCustomer}
	first := Signup(in)
	second := Signup(in)
	if first == nil || second == nil {
		t.Fatalf("expected validation errors")
	}
	if !reflect.DeepEqual(first.Fields, second.Fields) {
		t.Fatalf("validation not idempotent:\nfirst:  %+v\nsecond: %+v", first.Fields, second.Fields)
	}
}

func TestLogin(t *testing.T) {
	if verr := Login(domain.LoginInput{Email: "a@b.com", Password: "x", Role: domain.RoleVendor}); verr != nil {
		t.Fatalf("expected valid, got %+v", verr.Fields)
	}

	verr := Login(domain.LoginInput{Email: "nope", Role: "driver"})
	if verr == nil {
		t.Fatalf("expected validation error")
	}
	want := map[string]string{
		"email":    "Invalid email",
		"password": "Password is required",
		"role":     "Invalid role",
	}
	if len(verr.Fields) != len(want) {
		t.Fatalf("expected %d errors, got %+v", len(want), verr.Fields)
	}
	for _, fe := range verr.Fields {
		if want[fe.Path] != fe.Msg {
			t.Errorf("path %q: expected %q, got %q", fe.Path, want[fe.Path], fe.Msg)
		}
	}
}
