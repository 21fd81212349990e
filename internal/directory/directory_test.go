package directory_test

import (
	"errors"
	"testing"

	"github.com/aswanig/labportal/internal/core"
	"github.com/aswanig/labportal/internal/directory"
)

func TestResolve(t *testing.T) {
	dir := directory.Default()

	tests := []struct {
		login    string
		wantRole core.Role
		wantName string
	}{
		{login: "tech1", wantRole: core.RoleTechnician, wantName: "John Doe"},
		{login: "tech2", wantRole: core.RoleTechnician, wantName: "Jane Smith"},
		{login: "manager1", wantRole: core.RoleManager, wantName: "Bob Wilson"},
		{login: "customer1", wantRole: core.RoleCustomer, wantName: "ABC Corp"},
	}

	for _, tt := range tests {
		t.Run(tt.login, func(t *testing.T) {
			ident, err := dir.Resolve(tt.login)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if ident.ID != tt.login {
				t.Errorf("ID = %q, want %q", ident.ID, tt.login)
			}
			if ident.Role != tt.wantRole {
				t.Errorf("Role = %s, want %s", ident.Role, tt.wantRole)
			}
			if ident.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", ident.Name, tt.wantName)
			}
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	dir := directory.Default()

	if _, err := dir.Resolve("ghost"); !errors.Is(err, core.ErrUnknownIdentity) {
		t.Errorf("Resolve(ghost) error = %v, want ErrUnknownIdentity", err)
	}
	if _, err := dir.Resolve(""); !errors.Is(err, core.ErrUnknownIdentity) {
		t.Errorf("Resolve(\"\") error = %v, want ErrUnknownIdentity", err)
	}
}

func TestAuthorizedFor(t *testing.T) {
	dir := directory.Default()

	tests := []struct {
		login    string
		customer string
		want     bool
	}{
		{"tech1", "CUST001", true},
		{"tech1", "CUST003", true},
		{"tech1", "CUST004", false},
		{"tech2", "CUST004", true},
		{"tech2", "CUST001", false},
		{"manager1", "CUST001", true},
		{"manager1", "CUST005", true},
		{"customer1", "CUST001", true},
		{"customer1", "CUST002", false},
	}

	for _, tt := range tests {
		ident, err := dir.Resolve(tt.login)
		if err != nil {
			t.Fatalf("Resolve(%s) error = %v", tt.login, err)
		}
		if got := ident.AuthorizedFor(tt.customer); got != tt.want {
			t.Errorf("%s.AuthorizedFor(%s) = %v, want %v", tt.login, tt.customer, got, tt.want)
		}
	}
}

func TestCustomerName(t *testing.T) {
	dir := directory.Default()

	name, ok := dir.CustomerName("CUST001")
	if !ok || name != "ABC Corp" {
		t.Errorf("CustomerName(CUST001) = %q, %v", name, ok)
	}
	if _, ok := dir.CustomerName("NOPE"); ok {
		t.Error("CustomerName(NOPE) unexpectedly found")
	}
}

// TestNewStatic_CopiesInput verifies later changes to the argument maps do not
// leak into the directory.
func TestNewStatic_CopiesInput(t *testing.T) {
	users := map[string]core.Identity{
		"u1": {Name: "User One", Role: core.RoleManager},
	}
	customers := map[string]string{"C1": "One"}

	dir := directory.NewStatic(users, customers)
	delete(users, "u1")
	customers["C1"] = "Mutated"

	if _, err := dir.Resolve("u1"); err != nil {
		t.Errorf("Resolve(u1) error = %v after mutating input map", err)
	}
	if name, _ := dir.CustomerName("C1"); name != "One" {
		t.Errorf("CustomerName(C1) = %q, want One", name)
	}
}
