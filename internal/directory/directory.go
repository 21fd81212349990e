// Package directory resolves login identities to roles and permissions.
//
// The directory is an externally-configured mapping injected into the core
// service; it deliberately knows nothing about credentials. Real
// authentication (passwords, sessions, SSO) is out of scope and would sit in
// front of this lookup.
package directory

import (
	"fmt"

	"github.com/aswanig/labportal/internal/core"
)

// Static is a fixed, in-memory identity directory.
type Static struct {
	users     map[string]core.Identity
	customers map[string]string
}

// NewStatic builds a directory from explicit user and customer tables.
// The maps are copied; later changes to the arguments have no effect.
func NewStatic(users map[string]core.Identity, customers map[string]string) *Static {
	s := &Static{
		users:     make(map[string]core.Identity, len(users)),
		customers: make(map[string]string, len(customers)),
	}
	for login, ident := range users {
		ident.ID = login
		s.users[login] = ident
	}
	for id, name := range customers {
		s.customers[id] = name
	}
	return s
}

// Resolve returns the identity for a login.
func (s *Static) Resolve(login string) (core.Identity, error) {
	ident, ok := s.users[login]
	if !ok {
		return core.Identity{}, fmt.Errorf("resolve %q: %w", login, core.ErrUnknownIdentity)
	}
	return ident, nil
}

// CustomerName returns the display name for a customer ID.
func (s *Static) CustomerName(customerID string) (string, bool) {
	name, ok := s.customers[customerID]
	return name, ok
}

// Default returns the directory used for demos and local development:
// two technicians with disjoint customer sets, two managers, and one
// customer login per customer account.
func Default() *Static {
	return NewStatic(
		map[string]core.Identity{
			"tech1":     {Name: "John Doe", Role: core.RoleTechnician, Customers: []string{"CUST001", "CUST002", "CUST003"}},
			"tech2":     {Name: "Jane Smith", Role: core.RoleTechnician, Customers: []string{"CUST004", "CUST005"}},
			"manager1":  {Name: "Bob Wilson", Role: core.RoleManager},
			"manager2":  {Name: "Alice Johnson", Role: core.RoleManager},
			"customer1": {Name: "ABC Corp", Role: core.RoleCustomer, CustomerID: "CUST001"},
			"customer2": {Name: "XYZ Ltd", Role: core.RoleCustomer, CustomerID: "CUST002"},
			"customer3": {Name: "Tech Solutions", Role: core.RoleCustomer, CustomerID: "CUST003"},
			"customer4": {Name: "Green Energy", Role: core.RoleCustomer, CustomerID: "CUST004"},
			"customer5": {Name: "Eco Systems", Role: core.RoleCustomer, CustomerID: "CUST005"},
		},
		map[string]string{
			"CUST001": "ABC Corp",
			"CUST002": "XYZ Ltd",
			"CUST003": "Tech Solutions",
			"CUST004": "Green Energy",
			"CUST005": "Eco Systems",
		},
	)
}

var _ core.Directory = (*Static)(nil)
