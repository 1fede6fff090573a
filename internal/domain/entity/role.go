package entity

// Role represents the type of role a marketplace account can have.
type Role string

const (
	// RoleCustomer indicates a shopper.
	RoleCustomer Role = "customer"
	// RoleRetailer indicates a retail store owner.
	RoleRetailer Role = "retailer"
	// RoleWholesaler indicates a wholesale store owner.
	RoleWholesaler Role = "wholesaler"
	// RoleAdmin indicates a marketplace administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleRetailer, RoleWholesaler, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
