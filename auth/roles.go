package auth

import "fmt"

// Role is the closed set of account roles issued by the backend.
type Role string

const (
	RoleAdmin                Role = "admin"
	RoleStaff                Role = "staff"
	RoleCustomer             Role = "customer"
	RoleDriver               Role = "driver"
	RoleDispatcher           Role = "dispatcher"
	RolePublicServiceManager Role = "public_service_manager"
)

// AllRoles lists every known role, in table order.
var AllRoles = []Role{
	RoleAdmin,
	RoleStaff,
	RoleCustomer,
	RoleDriver,
	RoleDispatcher,
	RolePublicServiceManager,
}

// ParseRole validates a role string coming off a token or a user record.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleStaff, RoleCustomer, RoleDriver, RoleDispatcher, RolePublicServiceManager:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
