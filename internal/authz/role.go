package authz

type Role string

const (
	RolePatient    Role = "patient"
	RoleDoctor     Role = "doctor"
	RolePharmacist Role = "pharmacist"
	RoleAdmin      Role = "admin"
)

// ParseRole maps a stored role string onto the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RolePatient, RoleDoctor, RolePharmacist, RoleAdmin:
		return Role(s), true
	}
	return "", false
}
