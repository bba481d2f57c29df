package roles

// Role is a user's stored role attribute. The set is closed today but the
// store may grow new values; anything unrecognized resolves to RoleUser.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleDoctor     Role = "doctor"
	RoleUser       Role = "user"
)

// ParseRole maps a stored role string onto the closed enumeration.
// Unknown or empty values fall back to the least-privileged role.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleDoctor, RoleUser:
		return Role(s)
	default:
		return RoleUser
	}
}

// HasMedicalAccess reports whether the role may read patient data.
func (r Role) HasMedicalAccess() bool {
	return r == RoleAdmin || r == RoleSuperAdmin || r == RoleDoctor
}

// DisplayLabel returns the staff-facing label for the role.
func (r Role) DisplayLabel() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Administrador"
	case RoleAdmin:
		return "Administrador"
	case RoleDoctor:
		return "Médico"
	default:
		return "Recepção"
	}
}
