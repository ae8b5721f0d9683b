package entity

// RoleSuperAdmin may act on any wallet and use the administrative paths
const RoleSuperAdmin = "super_admin"

// Actor is the authenticated caller on whose behalf an operation runs
type Actor struct {
	ID   string
	Role string
}

// IsPrivileged reports whether the actor may bypass ownership checks
func (a Actor) IsPrivileged() bool {
	return a.Role == RoleSuperAdmin
}

// CanAccess reports whether the actor may read or move money in the wallet of userID
func (a Actor) CanAccess(userID string) bool {
	return a.IsPrivileged() || (a.ID != "" && a.ID == userID)
}
