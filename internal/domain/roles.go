package domain

type Role string

const (
	// User can manage only their own account and profile.
	RoleUser Role = "user"
	// Admin can additionally list accounts and activate/deactivate them.
	RoleAdmin Role = "admin"
)

func IsValidRole(r string) bool {
	return r == string(RoleUser) || r == string(RoleAdmin)
}
