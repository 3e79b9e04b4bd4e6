package domain

// Role values as stored in the users collection. A document without a role
// field is treated as a plain user.
const (
	RoleUser        = "user"
	RoleAdmin       = "admin"
	RoleDeliveryMan = "dman"
)

// User models a registered customer, admin, or delivery man. The email is the
// unique key; at most one document exists per email (registration upserts).
type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// EffectiveRole returns the stored role, defaulting to RoleUser when absent.
func (u *User) EffectiveRole() string {
	if u.Role == "" {
		return RoleUser
	}
	return u.Role
}
