package domain

// UserRole controls what a user can see and dispatch.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleDispatcher UserRole = "dispatcher"
	RoleTechnician UserRole = "technician"
)

// User is a member of the field-service team. Jobs reference technicians by
// UserID with a denormalized name snapshot.
type User struct {
	UserID string   `json:"userID"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Phone  string   `json:"phone"`
	Avatar string   `json:"avatar,omitempty"`
}
