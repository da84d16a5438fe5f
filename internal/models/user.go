package models

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleAstronaut Role = "astronaut"
	RoleStaff     Role = "staff"
)

// User is also the persisted session payload:
// {"id","name","email","role","avatar"}.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}
