package models

// Role is the kind of account using the app
type Role string

const (
	RoleOwner    Role = "owner"
	RoleCustomer Role = "customer"
)

// Roles lists every role in display order
var Roles = []Role{RoleOwner, RoleCustomer}

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleCustomer:
		return true
	default:
		return false
	}
}

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   Role   `json:"type"`
	Avatar string `json:"avatar,omitempty"`
}
