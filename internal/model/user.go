package model

// Role classifies household members.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleKid    Role = "kid"
)

// User is a household member. Roles gate nothing by themselves; see the
// policy package for the capability checks built on top of them.
type User struct {
	ID     string
	Name   string
	Role   Role
	Avatar string
}
