package models

// Role is the access level assigned to a user by the library API.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleCommon Role = "COMUM"
)

// RoleLabels maps API role values to display labels.
var RoleLabels = map[Role]string{
	RoleAdmin:  "Admin",
	RoleCommon: "Comum",
}

// User is the authenticated identity as returned by the library API.
// Wire format follows the API's Portuguese field names.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Age   int    `json:"idade"`
}

// IsComplete reports whether the record carries every field the session
// layer requires. A cached record missing any of them is treated as corrupt.
func (u User) IsComplete() bool {
	return u.Name != "" && u.Email != "" && u.Role != ""
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
