package auth

import "skyward-va/horizon/internal/constants"

// UserClaims is the identity attached to every authenticated request.
// The core services trust these claims without re-verifying
// credentials.
type UserClaims interface {
	PilotID() string
	Role() string
	Source() string
	IsAdmin() bool
	IsStaff() bool
}

type JWTClaims struct {
	PilotUUID string
	RoleValue constants.Role
}

func (c *JWTClaims) PilotID() string { return c.PilotUUID }
func (c *JWTClaims) Role() string {
	return string(c.RoleValue)
}
func (c *JWTClaims) Source() string { return "JWT" }
func (c *JWTClaims) IsAdmin() bool  { return c.RoleValue == constants.RoleAdmin }
func (c *JWTClaims) IsStaff() bool {
	return c.RoleValue == constants.RoleStaff || c.RoleValue == constants.RoleAdmin
}
