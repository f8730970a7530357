package common

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// Context keys
	ContextIdentityKey = "currentIdentity" // Key to store the caller identity in context
	ContextRolesKey    = "currentRoles"    // Key to store platform roles in context
)

// Identity is the caller as vouched for by the presentation adapter.
// ID is the platform user id; Name is the display identity used for memberships.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Valid reports whether both parts of the identity are present.
func (i Identity) Valid() bool {
	return strings.TrimSpace(i.ID) != "" && strings.TrimSpace(i.Name) != ""
}

// GetIdentityFromContext retrieves the authenticated identity from the Gin context.
func GetIdentityFromContext(c *gin.Context) (Identity, error) {
	val, exists := c.Get(ContextIdentityKey)
	if !exists {
		return Identity{}, errors.New("identity not found in context")
	}
	identity, ok := val.(Identity)
	if !ok {
		return Identity{}, errors.New("identity in context has unexpected type")
	}
	return identity, nil
}

// GetRolesFromContext retrieves the platform roles set by the auth middleware.
func GetRolesFromContext(c *gin.Context) []string {
	val, exists := c.Get(ContextRolesKey)
	if !exists {
		return nil
	}
	roles, _ := val.([]string)
	return roles
}
