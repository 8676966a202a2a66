package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetActor builds the acting identity from the authenticated claims.
// Unauthenticated requests yield the zero Actor, which downstream
// resolves to the System sentinel.
func GetActor(c *gin.Context) entity.Actor {
	var actor entity.Actor
	if name, exists := c.Get("user_name"); exists {
		actor.Name, _ = name.(string)
	}
	if role, exists := c.Get("user_role"); exists {
		actor.Role, _ = role.(string)
	}
	return actor
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
