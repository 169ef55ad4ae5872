package handlers

import (
	"fmt"
	"strings"

	"credit-backoffice/internal/models"
	"credit-backoffice/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}

	return userID, nil
}

// actorFromContext describes who is calling, for audit entries.
// Unauthenticated callers get a nil user ID.
func actorFromContext(c echo.Context) models.Actor {
	userID, _ := getUserIDFromContext(c)

	return models.Actor{
		UserID:    userID,
		IPAddress: getClientIP(c),
		UserAgent: c.Request().UserAgent(),
	}
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// getPagination reads offset and limit, clamped the way the services clamp them
func getPagination(c echo.Context) (int, int) {
	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", services.DefaultPageLimit)

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = services.DefaultPageLimit
	}
	if limit > services.MaxPageLimit {
		limit = services.MaxPageLimit
	}

	return offset, limit
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}
