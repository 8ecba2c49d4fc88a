package context

import (
	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the key for storing the authenticated user's id in context.
	KeyUserID ContextKey = "user_id"

	// KeyUsername is the key for storing the authenticated user's name in context.
	KeyUsername ContextKey = "username"
)

// GetUserID extracts the authenticated user's id from echo.Context.
// The second return value reports whether a user is attached.
func GetUserID(c echo.Context) (int64, bool) {
	val := c.Get(string(KeyUserID))
	if id, ok := val.(int64); ok {
		return id, true
	}

	return 0, false
}

// SetAuthenticatedUser attaches the authenticated user's identity to echo.Context.
func SetAuthenticatedUser(c echo.Context, userID int64, username string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyUsername), username)
}

// GetUsername extracts the authenticated user's name from echo.Context.
func GetUsername(c echo.Context) string {
	if name, ok := c.Get(string(KeyUsername)).(string); ok {
		return name
	}

	return ""
}
