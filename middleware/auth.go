package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// LoginPath is where guarded routes send unauthenticated requests.
const LoginPath = "/auth/login"

// AuthRequired guards a route: a missing or invalid token redirects to the
// login collaborator instead of answering 401, matching the app's
// redirect-based error handling.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, username, err := parseToken(c, jwtSecret)
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("username", username)
		c.Next()
	}
}

// AuthOptional attaches the viewer's identity when a valid token is
// present and stays silent otherwise. Used by pages that render
// viewer-dependent context (the profile's "following" flag) but remain
// public.
func AuthOptional(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, username, err := parseToken(c, jwtSecret); err == nil {
			c.Set("user_id", userID)
			c.Set("username", username)
		}
		c.Next()
	}
}

func parseToken(c *gin.Context, jwtSecret string) (userID, username string, err error) {
	raw := ""
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		raw = strings.TrimPrefix(header, "Bearer ")
	} else if cookie, cookieErr := c.Cookie("session"); cookieErr == nil {
		raw = cookie
	}
	if raw == "" {
		return "", "", fmt.Errorf("no token")
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid claims")
	}
	userID, _ = claims["user_id"].(string)
	username, _ = claims["username"].(string)
	if userID == "" {
		return "", "", fmt.Errorf("missing user_id claim")
	}

	return userID, username, nil
}
