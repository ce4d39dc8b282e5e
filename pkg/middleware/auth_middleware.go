package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

//go:generate mockgen -source=auth_middleware.go -destination=../../internal/status-monitor/mocks/api/middleware/auth_middleware_mock.go -package=mockmiddleware

const ScopesHeader = "X-User-Scopes"

var errInvalidToken = errors.New("invalid access token")

type AuthMiddleware interface {
	CheckUserPermission(requiredScope string) gin.HandlerFunc
}

type authMiddleware struct {
	enabled   bool
	jwtSecret string
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":     message,
		"timestamp": time.Now().UTC(),
	})
}

func (a *authMiddleware) verifyToken(tokenString string) ([]string, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(a.jwtSecret), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, errInvalidToken
	}
	scopesList, ok := claims["scopes"].([]interface{})
	if !ok {
		return nil, nil
	}
	scopes := make([]string, 0, len(scopesList))
	for _, scope := range scopesList {
		if s, isString := scope.(string); isString {
			scopes = append(scopes, s)
		}
	}
	return scopes, nil
}

// scopes returns the caller's scopes from the bearer token when a JWT secret is
// configured, otherwise from the comma separated header set by the gateway.
func (a *authMiddleware) scopes(c *gin.Context) ([]string, string) {
	if a.jwtSecret != "" {
		header := strings.Fields(c.GetHeader("Authorization"))
		if len(header) != 2 || header[0] != "Bearer" {
			return nil, "Authorization header is invalid"
		}
		scopes, err := a.verifyToken(header[1])
		if err != nil {
			return nil, "Invalid access token"
		}
		return scopes, ""
	}
	scopesHeader := c.Request.Header.Get(ScopesHeader)
	if len(scopesHeader) == 0 {
		return nil, "X-User-Scopes header is empty"
	}
	scopes := strings.Split(scopesHeader, ",")
	for i := range scopes {
		scopes[i] = strings.TrimSpace(scopes[i])
	}
	return scopes, ""
}

// CheckUserPermission requires requiredScope among the caller's scopes. It passes
// every request through when disabled.
func (a *authMiddleware) CheckUserPermission(requiredScope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.enabled {
			c.Next()
			return
		}
		scopes, problem := a.scopes(c)
		if problem != "" {
			abortWithError(c, http.StatusUnauthorized, problem)
			return
		}
		if !slices.Contains(scopes, requiredScope) {
			abortWithError(c, http.StatusForbidden, "Permission denied")
			return
		}
		c.Next()
	}
}

// NewAuthMiddleware checks scopes from the gateway header, or from an HS256
// bearer token when jwtSecret is set.
func NewAuthMiddleware(enabled bool, jwtSecret string) AuthMiddleware {
	return &authMiddleware{
		enabled:   enabled,
		jwtSecret: jwtSecret,
	}
}
