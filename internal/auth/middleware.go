package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ActorKey is the gin context key carrying the audit actor for the request.
const ActorKey = "actor"

// Middleware attaches request identity from JWTs.
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new auth middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates the bearer token and sets the actor context.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.claimsFrom(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Set(ActorKey, claims.Actor())
		c.Set("auth_claims", claims)
		c.Next()
	}
}

// OptionalAuth sets the actor context when a valid token is present and
// falls back to "anonymous" otherwise. Mutating endpoints still get an
// attribution value either way.
func (m *Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := m.claimsFrom(c); err == nil {
			c.Set(ActorKey, claims.Actor())
			c.Set("auth_claims", claims)
		} else {
			c.Set(ActorKey, "anonymous")
		}
		c.Next()
	}
}

func (m *Middleware) claimsFrom(c *gin.Context) (*Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errMissingHeader
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, errBadHeader
	}
	return m.service.ValidateJWT(tokenString)
}

// Actor returns the audit actor for the request, defaulting to "anonymous".
func Actor(c *gin.Context) string {
	if actor, ok := c.Get(ActorKey); ok {
		if s, ok := actor.(string); ok && s != "" {
			return s
		}
	}
	return "anonymous"
}
