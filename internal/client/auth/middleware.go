package auth

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Context keys set by the auth middleware for downstream handlers.
const (
	UserIDKey    = "userID"
	UserEmailKey = "userEmail"
	UserRoleKey  = "userRole"
)

// IdentityClaims is the token payload issued by the booking site's identity
// provider. Role distinguishes back-office agents from customers.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	Name          string `json:"name"`
	Phone         string `json:"phone,omitempty"`
	Role          string `json:"role"`
	PreferredLang string `json:"preferredLang,omitempty"`
}

// AuthClient validates bearer tokens against the identity provider's JWKS.
type AuthClient struct {
	JWKSURL  string
	Issuer   string
	Audience string
	jwks     *keyfunc.JWKS
}

func NewAuthClient() *AuthClient {
	client := &AuthClient{
		JWKSURL:  os.Getenv("AUTH_JWKS_ENDPOINT"),
		Issuer:   os.Getenv("AUTH_ISSUER"),
		Audience: os.Getenv("AUTH_AUDIENCE"),
	}

	if err := client.initializeJWKS(); err != nil {
		logger.Log.Error("Failed to initialize JWKS", zap.Error(err))
	}

	return client
}

func (ac *AuthClient) initializeJWKS() error {
	if ac.JWKSURL == "" {
		return fmt.Errorf("AUTH_JWKS_ENDPOINT not set")
	}

	jwks, err := keyfunc.Get(ac.JWKSURL, keyfunc.Options{
		RefreshInterval:  time.Hour,
		RefreshRateLimit: time.Minute,
		RefreshTimeout:   time.Second * 10,
		RefreshErrorHandler: func(err error) {
			logger.Log.Error("JWKS refresh error", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create JWKS: %w", err)
	}

	ac.jwks = jwks

	logger.Log.Info("Identity provider JWKS initialized",
		zap.String("jwks_url", ac.JWKSURL),
		zap.String("issuer", ac.Issuer),
	)

	return nil
}

// EnsureValidToken is a middleware that requires a valid bearer token and
// stores the caller's identity on the request context.
func (ac *AuthClient) EnsureValidToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": ErrMissingAuth.Error()})
			c.Abort()
			return
		}

		claims, err := ac.validateToken(authHeader)
		if err != nil {
			logger.Log.Debug("Token validation failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
			c.JSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		role := claims.Role
		if role == "" {
			role = constants.CustomerRole
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, role)
		c.Next()
	}
}

// OptionalToken resolves the caller's identity when a bearer token is present
// but lets anonymous requests through. Guest checkout submits bookings without
// an account.
func (ac *AuthClient) OptionalToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		claims, err := ac.validateToken(authHeader)
		if err != nil {
			logger.Log.Debug("Ignoring invalid token on optional route",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
			c.Next()
			return
		}

		role := claims.Role
		if role == "" {
			role = constants.CustomerRole
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, role)
		c.Next()
	}
}

// RequireRoles is a middleware that checks the authenticated caller's role
// against the allowed set.
func (ac *AuthClient) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(UserRoleKey)

		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		logger.Log.Debug("Insufficient role for route",
			zap.String("user_role", userRole),
			zap.Strings("required", roles),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		c.Abort()
	}
}

// ValidateToken checks a raw token and returns its claims. Websocket dials
// cannot carry an Authorization header from the browser, so the inbox feed
// validates its query-param token through this.
func (ac *AuthClient) ValidateToken(tokenString string) (*IdentityClaims, error) {
	return ac.validateToken(tokenString)
}

func (ac *AuthClient) validateToken(tokenString string) (*IdentityClaims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	if ac.jwks == nil {
		return nil, fmt.Errorf("JWKS not initialized")
	}

	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, ac.jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	claims, ok := token.Claims.(*IdentityClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, fmt.Errorf("token is expired")
	}

	if ac.Issuer != "" && claims.Issuer != ac.Issuer {
		logger.Log.Debug("Issuer mismatch",
			zap.String("expected", ac.Issuer),
			zap.String("actual", claims.Issuer),
		)
		return nil, fmt.Errorf("invalid issuer")
	}

	if ac.Audience != "" {
		audienceValid := false
		for _, aud := range claims.Audience {
			if aud == ac.Audience {
				audienceValid = true
				break
			}
		}
		if !audienceValid {
			return nil, fmt.Errorf("invalid audience")
		}
	}

	return claims, nil
}
