package middleware

import (
	"errors"
	"net/http"
	"strings"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxUserID = "auth.user_id"
	ctxRole   = "auth.role"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
)

// Claims are issued by the identity provider that fronts the back-office.
// UserID falls back to the subject claim.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Auth verifies an HS256 bearer token and stores the user id and role on the
// gin context. With enabled=false every request passes anonymously.
func Auth(secret string, enabled bool) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	return func(c *gin.Context) {
		if !enabled || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		h := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(h, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := parseToken(parser, key, strings.TrimSpace(raw))
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

func parseToken(parser *jwt.Parser, key []byte, raw string) (*Claims, error) {
	if len(key) == 0 {
		return nil, errors.New("jwt secret not configured")
	}
	tok, err := parser.ParseWithClaims(raw, &Claims{}, func(*jwt.Token) (any, error) {
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

// RequireAdmin rejects authenticated users without the ADMIN role. Anonymous
// requests (auth disabled) pass.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, authenticated := c.Get(ctxRole)
		if authenticated && !strings.EqualFold(role.(string), string(entities.UserRoleAdmin)) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
