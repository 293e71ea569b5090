package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"transport-admin/auth"
)

type contextKey string

const principalContextKey contextKey = "principal"

// Principal is the authenticated caller extracted from the bearer token.
type Principal struct {
	UserID string
	Role   auth.Role
}

// WithPrincipal stores the principal in context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext retrieves the principal, if the request carried a
// valid token.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	return p, ok
}

// AuthMiddleware parses the Authorization bearer JWT issued by the backend
// and puts the caller's identity into the request context. Requests with a
// missing or invalid token pass through anonymous; denial is the route
// guard's job.
type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

func (am *AuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := am.parse(r.Header.Get("Authorization"))
		if err == nil {
			r = r.WithContext(WithPrincipal(r.Context(), p))
		}
		next.ServeHTTP(w, r)
	})
}

func (am *AuthMiddleware) parse(header string) (*Principal, error) {
	if header == "" {
		return nil, errMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errMalformedHeader
	}

	type claims struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	token, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errSigningMethod
		}
		return []byte(am.secret), nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errInvalidToken
		}
		return nil, err
	}

	c, _ := token.Claims.(*claims)
	if c == nil || c.UserID == "" {
		return nil, errInvalidClaims
	}
	role, err := auth.ParseRole(c.Role)
	if err != nil {
		return nil, err
	}
	return &Principal{UserID: c.UserID, Role: role}, nil
}
