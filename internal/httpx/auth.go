package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MikeMC777/ordenes-webhook/internal/order"
)

const viewerKey = "viewer"

// ViewerAuth optionally authenticates the read surface. Requests without an
// Authorization header pass through anonymous; a present-but-invalid bearer
// token is a 401. Token issuance lives outside this service, any HS256
// token signed with the shared secret names a viewer.
func ViewerAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.Next()
			return
		}

		subject, err := verifyBearer(auth, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, order.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Invalid bearer token",
			})
			return
		}

		c.Set(viewerKey, subject)
		c.Next()
	}
}

func verifyBearer(header string, secret []byte) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization format")
	}

	token, err := jwt.ParseWithClaims(parts[1], &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Subject == "" {
		return "", errors.New("missing subject claim")
	}
	return claims.Subject, nil
}

// Viewer returns the authenticated viewer set by ViewerAuth, if any.
func Viewer(c *gin.Context) (string, bool) {
	v, ok := c.Get(viewerKey)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
