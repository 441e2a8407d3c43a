package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/echo-xaudit/logging"
	"github.com/dev-mohitbeniwal/echo-xaudit/model"
)

// SessionClaims are the claims of a session token issued by the admin portal.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID  string   `json:"user_id"`
	LoginID string   `json:"login_id"`
	Groups  []string `json:"groups"`
}

// Session attaches the caller's session to the request context when the
// request carries a valid bearer token. Requests without one pass through
// unchanged; the audit service rejects them.
func Session(secret []byte, adminGroup string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimSpace(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := parseToken(strings.TrimPrefix(tokenString, "Bearer "), secret)
		if err != nil {
			logger.Warn("Ignoring invalid session token", zap.Error(err), zap.String("path", c.Request.URL.Path))
			c.Next()
			return
		}

		session := &model.UserSession{
			UserID:    claims.UserID,
			LoginID:   claims.LoginID,
			Groups:    claims.Groups,
			UserAdmin: isUserInGroups(claims, []string{adminGroup}),
		}
		if session.UserID == "" {
			session.UserID = claims.Subject
		}
		if session.LoginID == "" {
			session.LoginID = claims.Subject
		}

		c.Request = c.Request.WithContext(model.WithSession(c.Request.Context(), session))
		c.Set("requestingUser", session.LoginID)
		logger.Debug("Session attached", zap.String("loginID", session.LoginID), zap.Bool("admin", session.UserAdmin))

		c.Next()
	}
}

func parseToken(tokenString string, secret []byte) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token or wrong claims type")
}

func isUserInGroups(claims *SessionClaims, requiredGroups []string) bool {
	for _, group := range requiredGroups {
		for _, userGroup := range claims.Groups {
			if userGroup == group {
				return true
			}
		}
	}
	return false
}
