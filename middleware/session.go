package middleware

import (
	"errors"
	"net/http"
	"time"

	"regenmed/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CookieName is the browser-held session cookie.
const CookieName = "rm_session"

// SessionIDKey is the gin context key the handlers read the session id from.
const SessionIDKey = "sessionID"

const cookieMaxAge = 30 * 24 * time.Hour

// SessionConfig controls cookie signing and attributes. Production gets a
// secure Lax cookie; development runs the front-end on another origin, so
// SameSite=None.
type SessionConfig struct {
	Secret     string
	Production bool
}

// SessionMiddleware lazily mints an opaque session id, carries it in a
// signed HTTP-only cookie, and exposes it on the request context. Token
// contents never reach the browser — only the identifier does.
func SessionMiddleware(cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := ""
		if raw, err := c.Cookie(CookieName); err == nil {
			sid, err = verifySessionCookie(raw, cfg.Secret)
			if err != nil {
				utils.GetLogger().Debug("Rejecting session cookie", zap.Error(err))
				sid = ""
			}
		}

		if sid == "" {
			sid = uuid.New().String()
			signed, err := signSessionCookie(sid, cfg.Secret)
			if err != nil {
				utils.GetLogger().Error("Failed to sign session cookie", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
				return
			}
			if cfg.Production {
				c.SetSameSite(http.SameSiteLaxMode)
			} else {
				c.SetSameSite(http.SameSiteNoneMode)
			}
			c.SetCookie(CookieName, signed, int(cookieMaxAge.Seconds()), "/", "", cfg.Production, true)
		}

		c.Set(SessionIDKey, sid)
		c.Next()
	}
}

// SessionID returns the session identifier for the current request.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

func signSessionCookie(sid, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(cookieMaxAge).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func verifySessionCookie(raw, secret string) (string, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session cookie")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("session cookie missing sid claim")
	}
	return sid, nil
}
