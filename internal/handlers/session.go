package handlers

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"uk.co.dudmesh.apiary/internal/boot"
	"uk.co.dudmesh.apiary/internal/model"
)

const sessionKey = "session"

// Session decodes the bearer token into a model.Session and stashes it on the
// request context. An absent or invalid token leaves no session behind; the
// handler decides what that means.
func Session(config *boot.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return next(c)
			}

			token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(config.Auth.JWTSecret), nil
			})
			if err != nil || !token.Valid {
				return next(c)
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return next(c)
			}

			session := &model.Session{Remote: c.RealIP()}
			session.UID, _ = claims["uid"].(string)
			session.Provider, _ = claims["provider"].(string)
			session.Admin, _ = claims["admin"].(bool)
			c.Set(sessionKey, session)

			return next(c)
		}
	}
}

func sessionFrom(c echo.Context) *model.Session {
	if session, ok := c.Get(sessionKey).(*model.Session); ok {
		return session
	}
	return nil
}
