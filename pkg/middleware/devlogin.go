package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const uidCookie = "GARDENER_UID"

// DevLogin resolves the acting gardener from a cookie, minting a default
// identity when none exists. Good enough for a single-household deployment.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(uidCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					c.SetCookie(&http.Cookie{Name: uidCookie, Value: q, Path: "/"})
					uid = q
				} else {
					uid = "gardener-dev"
					c.SetCookie(&http.Cookie{Name: uidCookie, Value: uid, Path: "/"})
				}
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
