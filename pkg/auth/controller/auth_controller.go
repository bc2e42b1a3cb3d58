package controller

import "github.com/labstack/echo/v4"

// AuthController exposes the dev identity endpoints: DevLogin mints the
// gardener cookie, WhoAmI echoes the resolved uid back.
type AuthController interface {
	DevLogin(c echo.Context) error
	WhoAmI(c echo.Context) error
}
