package controller

import "github.com/labstack/echo/v4"

type ViewController interface {
	Tasks(c echo.Context) error
	Suggestions(c echo.Context) error
	GetSourcePrefs(c echo.Context) error
	PutSourcePrefs(c echo.Context) error
	GetHideCompleted(c echo.Context) error
	PutHideCompleted(c echo.Context) error
}
