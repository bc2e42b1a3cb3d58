package controller

import "github.com/labstack/echo/v4"

type GardenController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	Patch(c echo.Context) error
	Delete(c echo.Context) error
	Replant(c echo.Context) error
	ToggleTask(c echo.Context) error
	Sweep(c echo.Context) error
}
