package controllerImp

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"sprout/pkg/weather"
)

type WeatherCtrl struct{ client weather.Client }

func New(client weather.Client) *WeatherCtrl { return &WeatherCtrl{client} }

// Get returns current conditions, or a null weather payload when the
// collaborator is unavailable; the caller renders an empty state rather
// than failing.
func (h *WeatherCtrl) Get(c echo.Context) error {
	reading, err := h.client.Current()
	if err != nil {
		log.Printf("[weather] fetch failed: %v", err)
		return c.JSON(http.StatusOK, map[string]any{"weather": nil})
	}
	return c.JSON(http.StatusOK, map[string]any{"weather": reading})
}
