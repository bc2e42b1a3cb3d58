package router

import (
	"github.com/labstack/echo/v4"

	"sprout/pkg/middleware"
)

func New(
	e *echo.Echo,
	gardenCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
		Replant(echo.Context) error
		ToggleTask(echo.Context) error
		Sweep(echo.Context) error
	},
	taskCtrl interface {
		Create(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
		Toggle(echo.Context) error
	},
	viewCtrl interface {
		Tasks(echo.Context) error
		Suggestions(echo.Context) error
		GetSourcePrefs(echo.Context) error
		PutSourcePrefs(echo.Context) error
		GetHideCompleted(echo.Context) error
		PutHideCompleted(echo.Context) error
	},
	projectCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Delete(echo.Context) error
	},
	weatherGet func(echo.Context) error,
	guideCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	journalCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/plants", gardenCtrl.Create)
	api.GET("/plants", gardenCtrl.List)
	api.POST("/plants/sweep", gardenCtrl.Sweep)
	api.GET("/plants/:id", gardenCtrl.Get)
	api.PATCH("/plants/:id", gardenCtrl.Patch)
	api.DELETE("/plants/:id", gardenCtrl.Delete)
	api.POST("/plants/:id/replant", gardenCtrl.Replant)
	api.PATCH("/plants/:id/schedule/:index", gardenCtrl.ToggleTask)

	api.GET("/tasks", viewCtrl.Tasks)
	api.GET("/tasks/suggestions", viewCtrl.Suggestions)
	api.POST("/tasks", taskCtrl.Create)
	api.POST("/tasks/toggle", taskCtrl.Toggle)
	api.PATCH("/tasks/:id", taskCtrl.Patch)
	api.DELETE("/tasks/:id", taskCtrl.Delete)

	api.POST("/projects", projectCtrl.Create)
	api.GET("/projects", projectCtrl.List)
	api.DELETE("/projects/:id", projectCtrl.Delete)

	api.GET("/prefs/sources", viewCtrl.GetSourcePrefs)
	api.PUT("/prefs/sources", viewCtrl.PutSourcePrefs)
	api.GET("/prefs/suggestions", viewCtrl.GetHideCompleted)
	api.PUT("/prefs/suggestions", viewCtrl.PutHideCompleted)

	api.GET("/weather", weatherGet)

	api.POST("/guides/ingest", guideCtrl.IngestText)
	api.POST("/guides/ingest/url", guideCtrl.IngestURL)
	api.GET("/guides/search", guideCtrl.Search)

	api.POST("/plants/:id/observations", journalCtrl.Create)
	api.GET("/plants/:id/observations", journalCtrl.List)

	return e
}
