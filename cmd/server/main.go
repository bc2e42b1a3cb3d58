package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"sprout/config"
	"sprout/database"
	"sprout/entities"
	"sprout/router"

	// Auth
	authCtrlImp "sprout/pkg/auth/controllerImp"

	// Store (per-user keyed collections)
	storeRepoImp "sprout/pkg/store/repositoryImp"

	// Timelines + schedule derivation
	"sprout/pkg/schedule"
	"sprout/pkg/timeline"

	// Garden
	gardenCtrlImp "sprout/pkg/garden/controllerImp"
	gardenRepoImp "sprout/pkg/garden/repositoryImp"
	gardenSvcImp "sprout/pkg/garden/serviceImp"

	// Tasks
	taskCtrlImp "sprout/pkg/tasks/controllerImp"
	taskRepoImp "sprout/pkg/tasks/repositoryImp"
	taskSvcImp "sprout/pkg/tasks/serviceImp"

	// Projects
	projCtrlImp "sprout/pkg/project/controllerImp"
	projRepoImp "sprout/pkg/project/repositoryImp"
	projSvcImp "sprout/pkg/project/serviceImp"

	// Views + prefs
	viewCtrlImp "sprout/pkg/view/controllerImp"
	prefsRepoImp "sprout/pkg/view/repositoryImp"

	// Weather
	"sprout/pkg/weather"
	weatherCtrlImp "sprout/pkg/weather/controllerImp"

	// Guides
	guideCtrlImp "sprout/pkg/guide/controllerImp"
	guideRepoImp "sprout/pkg/guide/repositoryImp"
	guideSvcImp "sprout/pkg/guide/serviceImp"

	// Journal
	journalCtrlImp "sprout/pkg/journal/controllerImp"
	journalRepoImp "sprout/pkg/journal/repositoryImp"

	// Health + notifications
	healthCtrlImp "sprout/pkg/health/controllerImp"
	"sprout/pkg/notify"
)

func main() {
	// 1) Config
	cfg := config.Load()
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = loc
	} else {
		log.Printf("[cfg] timezone %q: %v", cfg.Timezone, err)
	}

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Plant timelines (built-ins plus optional CSV/XLSX overrides)
	reg := timeline.NewRegistry()
	if cfg.TimelineCSV != "" || cfg.TimelineXLSX != "" {
		if err := timeline.LoadFromFiles(reg, cfg.TimelineCSV, cfg.TimelineXLSX); err != nil {
			log.Printf("timeline overrides warn: %v", err)
		}
	}
	gen := schedule.NewGenerator(reg)

	// 4) Store-backed repos
	store := storeRepoImp.New(db)
	gRepo := gardenRepoImp.New(store)
	tRepo := taskRepoImp.New(store)
	pRepo := projRepoImp.New(store)
	prefs := prefsRepoImp.New(store)

	// 5) Services
	notifier := notify.NewLog()
	gSvc := gardenSvcImp.NewGardenService(gRepo, gen, notifier)
	tSvc := taskSvcImp.NewTaskService(tRepo, gRepo)
	pSvc := projSvcImp.NewProjectService(pRepo, tRepo)

	// 6) Weather (mock fallback when no endpoint is configured)
	var wx weather.Client
	if cfg.WeatherEndpoint != "" {
		wx = weather.NewHTTP(cfg.WeatherEndpoint, cfg.WeatherLat, cfg.WeatherLon)
	} else {
		wx = weather.NewMock()
	}

	// 7) Guides + journal
	guideRepo := guideRepoImp.New(db)
	guideSvc := guideSvcImp.New(guideRepo)
	guideCtrl := guideCtrlImp.New(guideSvc, cfg.GuideAllowedDomains, cfg.GuideMaxBytes)
	jRepo := journalRepoImp.New(db)
	jCtrl := journalCtrlImp.New(jRepo)

	// 8) Controllers
	gCtrl := gardenCtrlImp.New(gSvc, entities.Climate(cfg.DefaultClimate))
	tCtrl := taskCtrlImp.New(tSvc)
	vCtrl := viewCtrlImp.New(tSvc, prefs)
	pCtrl := projCtrlImp.New(pSvc)
	wCtrl := weatherCtrlImp.New(wx)
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db, reg)

	// 9) Echo + router
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	r := router.New(
		e,
		gCtrl,
		tCtrl,
		vCtrl,
		pCtrl,
		wCtrl.Get,
		guideCtrl,
		jCtrl,
		authCtrl,
		hCtrl,
	)

	// 10) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
