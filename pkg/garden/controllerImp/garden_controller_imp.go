package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	"sprout/pkg/garden/service"
	"sprout/pkg/garden/serviceImp"
)

type GardenCtrl struct {
	svc            service.GardenService
	defaultClimate entities.Climate
}

func New(svc service.GardenService, defaultClimate entities.Climate) *GardenCtrl {
	return &GardenCtrl{svc: svc, defaultClimate: defaultClimate}
}

type createReq struct {
	Name        string `json:"name"`
	DatePlanted string `json:"datePlanted"`
	GrowthForm  string `json:"growthForm"`
	Climate     string `json:"climate"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
}

func (h *GardenCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name required"})
	}
	planted := time.Now()
	if req.DatePlanted != "" {
		if t, err := entities.ParseFlexTime(req.DatePlanted); err == nil {
			planted = t
		}
	}
	form := entities.GrowthForm(req.GrowthForm)
	if form != entities.GrowthFormSeedling {
		form = entities.GrowthFormSeed
	}
	climate := entities.Climate(req.Climate)
	if climate == "" {
		climate = h.defaultClimate
	}
	p, err := h.svc.Add(uid, service.NewPlant{
		Name:        req.Name,
		DatePlanted: planted,
		GrowthForm:  form,
		Climate:     climate,
		Location:    req.Location,
		Notes:       req.Notes,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *GardenCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	plants, err := h.svc.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if plants == nil {
		plants = []entities.GardenPlant{}
	}
	return c.JSON(http.StatusOK, plants)
}

func (h *GardenCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	p, err := h.svc.Get(uid, c.Param("id"))
	if err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type patchReq struct {
	DatePlanted *string `json:"datePlanted"`
	Location    *string `json:"location"`
	Notes       *string `json:"notes"`
}

func (h *GardenCtrl) Patch(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req patchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	patch := service.PlantPatch{Location: req.Location, Notes: req.Notes}
	if req.DatePlanted != nil {
		t, err := entities.ParseFlexTime(*req.DatePlanted)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad datePlanted"})
		}
		patch.DatePlanted = &t
	}
	p, err := h.svc.Update(uid, c.Param("id"), patch)
	if err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *GardenCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.svc.Remove(uid, c.Param("id")); err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *GardenCtrl) Replant(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		DatePlanted string `json:"datePlanted"`
	}
	_ = c.Bind(&body)
	planted := time.Now()
	if body.DatePlanted != "" {
		if t, err := entities.ParseFlexTime(body.DatePlanted); err == nil {
			planted = t
		}
	}
	p, err := h.svc.Replant(uid, c.Param("id"), planted)
	if err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *GardenCtrl) ToggleTask(c echo.Context) error {
	uid := c.Get("uid").(string)
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad task index"})
	}
	p, err := h.svc.ToggleScheduleTask(uid, c.Param("id"), idx)
	if err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *GardenCtrl) Sweep(c echo.Context) error {
	uid := c.Get("uid").(string)
	n, err := h.svc.SweepHarvested(uid, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int{"harvested": n})
}

func notFoundOr500(c echo.Context, err error) error {
	if errors.Is(err, serviceImp.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
