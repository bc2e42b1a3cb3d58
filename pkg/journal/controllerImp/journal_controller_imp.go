package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	repo "sprout/pkg/journal/repository"
)

type JournalCtrl struct{ repo repo.JournalRepository }

func New(repo repo.JournalRepository) *JournalCtrl { return &JournalCtrl{repo} }

type obsReq struct {
	Date       string   `json:"date"`
	Note       string   `json:"note"`
	RainfallMM *float64 `json:"rainfall_mm"`
	PestScale  *int     `json:"pest_scale"`
	PhotoURL   string   `json:"photo_url"`
}

func (h *JournalCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	pid := c.Param("id")
	var req obsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d := time.Now()
	if req.Date != "" {
		if dd, err := time.Parse("2006-01-02", req.Date); err == nil {
			d = dd
		}
	}
	o := &entities.Observation{UserID: uid, PlantID: pid, Date: d, Note: req.Note, RainfallMM: req.RainfallMM, PestScale: req.PestScale, PhotoURL: req.PhotoURL}
	if err := h.repo.Create(o); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *JournalCtrl) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	days := 60
	if q := c.QueryParam("days"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			days = n
		}
	}
	out, err := h.repo.Recent(uid, c.Param("id"), days)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
