package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	"sprout/pkg/project/service"
	"sprout/pkg/project/serviceImp"
)

type ProjectCtrl struct{ svc service.ProjectService }

func New(svc service.ProjectService) *ProjectCtrl { return &ProjectCtrl{svc} }

func (h *ProjectCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Color       string `json:"color"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name required"})
	}
	p, err := h.svc.Create(uid, service.NewProject{Name: req.Name, Description: req.Description, Color: req.Color})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProjectCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	list, err := h.svc.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if list == nil {
		list = []entities.Project{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ProjectCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.svc.Delete(uid, c.Param("id")); err != nil {
		if errors.Is(err, serviceImp.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
