package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	"sprout/pkg/tasks/service"
	"sprout/pkg/tasks/serviceImp"
	"sprout/pkg/tasks/types"
)

type TaskCtrl struct{ svc service.TaskService }

func New(svc service.TaskService) *TaskCtrl { return &TaskCtrl{svc} }

type createReq struct {
	Activity  string `json:"activity"`
	Details   string `json:"details"`
	DueDate   string `json:"dueDate"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	ProjectID string `json:"projectId"`
}

func (h *TaskCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Activity == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "activity required"})
	}
	due, err := entities.ParseFlexTime(req.DueDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad dueDate"})
	}
	t, err := h.svc.Create(uid, service.NewTask{
		Activity:  req.Activity,
		Details:   req.Details,
		DueDate:   due,
		Category:  entities.TaskCategory(req.Category),
		Priority:  req.Priority,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

type patchReq struct {
	Activity  *string `json:"activity"`
	Details   *string `json:"details"`
	DueDate   *string `json:"dueDate"`
	Category  *string `json:"category"`
	Priority  *string `json:"priority"`
	ProjectID *string `json:"projectId"`
	Completed *bool   `json:"completed"`
}

func (h *TaskCtrl) Patch(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req patchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	patch := service.TaskPatch{
		Activity:  req.Activity,
		Details:   req.Details,
		Priority:  req.Priority,
		ProjectID: req.ProjectID,
		Completed: req.Completed,
	}
	if req.DueDate != nil {
		t, err := entities.ParseFlexTime(*req.DueDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad dueDate"})
		}
		patch.DueDate = &t
	}
	if req.Category != nil {
		cat := entities.TaskCategory(*req.Category)
		patch.Category = &cat
	}
	t, err := h.svc.Update(uid, c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, serviceImp.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.svc.Delete(uid, c.Param("id")); err != nil {
		if errors.Is(err, serviceImp.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *TaskCtrl) Toggle(c echo.Context) error {
	uid := c.Get("uid").(string)
	var ref types.ToggleRef
	if err := c.Bind(&ref); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.ToggleComplete(uid, ref); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	// Missing references are a silent no-op; the client reloads the list.
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
