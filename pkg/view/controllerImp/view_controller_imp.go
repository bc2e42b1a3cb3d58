package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	tasksvc "sprout/pkg/tasks/service"
	"sprout/pkg/view"
	"sprout/pkg/view/repository"
)

type ViewCtrl struct {
	tasks tasksvc.TaskService
	prefs repository.PrefsRepository
}

func New(tasks tasksvc.TaskService, prefs repository.PrefsRepository) *ViewCtrl {
	return &ViewCtrl{tasks: tasks, prefs: prefs}
}

// Tasks returns the merged task list grouped per the requested view.
// Query params: group_by=none|category|priority|project, status=all|pending|completed.
// Source visibility comes from the stored preference unless overridden by
// show_custom/show_system.
func (h *ViewCtrl) Tasks(c echo.Context) error {
	uid := c.Get("uid").(string)
	all, err := h.tasks.LoadAll(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	prefs, _ := h.prefs.SourcePrefs(uid)
	opts := view.Options{
		GroupBy:    view.GroupBy(c.QueryParam("group_by")),
		Status:     view.StatusFilter(c.QueryParam("status")),
		ShowCustom: prefs.ShowCustom,
		ShowSystem: prefs.ShowSystem,
	}
	if v := c.QueryParam("show_custom"); v != "" {
		opts.ShowCustom = v == "true"
	}
	if v := c.QueryParam("show_system"); v != "" {
		opts.ShowSystem = v == "true"
	}
	return c.JSON(http.StatusOK, view.Project(all, opts))
}

func (h *ViewCtrl) Suggestions(c echo.Context) error {
	uid := c.Get("uid").(string)
	all, err := h.tasks.LoadAll(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	hide, _ := h.prefs.HideCompletedSuggestions(uid)
	sortBy := view.SuggestionSort(c.QueryParam("sort"))
	if sortBy == "" {
		sortBy = view.SortByDueDate
	}
	return c.JSON(http.StatusOK, view.Suggestions(all, sortBy, hide))
}

func (h *ViewCtrl) GetSourcePrefs(c echo.Context) error {
	uid := c.Get("uid").(string)
	prefs, err := h.prefs.SourcePrefs(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, prefs)
}

func (h *ViewCtrl) PutSourcePrefs(c echo.Context) error {
	uid := c.Get("uid").(string)
	var prefs entities.TaskSourcePrefs
	if err := c.Bind(&prefs); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.prefs.SetSourcePrefs(uid, prefs); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, prefs)
}

func (h *ViewCtrl) GetHideCompleted(c echo.Context) error {
	uid := c.Get("uid").(string)
	hide, err := h.prefs.HideCompletedSuggestions(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"hideCompleted": hide})
}

func (h *ViewCtrl) PutHideCompleted(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		HideCompleted bool `json:"hideCompleted"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.prefs.SetHideCompletedSuggestions(uid, body.HideCompleted); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"hideCompleted": body.HideCompleted})
}
