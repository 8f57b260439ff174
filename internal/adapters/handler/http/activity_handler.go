package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/comitanigiacomo/shelf/internal/core/services"
)

// ActivityHandler serves activities, presets and the suggestion list built
// from both.
type ActivityHandler struct {
	svc *services.ActivityService
}

func NewActivityHandler(svc *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

type createActivityRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
}

type presetRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *ActivityHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/activities", h.List)
	router.POST("/activity", h.Create)
	router.DELETE("/activity/:id", h.Delete)

	router.GET("/habit-presets", h.Suggestions)

	router.GET("/presets", h.ListPresets)
	router.POST("/preset", h.CreatePreset)
	router.PUT("/preset/:id", h.UpdatePreset)
	router.DELETE("/preset/:id", h.DeletePreset)
}

// List godoc
// @Summary      List activities
// @Tags         activities
// @Produce      json
// @Param        date  query     string  false  "Only this date (YYYY-MM-DD)"
// @Success      200   {array}   domain.Activity
// @Router       /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	date, err := optionalDate(c, "date")
	if err != nil {
		handleError(c, err)
		return
	}

	list, err := h.svc.List(c.Request.Context(), date)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary      Log an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        activity  body      createActivityRequest  true  "Activity"
// @Success      201       {object}  domain.Activity
// @Failure      409       {object}  map[string]string
// @Router       /activity [post]
func (h *ActivityHandler) Create(c *gin.Context) {
	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	date, err := domain.ParseDateKey(req.Date)
	if err != nil {
		handleError(c, err)
		return
	}

	activity, err := h.svc.Create(c.Request.Context(), req.Name, date)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// Delete godoc
// @Summary      Delete an activity
// @Tags         activities
// @Param        id  path  string  true  "Activity id"
// @Success      204
// @Router       /activity/{id} [delete]
func (h *ActivityHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Suggestions godoc
// @Summary      Names offered when logging an activity
// @Tags         activities
// @Produce      json
// @Success      200  {array}  string
// @Router       /habit-presets [get]
func (h *ActivityHandler) Suggestions(c *gin.Context) {
	names, err := h.svc.Suggestions(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// ListPresets godoc
// @Summary      List presets
// @Tags         presets
// @Produce      json
// @Success      200  {array}  domain.Preset
// @Router       /presets [get]
func (h *ActivityHandler) ListPresets(c *gin.Context) {
	list, err := h.svc.ListPresets(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreatePreset godoc
// @Summary      Create a preset
// @Tags         presets
// @Accept       json
// @Produce      json
// @Param        preset  body      presetRequest  true  "Preset"
// @Success      201     {object}  domain.Preset
// @Router       /preset [post]
func (h *ActivityHandler) CreatePreset(c *gin.Context) {
	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	preset, err := h.svc.CreatePreset(c.Request.Context(), req.Name)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, preset)
}

// UpdatePreset godoc
// @Summary      Rename a preset
// @Tags         presets
// @Accept       json
// @Produce      json
// @Param        id      path      string         true  "Preset id"
// @Param        preset  body      presetRequest  true  "New name"
// @Success      200     {object}  domain.Preset
// @Router       /preset/{id} [put]
func (h *ActivityHandler) UpdatePreset(c *gin.Context) {
	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	preset, err := h.svc.UpdatePreset(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, preset)
}

// DeletePreset godoc
// @Summary      Delete a preset
// @Tags         presets
// @Param        id  path  string  true  "Preset id"
// @Success      204
// @Router       /preset/{id} [delete]
func (h *ActivityHandler) DeletePreset(c *gin.Context) {
	if err := h.svc.DeletePreset(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
