package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/comitanigiacomo/shelf/internal/core/services"
)

type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler {
	return &HabitHandler{
		svc: svc,
	}
}

type createHabitRequest struct {
	Name        string   `json:"name" binding:"required"`
	Days        []int    `json:"days" binding:"required"`
	Color       string   `json:"color"`
	Completions []string `json:"completions"`
}

// updateHabitRequest fields are optional; absent ones keep their value.
type updateHabitRequest struct {
	Name        string   `json:"name"`
	Days        []int    `json:"days"`
	Color       string   `json:"color"`
	Completions []string `json:"completions"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/habits", h.List)

	habit := router.Group("/habit")
	{
		habit.POST("", h.Create)
		habit.GET("/:id", h.Get)
		habit.PUT("/:id", h.Update)
		habit.DELETE("/:id", h.Delete)
		habit.POST("/:id/toggle/:date", h.Toggle)
	}
}

// List godoc
// @Summary      List habits
// @Tags         habits
// @Produce      json
// @Success      200  {array}   domain.Habit
// @Router       /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary      Get a habit
// @Tags         habits
// @Produce      json
// @Param        id   path      string  true  "Habit id"
// @Success      200  {object}  domain.Habit
// @Failure      404  {object}  map[string]string
// @Router       /habit/{id} [get]
func (h *HabitHandler) Get(c *gin.Context) {
	habit, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, habit)
}

// Create godoc
// @Summary      Create a habit
// @Tags         habits
// @Accept       json
// @Produce      json
// @Param        habit  body      createHabitRequest  true  "Habit"
// @Success      201    {object}  domain.Habit
// @Failure      400    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Router       /habit [post]
func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	completions, err := parseDates(req.Completions)
	if err != nil {
		handleError(c, err)
		return
	}

	habit, err := h.svc.Create(c.Request.Context(), services.CreateHabitInput{
		Name:        req.Name,
		Days:        req.Days,
		Color:       req.Color,
		Completions: completions,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// Update godoc
// @Summary      Update a habit
// @Description  Renaming changes the id. Completions are replaced only when sent.
// @Tags         habits
// @Accept       json
// @Produce      json
// @Param        id     path      string              true  "Habit id"
// @Param        habit  body      updateHabitRequest  true  "Fields to change"
// @Success      200    {object}  domain.Habit
// @Failure      404    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Router       /habit/{id} [put]
func (h *HabitHandler) Update(c *gin.Context) {
	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	completions, err := parseDates(req.Completions)
	if err != nil {
		handleError(c, err)
		return
	}

	habit, err := h.svc.Update(c.Request.Context(), services.UpdateHabitInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		Days:        req.Days,
		Color:       req.Color,
		Completions: completions,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// Delete godoc
// @Summary      Delete a habit and its completion history
// @Tags         habits
// @Param        id   path  string  true  "Habit id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /habit/{id} [delete]
func (h *HabitHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Toggle godoc
// @Summary      Toggle a completion
// @Description  Adds the date when absent and removes it when present.
// @Tags         habits
// @Produce      json
// @Param        id    path      string  true  "Habit id"
// @Param        date  path      string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  domain.Habit
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /habit/{id}/toggle/{date} [post]
func (h *HabitHandler) Toggle(c *gin.Context) {
	date, err := domain.ParseDateKey(c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}

	habit, err := h.svc.Toggle(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}
