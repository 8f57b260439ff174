package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/comitanigiacomo/shelf/internal/core/services"
)

type WorkoutHandler struct {
	svc *services.WorkoutService
}

func NewWorkoutHandler(svc *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{svc: svc}
}

type workoutRequest struct {
	Date    string        `json:"date" binding:"required"`
	Time    string        `json:"time" binding:"required"`
	Groups  domain.Groups `json:"groups"`
	Content string        `json:"content"`
}

func (r workoutRequest) input() (services.WorkoutInput, error) {
	date, err := domain.ParseDateKey(r.Date)
	if err != nil {
		return services.WorkoutInput{}, err
	}
	t, err := domain.ParseTimeOfDay(r.Time)
	if err != nil {
		return services.WorkoutInput{}, err
	}
	return services.WorkoutInput{Date: date, Time: t, Groups: r.Groups, Content: r.Content}, nil
}

type templateRequest struct {
	Name   string        `json:"name" binding:"required"`
	Groups domain.Groups `json:"groups"`
}

type moveRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}

// workoutResponse adds the derived volume to the stored workout.
type workoutResponse struct {
	*domain.Workout
	Volume string `json:"volume"`
	Sets   int    `json:"sets"`
}

func newWorkoutResponse(w *domain.Workout) workoutResponse {
	return workoutResponse{Workout: w, Volume: w.Volume().String(), Sets: w.Groups.SetCount()}
}

func (h *WorkoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/workouts", h.List)
	workout := router.Group("/workout")
	{
		workout.POST("", h.Create)
		workout.GET("/:id", h.Get)
		workout.PUT("/:id", h.Update)
		workout.DELETE("/:id", h.Delete)
		workout.POST("/:id/groups/move", h.MoveGroup)
		workout.POST("/:id/groups/:group/exercises/move", h.MoveExercise)
		workout.POST("/:id/groups/:group/exercises/:exercise/sets/move", h.MoveSet)
	}

	router.GET("/templates", h.ListTemplates)
	template := router.Group("/template")
	{
		template.POST("", h.CreateTemplate)
		template.GET("/:id", h.GetTemplate)
		template.PUT("/:id", h.UpdateTemplate)
		template.DELETE("/:id", h.DeleteTemplate)
		template.POST("/:id/groups/move", h.MoveTemplateGroup)
		template.POST("/:id/groups/:group/exercises/move", h.MoveTemplateExercise)
		template.POST("/:id/groups/:group/exercises/:exercise/sets/move", h.MoveTemplateSet)
	}
}

// List godoc
// @Summary      List workouts, newest first
// @Tags         workouts
// @Produce      json
// @Success      200  {array}  workoutResponse
// @Router       /workouts [get]
func (h *WorkoutHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]workoutResponse, 0, len(list))
	for _, w := range list {
		out = append(out, newWorkoutResponse(w))
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary      Get a workout
// @Tags         workouts
// @Produce      json
// @Param        id  path      string  true  "Workout id (YYYYMMDD-HHMMSS)"
// @Success      200 {object}  workoutResponse
// @Failure      404 {object}  map[string]string
// @Router       /workout/{id} [get]
func (h *WorkoutHandler) Get(c *gin.Context) {
	w, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWorkoutResponse(w))
}

// Create godoc
// @Summary      Log a workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        workout  body      workoutRequest  true  "Workout"
// @Success      201      {object}  workoutResponse
// @Failure      409      {object}  map[string]string
// @Router       /workout [post]
func (h *WorkoutHandler) Create(c *gin.Context) {
	var req workoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		handleError(c, err)
		return
	}

	w, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newWorkoutResponse(w))
}

// Update godoc
// @Summary      Replace a workout
// @Description  The id follows date and time, so rescheduling changes it.
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Workout id"
// @Param        workout  body      workoutRequest  true  "Workout"
// @Success      200      {object}  workoutResponse
// @Router       /workout/{id} [put]
func (h *WorkoutHandler) Update(c *gin.Context) {
	var req workoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		handleError(c, err)
		return
	}

	w, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWorkoutResponse(w))
}

// Delete godoc
// @Summary      Delete a workout
// @Tags         workouts
// @Param        id  path  string  true  "Workout id"
// @Success      204
// @Router       /workout/{id} [delete]
func (h *WorkoutHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MoveGroup godoc
// @Summary      Reorder the exercise groups of a workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Workout id"
// @Param        move  body      moveRequest  true  "Source and target index"
// @Success      200   {object}  workoutResponse
// @Router       /workout/{id}/groups/move [post]
func (h *WorkoutHandler) MoveGroup(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	w, err := h.svc.MoveGroup(c.Request.Context(), c.Param("id"), *req.From, *req.To)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWorkoutResponse(w))
}

// MoveExercise godoc
// @Summary      Reorder the exercises of one group
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        id     path      string       true  "Workout id"
// @Param        group  path      int          true  "Group index"
// @Param        move   body      moveRequest  true  "Source and target index"
// @Success      200    {object}  workoutResponse
// @Failure      400    {object}  map[string]string
// @Router       /workout/{id}/groups/{group}/exercises/move [post]
func (h *WorkoutHandler) MoveExercise(c *gin.Context) {
	group, req, ok := bindNestedMove(c, "group")
	if !ok {
		return
	}

	w, err := h.svc.MoveExercise(c.Request.Context(), c.Param("id"), group[0], *req.From, *req.To)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWorkoutResponse(w))
}

// MoveSet godoc
// @Summary      Reorder the sets of one exercise
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        id        path      string       true  "Workout id"
// @Param        group     path      int          true  "Group index"
// @Param        exercise  path      int          true  "Exercise index"
// @Param        move      body      moveRequest  true  "Source and target index"
// @Success      200       {object}  workoutResponse
// @Failure      400       {object}  map[string]string
// @Router       /workout/{id}/groups/{group}/exercises/{exercise}/sets/move [post]
func (h *WorkoutHandler) MoveSet(c *gin.Context) {
	idx, req, ok := bindNestedMove(c, "group", "exercise")
	if !ok {
		return
	}

	w, err := h.svc.MoveSet(c.Request.Context(), c.Param("id"), idx[0], idx[1], *req.From, *req.To)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWorkoutResponse(w))
}

// ListTemplates godoc
// @Summary      List workout templates
// @Tags         templates
// @Produce      json
// @Success      200  {array}  domain.WorkoutTemplate
// @Router       /templates [get]
func (h *WorkoutHandler) ListTemplates(c *gin.Context) {
	list, err := h.svc.ListTemplates(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetTemplate godoc
// @Summary      Get a workout template
// @Tags         templates
// @Produce      json
// @Param        id  path      string  true  "Template id"
// @Success      200 {object}  domain.WorkoutTemplate
// @Router       /template/{id} [get]
func (h *WorkoutHandler) GetTemplate(c *gin.Context) {
	tpl, err := h.svc.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// CreateTemplate godoc
// @Summary      Create a workout template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        template  body      templateRequest  true  "Template"
// @Success      201       {object}  domain.WorkoutTemplate
// @Router       /template [post]
func (h *WorkoutHandler) CreateTemplate(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tpl, err := h.svc.CreateTemplate(c.Request.Context(), req.Name, req.Groups)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// UpdateTemplate godoc
// @Summary      Replace a workout template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id        path      string           true  "Template id"
// @Param        template  body      templateRequest  true  "Template"
// @Success      200       {object}  domain.WorkoutTemplate
// @Router       /template/{id} [put]
func (h *WorkoutHandler) UpdateTemplate(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tpl, err := h.svc.UpdateTemplate(c.Request.Context(), c.Param("id"), req.Name, req.Groups)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// DeleteTemplate godoc
// @Summary      Delete a workout template
// @Tags         templates
// @Param        id  path  string  true  "Template id"
// @Success      204
// @Router       /template/{id} [delete]
func (h *WorkoutHandler) DeleteTemplate(c *gin.Context) {
	if err := h.svc.DeleteTemplate(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MoveTemplateGroup godoc
// @Summary      Reorder the exercise groups of a template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Template id"
// @Param        move  body      moveRequest  true  "Source and target index"
// @Success      200   {object}  domain.WorkoutTemplate
// @Router       /template/{id}/groups/move [post]
func (h *WorkoutHandler) MoveTemplateGroup(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tpl, err := h.svc.MoveTemplateGroup(c.Request.Context(), c.Param("id"), *req.From, *req.To)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// MoveTemplateExercise godoc
// @Summary      Reorder the exercises of one template group
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id     path      string       true  "Template id"
// @Param        group  path      int          true  "Group index"
// @Param        move   body      moveRequest  true  "Source and target index"
// @Success      200    {object}  domain.WorkoutTemplate
// @Router       /template/{id}/groups/{group}/exercises/move [post]
func (h *WorkoutHandler) MoveTemplateExercise(c *gin.Context) {
	group, req, ok := bindNestedMove(c, "group")
	if !ok {
		return
	}

	tpl, err := h.svc.MoveTemplateExercise(c.Request.Context(), c.Param("id"), group[0], *req.From, *req.To)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// MoveTemplateSet godoc
// @Summary      Reorder the sets of one template exercise
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id        path      string       true  "Template id"
// @Param        group     path      int          true  "Group index"
// @Param        exercise  path      int          true  "Exercise index"
// @Param        move      body      moveRequest  true  "Source and target index"
// @Success      200       {object}  domain.WorkoutTemplate
// @Router       /template/{id}/groups/{group}/exercises/{exercise}/sets/move [post]
func (h *WorkoutHandler) MoveTemplateSet(c *gin.Context) {
	idx, req, ok := bindNestedMove(c, "group", "exercise")
	if !ok {
		return
	}

	tpl, err := h.svc.MoveTemplateSet(c.Request.Context(), c.Param("id"), idx[0], idx[1], *req.From, *req.To)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// bindNestedMove reads the index path params named by keys and the move body.
// It writes the 400 itself and reports false on failure.
func bindNestedMove(c *gin.Context, keys ...string) ([]int, moveRequest, bool) {
	var req moveRequest
	idx := make([]int, len(keys))
	for i, key := range keys {
		n, err := pathIndex(c, key)
		if err != nil {
			handleError(c, err)
			return nil, req, false
		}
		idx[i] = n
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return nil, req, false
	}
	return idx, req, true
}
