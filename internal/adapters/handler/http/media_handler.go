package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/comitanigiacomo/shelf/internal/core/services"
)

type MediaHandler struct {
	svc *services.MediaService
}

func NewMediaHandler(svc *services.MediaService) *MediaHandler {
	return &MediaHandler{svc: svc}
}

type mediaRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country"`
	Type    string `json:"type"`
	Status  string `json:"status"`
	Rating  string `json:"rating"`
	Review  string `json:"review"`
}

func (r mediaRequest) input() domain.MediaInput {
	return domain.MediaInput{
		Name:    r.Name,
		Country: r.Country,
		Type:    r.Type,
		Status:  r.Status,
		Rating:  r.Rating,
		Review:  r.Review,
	}
}

func (h *MediaHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/meta/enums", h.Enums)

	media := router.Group("/media")
	{
		media.GET("", h.List)
		media.POST("", h.Create)
		media.GET("/check-name", h.CheckName)
		media.GET("/:id", h.Get)
		media.PUT("/:id", h.Update)
		media.DELETE("/:id", h.Delete)
	}
}

// Enums godoc
// @Summary      Selectable media countries, types and statuses
// @Tags         media
// @Produce      json
// @Success      200  {object}  domain.MediaEnums
// @Router       /meta/enums [get]
func (h *MediaHandler) Enums(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Enums())
}

// List godoc
// @Summary      List media
// @Tags         media
// @Produce      json
// @Param        status  query     string  false  "queued, watching or watched"
// @Success      200     {array}   domain.Media
// @Failure      400     {object}  map[string]string
// @Router       /media [get]
func (h *MediaHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary      Get a media item
// @Tags         media
// @Produce      json
// @Param        id  path      string  true  "Media id"
// @Success      200 {object}  domain.Media
// @Failure      404 {object}  map[string]string
// @Router       /media/{id} [get]
func (h *MediaHandler) Get(c *gin.Context) {
	item, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CheckName godoc
// @Summary      Report whether a name is already taken
// @Description  Best effort. A store failure answers false.
// @Tags         media
// @Produce      json
// @Param        name     query     string  true   "Candidate name"
// @Param        exclude  query     string  false  "Id of the item being edited"
// @Success      200      {object}  map[string]bool
// @Router       /media/check-name [get]
func (h *MediaHandler) CheckName(c *gin.Context) {
	duplicate := h.svc.CheckName(c.Request.Context(), c.Query("name"), c.Query("exclude"))
	c.JSON(http.StatusOK, gin.H{"duplicate": duplicate})
}

// Create godoc
// @Summary      Add a media item
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        media  body      mediaRequest  true  "Media"
// @Success      201    {object}  domain.Media
// @Failure      409    {object}  map[string]string
// @Router       /media [post]
func (h *MediaHandler) Create(c *gin.Context) {
	var req mediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary      Replace a media item
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        id     path      string        true  "Media id"
// @Param        media  body      mediaRequest  true  "Media"
// @Success      200    {object}  domain.Media
// @Router       /media/{id} [put]
func (h *MediaHandler) Update(c *gin.Context) {
	var req mediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary      Delete a media item
// @Tags         media
// @Param        id  path  string  true  "Media id"
// @Success      204
// @Router       /media/{id} [delete]
func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
