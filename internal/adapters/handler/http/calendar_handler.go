package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/comitanigiacomo/shelf/internal/core/services"
)

type CalendarHandler struct {
	svc *services.CalendarService
}

func NewCalendarHandler(svc *services.CalendarService) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

func (h *CalendarHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/habit-calendar", h.HabitMonth)
	r.GET("/habit-calendar/day/:date", h.Day)
	r.GET("/workout-calendar", h.WorkoutMonth)
	r.GET("/stats", h.Stats)
}

func yearMonth(c *gin.Context) (*int, *int, error) {
	year, err := optionalInt(c, "year")
	if err != nil {
		return nil, nil, err
	}
	month, err := optionalInt(c, "month")
	if err != nil {
		return nil, nil, err
	}
	return year, month, nil
}

// HabitMonth godoc
// @Summary      Habit completion grid for one month
// @Description  Defaults to the current month. Each cell carries due, completed and bonus habit ids.
// @Tags         calendar
// @Produce      json
// @Param        year   query     int  false  "Year"
// @Param        month  query     int  false  "Month (1-12)"
// @Success      200    {object}  calendar.MonthGrid
// @Failure      400    {object}  map[string]string
// @Router       /habit-calendar [get]
func (h *CalendarHandler) HabitMonth(c *gin.Context) {
	year, month, err := yearMonth(c)
	if err != nil {
		handleError(c, err)
		return
	}

	grid, err := h.svc.HabitMonth(c.Request.Context(), year, month)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, grid)
}

// Day godoc
// @Summary      Detail of one calendar day
// @Tags         calendar
// @Produce      json
// @Param        date  path      string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  services.DayDetail
// @Failure      400   {object}  map[string]string
// @Router       /habit-calendar/day/{date} [get]
func (h *CalendarHandler) Day(c *gin.Context) {
	date, err := domain.ParseDateKey(c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}

	detail, err := h.svc.Day(c.Request.Context(), date)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// WorkoutMonth godoc
// @Summary      Days with at least one workout in a month
// @Tags         calendar
// @Produce      json
// @Param        year   query     int  false  "Year"
// @Param        month  query     int  false  "Month (1-12)"
// @Success      200    {object}  services.WorkoutCalendar
// @Router       /workout-calendar [get]
func (h *CalendarHandler) WorkoutMonth(c *gin.Context) {
	year, month, err := yearMonth(c)
	if err != nil {
		handleError(c, err)
		return
	}

	cal, err := h.svc.WorkoutMonth(c.Request.Context(), year, month)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cal)
}

// Stats godoc
// @Summary      Completion statistics over a date range
// @Description  end_date defaults to today, start_date to six days earlier. At most 366 days.
// @Tags         calendar
// @Produce      json
// @Param        start_date  query     string  false  "YYYY-MM-DD"
// @Param        end_date    query     string  false  "YYYY-MM-DD"
// @Success      200         {object}  calendar.RangeStats
// @Failure      400         {object}  map[string]string
// @Router       /stats [get]
func (h *CalendarHandler) Stats(c *gin.Context) {
	start, err := optionalDate(c, "start_date")
	if err != nil {
		handleError(c, err)
		return
	}
	end, err := optionalDate(c, "end_date")
	if err != nil {
		handleError(c, err)
		return
	}

	stats, err := h.svc.Stats(c.Request.Context(), start, end)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
