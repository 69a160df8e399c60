package api

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"

	"pgmanager/server/internal/derive"
	"pgmanager/server/internal/models"
	"pgmanager/server/internal/shell"
	"pgmanager/server/internal/views"
)

// ViewQuery carries every view's local state as query parameters. Each
// view reads only the fields it understands.
type ViewQuery struct {
	Role      string   `form:"role"`
	Selected  string   `form:"selected"`
	Query     string   `form:"q"`
	MinPrice  *int64   `form:"min_price"`
	MaxPrice  *int64   `form:"max_price"`
	Gender    string   `form:"gender"`
	RoomType  string   `form:"room_type"`
	Status    string   `form:"status"`
	Category  string   `form:"category"`
	Month     string   `form:"month"`
	Nearby    string   `form:"nearby"`
	OriginLat *float64 `form:"origin_lat"`
	OriginLon *float64 `form:"origin_lon"`
}

func (q ViewQuery) origin() (*orb.Point, error) {
	if q.OriginLat == nil && q.OriginLon == nil {
		return nil, nil
	}
	if q.OriginLat == nil || q.OriginLon == nil {
		return nil, fmt.Errorf("origin_lat and origin_lon must be given together")
	}
	lat, lon := *q.OriginLat, *q.OriginLon
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return nil, fmt.Errorf("origin must be a finite number")
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("origin out of range")
	}
	p := orb.Point{lon, lat}
	return &p, nil
}

// month parses "", "all" or a zero-based month index
func (q ViewQuery) month(def derive.MonthIndex) (derive.MonthIndex, error) {
	raw := strings.ToLower(strings.TrimSpace(q.Month))
	switch raw {
	case "":
		return def, nil
	case derive.All:
		return derive.AllMonths, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid month: %s", q.Month)
	}
	m := derive.MonthIndex(n)
	if !m.Valid() {
		return 0, fmt.Errorf("month out of range: %d", n)
	}
	return m, nil
}

// role picks the override when present, else the shell's role
func (h *Handler) role(q ViewQuery) (models.Role, error) {
	if q.Role == "" {
		return h.shell.Role(), nil
	}
	role := models.Role(q.Role)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role: %s", q.Role)
	}
	return role, nil
}

// render builds the named view. Unknown names render the dashboard.
func (h *Handler) render(view string, role models.Role, data models.Snapshot, q ViewQuery) (interface{}, error) {
	switch shell.Resolve(view) {
	case shell.ViewProperties:
		return views.BuildProperties(data, views.PropertiesState{SelectedPropertyID: q.Selected}), nil

	case shell.ViewSearch:
		state := views.DefaultSearchState()
		state.Query = q.Query
		if q.MinPrice != nil {
			state.MinPrice = *q.MinPrice
		}
		if q.MaxPrice != nil {
			state.MaxPrice = *q.MaxPrice
		}
		if q.Gender != "" {
			state.Gender = q.Gender
		}
		if q.RoomType != "" {
			state.RoomType = q.RoomType
		}
		origin, err := q.origin()
		if err != nil {
			return nil, err
		}
		state.Origin = origin
		return views.BuildSearch(data, state), nil

	case shell.ViewBookings:
		return views.BuildBookings(role, data, views.BookingsState{SelectedBookingID: q.Selected}), nil

	case shell.ViewPayments:
		return views.BuildPayments(role, data, views.PaymentsState{Status: q.Status}), nil

	case shell.ViewComplaints:
		return views.BuildComplaints(role, data, views.ComplaintsState{
			Status:              q.Status,
			SelectedComplaintID: q.Selected,
		}), nil

	case shell.ViewMap:
		origin, err := q.origin()
		if err != nil {
			return nil, err
		}
		return views.BuildMap(h.city, data, views.MapState{
			SelectedPropertyID: q.Selected,
			NearbyCategory:     q.Nearby,
			Origin:             origin,
		}), nil

	case shell.ViewExpenses:
		state := views.DefaultExpensesState(h.now())
		if q.Category != "" {
			state.Category = q.Category
		}
		month, err := q.month(state.Month)
		if err != nil {
			return nil, err
		}
		state.Month = month
		return views.BuildExpenses(data, state), nil

	default:
		return views.BuildDashboard(role, h.now()), nil
	}
}

type viewResponse struct {
	Header shell.Header `json:"header"`
	View   interface{}  `json:"view"`
}

func (h *Handler) serveView(c *gin.Context, view string) {
	var q ViewQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, err := h.role(q)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, ok := h.snapshot(c)
	if !ok {
		return
	}

	body, err := h.render(view, role, data, q)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, viewResponse{
		Header: shell.BuildHeader(data.Users, role, view),
		View:   body,
	})
}

// GetView renders the view named in the path
func (h *Handler) GetView(c *gin.Context) {
	name := c.Param("view")
	if shell.Resolve(name) != name {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown view: " + name})
		return
	}
	h.serveView(c, name)
}

// GetCurrentView renders whatever view the shell is on
func (h *Handler) GetCurrentView(c *gin.Context) {
	h.serveView(c, h.shell.View())
}
