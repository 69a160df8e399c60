package api

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pgmanager/server/config"
	"pgmanager/server/internal/geometry"
	"pgmanager/server/internal/models"
	"pgmanager/server/internal/queue"
	"pgmanager/server/internal/shell"
	"pgmanager/server/internal/store"
)

type Handler struct {
	store   store.Reader
	shell   *shell.State
	actions *queue.ActionQueue
	city    config.City
	logger  *logrus.Logger
	now     func() time.Time
}

type RoleRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

type ViewRequest struct {
	View string `json:"view" binding:"required"`
}

func NewHandler(reader store.Reader, state *shell.State, actions *queue.ActionQueue, city config.City, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if state == nil {
		state = shell.NewState()
	}

	return &Handler{
		store:   reader,
		shell:   state,
		actions: actions,
		city:    city,
		logger:  logger,
		now:     time.Now,
	}
}

// snapshot loads every collection, writing a 500 on failure
func (h *Handler) snapshot(c *gin.Context) (models.Snapshot, bool) {
	data, err := store.Load(c.Request.Context(), h.store)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return data, false
	}
	return data, true
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) GetShell(c *gin.Context) {
	users, err := h.store.Users(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get users"})
		return
	}

	role, view := h.shell.Snapshot()
	c.JSON(http.StatusOK, shell.BuildHeader(users, role, view))
}

func (h *Handler) SetRole(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role: " + string(req.Role)})
		return
	}

	h.shell.SwitchRole(req.Role)
	h.logger.WithFields(logrus.Fields{
		"role": req.Role,
		"view": h.shell.View(),
	}).Info("Switched role")
	h.GetShell(c)
}

func (h *Handler) SetView(c *gin.Context) {
	var req ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.shell.SetView(req.View)
	h.GetShell(c)
}

// GetGeoJSON serves every property as a GeoJSON point
func (h *Handler) GetGeoJSON(c *gin.Context) {
	properties, err := h.store.Properties(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get properties"})
		return
	}

	c.JSON(http.StatusOK, geometry.FeatureCollection(properties))
}

// GetCollection serves one raw collection by name
func (h *Handler) GetCollection(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	var (
		out interface{}
		err error
	)
	switch name {
	case "users":
		out, err = h.store.Users(ctx)
	case "properties":
		out, err = h.store.Properties(ctx)
	case "rooms":
		out, err = h.store.Rooms(ctx)
	case "bookings":
		out, err = h.store.Bookings(ctx)
	case "payments":
		out, err = h.store.Payments(ctx)
	case "complaints":
		out, err = h.store.Complaints(ctx)
	case "expenses":
		out, err = h.store.Expenses(ctx)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown collection: " + name})
		return
	}
	if err != nil {
		h.logger.WithError(err).WithField("collection", name).Error("Failed to get collection")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get " + name})
		return
	}

	c.JSON(http.StatusOK, out)
}
