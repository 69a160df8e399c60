package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pgmanager/server/internal/derive"
	"pgmanager/server/internal/models"
	"pgmanager/server/internal/queue"
)

type ComplaintRequest struct {
	PropertyID  string                   `json:"property_id" binding:"required"`
	RoomID      string                   `json:"room_id"`
	Category    models.ComplaintCategory `json:"category" binding:"required"`
	Title       string                   `json:"title" binding:"required"`
	Description string                   `json:"description"`
	Priority    models.Priority          `json:"priority"`
}

type PaymentRequest struct {
	Method models.PaymentMethod `json:"method" binding:"required"`
}

type ExpenseRequest struct {
	PropertyID  string                 `json:"property_id" binding:"required"`
	Category    models.ExpenseCategory `json:"category" binding:"required"`
	Description string                 `json:"description"`
	Amount      int64                  `json:"amount" binding:"required,gt=0"`
	Date        *time.Time             `json:"date"`
}

type PropertyRequest struct {
	Name       string            `json:"name" binding:"required"`
	Address    string            `json:"address"`
	City       string            `json:"city"`
	PriceRange models.PriceRange `json:"price_range"`
	TotalRooms int               `json:"total_rooms" binding:"gte=0"`
	Amenities  []string          `json:"amenities"`
}

// decision is the payload for actions that only name a target
type decision struct {
	ID string `json:"id"`
}

// enqueue records the action for the active role and answers 202
func (h *Handler) enqueue(c *gin.Context, kind queue.Kind, allowed models.Role, payload interface{}) {
	role := h.shell.Role()
	if role != allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": string(kind) + " is not available to " + string(role)})
		return
	}

	action := queue.NewAction(kind, role, payload)
	if err := h.actions.Push(action); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, queue.ErrQueueFull) || errors.Is(err, queue.ErrQueueClosed) {
			status = http.StatusServiceUnavailable
		}
		h.logger.WithError(err).WithField("kind", kind).Error("Failed to queue action")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	h.logger.WithFields(logrus.Fields{
		"action_id": action.ID,
		"kind":      kind,
		"role":      role,
	}).Info("Accepted action")
	c.JSON(http.StatusAccepted, gin.H{"id": action.ID, "kind": kind})
}

// findProperty writes a 404 or 500 when the property cannot be served
func (h *Handler) findProperty(c *gin.Context, id string) (models.Property, bool) {
	properties, err := h.store.Properties(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get properties"})
		return models.Property{}, false
	}
	p, ok := derive.FindProperty(properties, id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return models.Property{}, false
	}
	return p, true
}

// findRoom requires the room to exist and belong to the property
func (h *Handler) findRoom(c *gin.Context, propertyID, id string) (models.Room, bool) {
	rooms, err := h.store.Rooms(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get rooms")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get rooms"})
		return models.Room{}, false
	}
	r, ok := derive.FindRoom(rooms, id)
	if !ok || r.PropertyID != propertyID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return models.Room{}, false
	}
	return r, true
}

func (h *Handler) bookingDecision(c *gin.Context, kind queue.Kind) {
	id := c.Param("id")
	bookings, err := h.store.Bookings(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get bookings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get bookings"})
		return
	}
	b, ok := derive.FindBooking(bookings, id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if b.Status != models.BookingPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Booking is not pending"})
		return
	}
	h.enqueue(c, kind, models.RoleOwner, decision{ID: id})
}

func (h *Handler) ApproveBooking(c *gin.Context) {
	h.bookingDecision(c, queue.BookingApprove)
}

func (h *Handler) RejectBooking(c *gin.Context) {
	h.bookingDecision(c, queue.BookingReject)
}

func (h *Handler) SubmitComplaint(c *gin.Context) {
	var req ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + string(req.Category)})
		return
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !req.Priority.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown priority: " + string(req.Priority)})
		return
	}
	if _, ok := h.findProperty(c, req.PropertyID); !ok {
		return
	}
	if req.RoomID != "" {
		if _, ok := h.findRoom(c, req.PropertyID, req.RoomID); !ok {
			return
		}
	}
	h.enqueue(c, queue.ComplaintSubmit, models.RoleCustomer, req)
}

func (h *Handler) ResolveComplaint(c *gin.Context) {
	id := c.Param("id")
	complaints, err := h.store.Complaints(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get complaints")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get complaints"})
		return
	}
	complaint, ok := derive.FindComplaint(complaints, id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}
	if complaint.Status == models.ComplaintResolved {
		c.JSON(http.StatusConflict, gin.H{"error": "Complaint is already resolved"})
		return
	}
	h.enqueue(c, queue.ComplaintResolve, models.RoleOwner, decision{ID: id})
}

func (h *Handler) MakePayment(c *gin.Context) {
	id := c.Param("id")
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Method.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment method: " + string(req.Method)})
		return
	}

	payments, err := h.store.Payments(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get payments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payments"})
		return
	}
	p, ok := derive.FindPayment(payments, id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	if p.Status != models.PaymentPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Payment is not pending"})
		return
	}
	h.enqueue(c, queue.PaymentMake, models.RoleCustomer, gin.H{"id": id, "method": req.Method})
}

func (h *Handler) AddExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + string(req.Category)})
		return
	}
	if _, ok := h.findProperty(c, req.PropertyID); !ok {
		return
	}
	h.enqueue(c, queue.ExpenseAdd, models.RoleOwner, req)
}

func (h *Handler) AddProperty(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PriceRange.Min > req.PriceRange.Max {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvertedPriceRange.Error()})
		return
	}
	h.enqueue(c, queue.PropertyAdd, models.RoleOwner, req)
}

func (h *Handler) EditProperty(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PriceRange.Min > req.PriceRange.Max {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvertedPriceRange.Error()})
		return
	}
	id := c.Param("id")
	if _, ok := h.findProperty(c, id); !ok {
		return
	}
	h.enqueue(c, queue.PropertyEdit, models.RoleOwner, gin.H{"id": id, "property": req})
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.findProperty(c, id); !ok {
		return
	}
	h.enqueue(c, queue.PropertyDelete, models.RoleOwner, decision{ID: id})
}
