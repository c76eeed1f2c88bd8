package handlers

import (
	"errors"
	"net/http"

	"event-reminder-service/pkg/auth"
	"event-reminder-service/pkg/models"
	"event-reminder-service/pkg/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	users  store.UserStore
	events store.EventStore
	auth   *auth.Auth
	log    *zap.Logger
}

// New creates a new Handlers instance
func New(users store.UserStore, events store.EventStore, auth *auth.Auth, log *zap.Logger) *Handlers {
	return &Handlers{
		users:  users,
		events: events,
		auth:   auth,
		log:    log,
	}
}

// Router builds the gin engine with all routes registered
func (h *Handlers) Router() *gin.Engine {
	r := gin.Default()

	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	events := r.Group("/events")
	events.Use(h.auth.Middleware())
	{
		events.POST("", h.CreateEvent)
		events.GET("", h.ListEvents)
		events.GET("/sorted/date", h.ListEventsSortedByDate)
		events.GET("/category/:category", h.ListEventsByCategory)
	}

	return r
}

// ============== Auth Handlers ==============

// Register handles user registration
func (h *Handlers) Register(c *gin.Context) {
	var req models.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	if err := h.users.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		h.log.Error("register failed", zap.String("username", req.Username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// Login handles user login
func (h *Handlers) Login(c *gin.Context) {
	var req models.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	user, err := h.users.Verify(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := h.auth.GenerateToken(user.Username)
	if err != nil {
		h.log.Error("token generation failed", zap.String("username", user.Username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}

// ============== Event Handlers ==============

// CreateEvent creates an event owned by the authenticated user
func (h *Handlers) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	username := c.GetString(auth.ContextUserKey)
	event, err := h.events.Create(username, req)
	if err != nil {
		h.log.Error("event creation failed", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event created",
		"event":   event,
	})
}

// ListEvents returns all events for the authenticated user
func (h *Handlers) ListEvents(c *gin.Context) {
	username := c.GetString(auth.ContextUserKey)
	c.JSON(http.StatusOK, h.events.ListByOwner(username))
}

// ListEventsSortedByDate returns the user's events sorted ascending by date
func (h *Handlers) ListEventsSortedByDate(c *gin.Context) {
	username := c.GetString(auth.ContextUserKey)
	c.JSON(http.StatusOK, h.events.ListByOwnerSortedByDate(username))
}

// ListEventsByCategory returns the user's events filtered by category
func (h *Handlers) ListEventsByCategory(c *gin.Context) {
	username := c.GetString(auth.ContextUserKey)
	category := c.Param("category")
	c.JSON(http.StatusOK, h.events.ListByOwnerAndCategory(username, category))
}
