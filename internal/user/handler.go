package user

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	store Store
	log   logrus.FieldLogger
}

func NewHandler(store Store, log logrus.FieldLogger) *Handler {
	return &Handler{store: store, log: log}
}

// Register mounts the users routes on g.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/users", h.List)
	g.POST("/users", h.Create)
	g.PUT("/users/:id", h.Update)
	g.DELETE("/users/:id", h.Delete)
}

// GET /users
func (h *Handler) List(c echo.Context) error {
	users, err := h.store.List(c.Request().Context())
	if err != nil {
		h.log.WithError(err).Error("list users")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch users"})
	}
	if users == nil {
		users = []User{}
	}
	return c.JSON(http.StatusOK, users)
}

// POST /users
func (h *Handler) Create(c echo.Context) error {
	var req Fields
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and phone are required"})
	}

	u, err := h.store.Create(c.Request().Context(), req)
	if err != nil {
		h.log.WithError(err).Error("create user")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create user"})
	}
	h.log.WithField("user_id", u.ID).Info("user created")
	return c.JSON(http.StatusCreated, u)
}

// PUT /users/:id
func (h *Handler) Update(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user id required"})
	}

	var req Fields
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and phone are required"})
	}

	u, err := h.store.Update(c.Request().Context(), id, req)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user with id " + id + " not found"})
	}
	if err != nil {
		h.log.WithError(err).WithField("user_id", id).Error("update user")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update user"})
	}
	h.log.WithField("user_id", u.ID).Info("user updated")
	return c.JSON(http.StatusOK, u)
}

// DELETE /users/:id
func (h *Handler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user id required"})
	}

	err := h.store.Delete(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user with id " + id + " not found"})
	}
	if err != nil {
		h.log.WithError(err).WithField("user_id", id).Error("delete user")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete user"})
	}
	h.log.WithField("user_id", id).Info("user deleted")
	return c.NoContent(http.StatusNoContent)
}

// RequestValidator plugs Validator into echo's Context.Validate.
type RequestValidator struct{}

func (RequestValidator) Validate(i interface{}) error {
	return Validator().Struct(i)
}
