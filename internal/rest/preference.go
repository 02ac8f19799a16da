package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"movieRecommender/business/preference"
	"movieRecommender/domain"
	"movieRecommender/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type PreferenceService interface {
	Get(ctx context.Context, userID string) (domain.RawPreferences, error)
	Save(ctx context.Context, userID string, raw domain.RawPreferences) error
	List(ctx context.Context) ([]string, error)
}

type PreferenceHandler struct {
	service PreferenceService
	timeout time.Duration
}

func NewPreferenceHandler(svc PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		service: svc,
		timeout: 10 * time.Second,
	}
}

type PreferenceResponse struct {
	Status      domain.Status         `json:"status"`
	UserID      string                `json:"user_id"`
	Message     string                `json:"message,omitempty"`
	Preferences domain.RawPreferences `json:"preferences"`
}

type UserListResponse struct {
	Status domain.Status `json:"status"`
	Users  []string      `json:"users"`
}

// GET /api/v1/users/:user_id
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	userID := c.Param("user_id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	raw, err := h.service.Get(ctx, userID)
	if errors.Is(err, preference.ErrUserNotFound) {
		return c.JSON(http.StatusNotFound, ResponseError{Message: userNotFoundMessage(userID)})
	}
	if err != nil {
		logger.Error("Failed to get preferences", "user_id", userID, err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(PreferenceResponse{
		Status:      domain.StatusOK,
		UserID:      userID,
		Preferences: raw,
	}))
}

// POST /api/v1/users/:user_id
func (h *PreferenceHandler) SavePreferences(c echo.Context) error {
	userID := c.Param("user_id")

	var raw domain.RawPreferences
	if err := c.Bind(&raw); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err := h.service.Save(ctx, userID, raw)
	if errors.Is(err, preference.ErrInvalidPreferences) {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err != nil {
		logger.Error("Failed to save preferences", "user_id", userID, err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(PreferenceResponse{
		Status:      domain.StatusOK,
		UserID:      userID,
		Message:     fmt.Sprintf("Preferences for %s saved successfully", userID),
		Preferences: raw,
	}))
}

// GET /api/v1/users
func (h *PreferenceHandler) ListUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ids, err := h.service.List(ctx)
	if err != nil {
		logger.Error("Failed to list users", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	if ids == nil {
		ids = []string{}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(UserListResponse{
		Status: domain.StatusOK,
		Users:  ids,
	}))
}
