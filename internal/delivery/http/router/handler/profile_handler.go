package handler

import (
	"log/slog"
	"net/http"

	"fittrack/internal/delivery/http/response"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for weight tracking and dashboard handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateWeight logs a new body-weight entry.
func (h *ProfileHandler) CreateWeight(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateWeightInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid weight input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	weight, err := h.uc.CreateWeight(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, weight, "Weight entry created")
}

// ListWeights returns the user's weight entries oldest first.
func (h *ProfileHandler) ListWeights(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	rangeInput, err := bindRange(c)
	if err != nil {
		return errors.WithStack(err)
	}

	weights, err := h.uc.ListWeights(c.Request().Context(), userID, rangeInput)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, weights, "")
}

// GetWeight returns a single weight entry owned by the authenticated user.
func (h *ProfileHandler) GetWeight(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	weightID, err := pathID(c, domainerrors.ErrWeightNotFound)
	if err != nil {
		return err
	}

	weight, err := h.uc.GetWeight(c.Request().Context(), userID, weightID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, weight, "")
}

// UpdateWeight applies a partial update to a weight entry.
func (h *ProfileHandler) UpdateWeight(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	weightID, err := pathID(c, domainerrors.ErrWeightNotFound)
	if err != nil {
		return err
	}

	var input usecase.UpdateWeightInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid weight input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	weight, err := h.uc.UpdateWeight(c.Request().Context(), userID, weightID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, weight, "Weight entry updated")
}

// DeleteWeight removes a weight entry owned by the authenticated user.
func (h *ProfileHandler) DeleteWeight(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	weightID, err := pathID(c, domainerrors.ErrWeightNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteWeight(c.Request().Context(), userID, weightID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted_id": weightID}, "Weight entry deleted")
}

// Dashboard returns the user's all-time activity summary.
func (h *ProfileHandler) Dashboard(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.uc.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
