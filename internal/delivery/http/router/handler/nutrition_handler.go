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

// NutritionHandler holds dependencies for meal handlers.
type NutritionHandler struct {
	uc     usecase.NutritionUsecase
	logger *slog.Logger
}

// NewNutritionHandler is the constructor for NutritionHandler, injected by Fx.
func NewNutritionHandler(uc usecase.NutritionUsecase, logger *slog.Logger) *NutritionHandler {
	return &NutritionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create logs a new meal for the authenticated user.
func (h *NutritionHandler) Create(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateMealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	meal, err := h.uc.Create(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, meal, "Meal created")
}

// List returns the user's meals, optionally bounded by date.
func (h *NutritionHandler) List(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	rangeInput, err := bindRange(c)
	if err != nil {
		return errors.WithStack(err)
	}

	meals, err := h.uc.List(c.Request().Context(), userID, rangeInput)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meals, "")
}

// Get returns a single meal owned by the authenticated user.
func (h *NutritionHandler) Get(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	mealID, err := pathID(c, domainerrors.ErrMealNotFound)
	if err != nil {
		return err
	}

	meal, err := h.uc.Get(c.Request().Context(), userID, mealID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meal, "")
}

// Update applies a partial update to a meal.
func (h *NutritionHandler) Update(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	mealID, err := pathID(c, domainerrors.ErrMealNotFound)
	if err != nil {
		return err
	}

	var input usecase.UpdateMealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	meal, err := h.uc.Update(c.Request().Context(), userID, mealID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meal, "Meal updated")
}

// Delete removes a meal owned by the authenticated user.
func (h *NutritionHandler) Delete(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	mealID, err := pathID(c, domainerrors.ErrMealNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, mealID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted_id": mealID}, "Meal deleted")
}

// Macros returns daily calorie and macronutrient totals.
func (h *NutritionHandler) Macros(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	rangeInput, err := bindRange(c)
	if err != nil {
		return errors.WithStack(err)
	}

	rows, err := h.uc.Macros(c.Request().Context(), userID, rangeInput)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}
