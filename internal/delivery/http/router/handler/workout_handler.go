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

// WorkoutHandler holds dependencies for workout handlers.
type WorkoutHandler struct {
	uc     usecase.WorkoutUsecase
	logger *slog.Logger
}

// NewWorkoutHandler is the constructor for WorkoutHandler, injected by Fx.
func NewWorkoutHandler(uc usecase.WorkoutUsecase, logger *slog.Logger) *WorkoutHandler {
	return &WorkoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create logs a new workout for the authenticated user.
func (h *WorkoutHandler) Create(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateWorkoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workout input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	workout, err := h.uc.Create(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, workout, "Workout created")
}

// List returns the user's workouts, optionally bounded by date.
func (h *WorkoutHandler) List(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	rangeInput, err := bindRange(c)
	if err != nil {
		return errors.WithStack(err)
	}

	workouts, err := h.uc.List(c.Request().Context(), userID, rangeInput)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workouts, "")
}

// Get returns a single workout owned by the authenticated user.
func (h *WorkoutHandler) Get(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	workoutID, err := pathID(c, domainerrors.ErrWorkoutNotFound)
	if err != nil {
		return err
	}

	workout, err := h.uc.Get(c.Request().Context(), userID, workoutID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workout, "")
}

// Update applies a partial update to a workout.
func (h *WorkoutHandler) Update(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	workoutID, err := pathID(c, domainerrors.ErrWorkoutNotFound)
	if err != nil {
		return err
	}

	var input usecase.UpdateWorkoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workout input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	workout, err := h.uc.Update(c.Request().Context(), userID, workoutID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workout, "Workout updated")
}

// Delete removes a workout owned by the authenticated user.
func (h *WorkoutHandler) Delete(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	workoutID, err := pathID(c, domainerrors.ErrWorkoutNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, workoutID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted_id": workoutID}, "Workout deleted")
}

// WeeklyCalories totals calories burned over the trailing seven days.
func (h *WorkoutHandler) WeeklyCalories(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.WeeklyCalories(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Frequency buckets the user's workout counts per calendar week.
func (h *WorkoutHandler) Frequency(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	weeks, err := h.uc.WeeklyFrequency(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, weeks, "")
}
