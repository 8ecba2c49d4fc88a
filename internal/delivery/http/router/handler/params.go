package handler

import (
	"strconv"

	deliverycontext "fittrack/internal/delivery/context"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// authenticatedUserID pulls the user id set by the auth middleware.
func authenticatedUserID(c echo.Context) (int64, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return 0, domainerrors.ErrUnauthorized.WithDetails("no authenticated user on request")
	}

	return userID, nil
}

// pathID parses the :id path parameter. A non-numeric id can never match a
// stored row, so it reports the resource's not-found error.
func pathID(c echo.Context, notFound *domainerrors.BaseError) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound.WithDetails("invalid id")
	}

	return id, nil
}

// bindRange binds and validates the optional start_date/end_date query
// parameters. A bare date parameter pins both bounds to one day.
func bindRange(c echo.Context) (*usecase.ListRangeInput, error) {
	var input usecase.ListRangeInput
	if err := c.Bind(&input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid date range parameters")
	}

	if date := c.QueryParam("date"); date != "" {
		input.StartDate = date
		input.EndDate = date
	}

	if err := c.Validate(&input); err != nil {
		return nil, err
	}

	return &input, nil
}
