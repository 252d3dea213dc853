package handler

import (
	"errors"
	"net/http"

	"github.com/kev-n-dev/sky-way/internal/dto"
	"github.com/kev-n-dev/sky-way/internal/middleware"
	"github.com/kev-n-dev/sky-way/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	api := e.Group("/api", requireAuth)
	api.GET("/get_user/:id", h.GetUser)
	api.PUT("/update_user/:id", h.UpdateUser)
	api.DELETE("/delete_user/:id", h.DeleteUser)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id := c.Param("id")
	if middleware.UserID(c) != id {
		return echo.NewHTTPError(http.StatusForbidden, "cannot access another user's account")
	}

	user, err := h.users.GetUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.Success(dto.ToUserResponse(user)))
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	id := c.Param("id")
	if middleware.UserID(c) != id {
		return echo.NewHTTPError(http.StatusForbidden, "cannot modify another user's account")
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.UpdateUser(c.Request().Context(), id, service.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrEmailTaken):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.Success(dto.ToUserResponse(user)))
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id := c.Param("id")
	if middleware.UserID(c) != id {
		return echo.NewHTTPError(http.StatusForbidden, "cannot delete another user's account")
	}

	if err := h.users.DeleteUser(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.Success(nil))
}
