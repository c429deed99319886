package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/identitykit/identity-service/internal/core/ports"
)

// UserHandler handles profile retrieval, deletion, and listing.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Get returns a user's profile with its role names.
//
// @Summary      Get a user profile by id
// @Tags         authentication
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userProfileWithRolesResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/authentication/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileWithRoles(user))
}

// Delete removes a user by id.
//
// @Summary      Delete a user by id
// @Tags         authentication
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  statusResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/authentication/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{
		Status:  "Success",
		Message: "user deleted successfully",
	})
}

// ListAll returns every user with its current role set.
//
// @Summary      List all users
// @Tags         authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userProfileWithRolesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/authentication/listall [get]
func (h *UserHandler) ListAll(c echo.Context) error {
	users, err := h.userService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userProfileWithRolesResponse, len(users))
	for i := range users {
		out[i] = toProfileWithRoles(&users[i])
	}
	return c.JSON(http.StatusOK, out)
}
