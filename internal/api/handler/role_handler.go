package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/identitykit/identity-service/internal/core/ports"
)

// RoleHandler handles role catalogue management and per-user assignment.
type RoleHandler struct {
	roleService ports.RoleService
}

func NewRoleHandler(roleService ports.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// Create adds a role to the catalogue. The role name is passed as a query
// parameter, matching the SPA's existing contract.
//
// @Summary      Create a role
// @Tags         authentication
// @Produce      json
// @Security     BearerAuth
// @Param        roleName  query     string  true  "Role name"
// @Success      200       {object}  statusResponse
// @Failure      400       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      409       {object}  errorResponse
// @Failure      500       {object}  errorResponse
// @Router       /api/v1/authentication/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if _, err := h.roleService.CreateRole(c.Request().Context(), actor, c.QueryParam("roleName")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{
		Status:  "Success",
		Message: "role created successfully",
	})
}

// AddRoles grants the posted role names to the user and returns the
// updated profile.
//
// @Summary      Add roles to a user
// @Tags         authentication
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string    true  "User id"
// @Param        body  body      []string  true  "Role names to add"
// @Success      200   {object}  userProfileWithRolesResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/authentication/roles/{id}/addroles [post]
func (h *RoleHandler) AddRoles(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var names []string
	if err := c.Bind(&names); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.roleService.AddRoles(c.Request().Context(), actor, c.Param("id"), names)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileWithRoles(user))
}

// RemoveRoles revokes the posted role names from the user and returns the
// updated profile.
//
// @Summary      Remove roles from a user
// @Tags         authentication
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string    true  "User id"
// @Param        body  body      []string  true  "Role names to remove"
// @Success      200   {object}  userProfileWithRolesResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/authentication/roles/{id}/removeroles [post]
func (h *RoleHandler) RemoveRoles(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var names []string
	if err := c.Bind(&names); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.roleService.RemoveRoles(c.Request().Context(), actor, c.Param("id"), names)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileWithRoles(user))
}
