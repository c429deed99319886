package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// statusResponse mirrors the status/message envelope the SPA expects from
// register, delete, and role-creation endpoints.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type registerRequest struct {
	Username  string `json:"username"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userProfileResponse is the profile shape returned to clients. The JSON
// casing matches the Angular frontend's expectations.
type userProfileResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type userProfileWithRolesResponse struct {
	userProfileResponse
	Roles []string `json:"roles"`
}

type loginResponse struct {
	Token       string              `json:"token"`
	Expiration  time.Time           `json:"expiration"`
	UserProfile userProfileResponse `json:"userProfile"`
}
