package handler

import "github.com/identitykit/identity-service/internal/core/domain"

// toProfileResponse maps a user record to its response DTO. The password
// hash and security stamp never cross this boundary.
func toProfileResponse(u *domain.User) userProfileResponse {
	return userProfileResponse{
		ID:        u.ID,
		Email:     u.Email,
		UserName:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func toProfileWithRoles(u *domain.User) userProfileWithRolesResponse {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return userProfileWithRolesResponse{
		userProfileResponse: toProfileResponse(u),
		Roles:               roles,
	}
}
