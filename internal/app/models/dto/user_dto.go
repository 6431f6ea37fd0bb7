package dto

// CreateUserRequest is the payload for POST /users. The email must belong to
// the institutional domain; the uniemail rule is registered at startup.
type CreateUserRequest struct {
	FirstName      string  `json:"firstName" binding:"required"`
	LastName       string  `json:"lastName" binding:"required"`
	Email          string  `json:"email" binding:"required,email,uniemail"`
	Password       string  `json:"password" binding:"required,min=6"`
	Role           string  `json:"role" binding:"omitempty,oneof=student admin"`
	IsMentor       *bool   `json:"isMentor"`
	StudentID      *string `json:"studentId"`
	PhoneNumber    *string `json:"phoneNumber"`
	ProfilePicture *string `json:"profilePicture"`
}

// UpdateUserRequest is the payload for PATCH /users/:id. Only present fields
// are merged into the stored record.
type UpdateUserRequest struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email" binding:"omitempty,email,uniemail"`
	Password       *string `json:"password" binding:"omitempty,min=6"`
	Role           *string `json:"role" binding:"omitempty,oneof=student admin"`
	IsMentor       *bool   `json:"isMentor"`
	StudentID      *string `json:"studentId"`
	PhoneNumber    *string `json:"phoneNumber"`
	ProfilePicture *string `json:"profilePicture"`
	IsActive       *bool   `json:"isActive"`
}
