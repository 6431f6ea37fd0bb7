package models

import (
	"time"
)

// UserRole is the role stored on a user account
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// User defines the user model based on the 'users' table
type User struct {
	ID             int64      `json:"id" db:"id" example:"1"`                                                  // Unique identifier for the user
	FirstName      string     `json:"firstName" db:"first_name" example:"Emma"`                                // User's first name
	LastName       string     `json:"lastName" db:"last_name" example:"Johnson"`                               // User's last name
	Email          string     `json:"email" db:"email" example:"emma.johnson@stu.uni-munich.de"`               // Institutional email address, unique
	Password       string     `json:"-" db:"password"`                                                         // Bcrypt hash, excluded from JSON
	Role           UserRole   `json:"role" db:"role" example:"student"`                                        // student or admin
	IsMentor       bool       `json:"isMentor" db:"is_mentor" example:"false"`                                 // Set when a mentor profile is created
	StudentID      *string    `json:"studentId,omitempty" db:"student_id"`                                     // Optional student number
	PhoneNumber    *string    `json:"phoneNumber,omitempty" db:"phone_number"`                                 // Optional phone number
	ProfilePicture *string    `json:"profilePicture,omitempty" db:"profile_picture"`                           // Optional picture URL
	IsActive       bool       `json:"isActive" db:"is_active" example:"true"`                                  // Whether the account is active
	LastLogin      *time.Time `json:"lastLogin,omitempty" db:"last_login" example:"2024-04-20T18:00:00Z"`      // Timestamp of the last login (nullable)
	CreatedAt      time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`                // Timestamp when the user was created
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`                // Timestamp when the user was last updated
}
