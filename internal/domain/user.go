package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Role          Role      `json:"role"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Gender        Gender    `json:"gender"`
	Nationality   string    `json:"nationality"`
	CanPostAJob   bool      `json:"can_post_ajob"`
	JobsPosted    int32     `json:"jobs_posted"`
	NumberOfHires int32     `json:"number_of_hires"`
	IsActive      bool      `json:"is_active"`
	PasswordHash  string    `json:"-"`
	DateJoined    time.Time `json:"date_joined"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
