package user

import "time"

type Role string

const (
	RoleCitizen Role = "citizen"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	NationalID   string    `json:"national_id"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
