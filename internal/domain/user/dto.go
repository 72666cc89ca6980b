package user

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// SignupRequest carries the signup form fields. All six are required before
// any account creation is attempted.
type SignupRequest struct {
	Username   string `form:"username" binding:"required"`
	Email      string `form:"email" binding:"required"`
	Password   string `form:"password" binding:"required"`
	Name       string `form:"name" binding:"required"`
	Phone      string `form:"phone" binding:"required"`
	NationalID string `form:"national_id" binding:"required"`
}
