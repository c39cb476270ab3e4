package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=6"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Phone    string `json:"phone" form:"phone"`
	Address  string `json:"address" form:"address"`
}

type AddCartItemRequest struct {
	PerfumeID string `json:"perfume_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

// Quantity is a pointer so zero survives binding: setting a line to zero
// removes it rather than failing validation.
type SetCartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type CreatePerfumeRequest struct {
	Name          string `json:"name" form:"name" binding:"required"`
	Brand         string `json:"brand" form:"brand" binding:"required"`
	Category      string `json:"category" form:"category" binding:"required"`
	Price         int    `json:"price" form:"price" binding:"required,min=0"`
	Description   string `json:"description" form:"description"`
	Volume        string `json:"volume" form:"volume"`
	Concentration string `json:"concentration" form:"concentration"`
	InStock       bool   `json:"in_stock" form:"in_stock"`
	ImageURL      string `json:"image_url" form:"image_url"`
	NotesTop      string `json:"notes_top" form:"notes_top"`
	NotesHeart    string `json:"notes_heart" form:"notes_heart"`
	NotesBase     string `json:"notes_base" form:"notes_base"`
}

type UpdatePerfumeRequest struct {
	Name          string `json:"name" form:"name"`
	Brand         string `json:"brand" form:"brand"`
	Category      string `json:"category" form:"category"`
	Price         *int   `json:"price" form:"price"`
	Description   string `json:"description" form:"description"`
	Volume        string `json:"volume" form:"volume"`
	Concentration string `json:"concentration" form:"concentration"`
	InStock       *bool  `json:"in_stock" form:"in_stock"`
	ImageURL      string `json:"image_url" form:"image_url"`
	NotesTop      string `json:"notes_top" form:"notes_top"`
	NotesHeart    string `json:"notes_heart" form:"notes_heart"`
	NotesBase     string `json:"notes_base" form:"notes_base"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  UserWithProfile `json:"user"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationLinks struct {
	Self string `json:"self"`
	Next string `json:"next,omitempty"`
	Prev string `json:"prev,omitempty"`
}

type PaginationResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    interface{}    `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}

type HATEOASResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    interface{}     `json:"data"`
	Meta    PaginationMeta  `json:"meta"`
	Links   PaginationLinks `json:"links"`
}
