package dto

// -------- Core auth --------

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,password_strength"`
}

func (r *RegisterRequest) Validate() error { return validateStruct(r) }

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error { return validateStruct(r) }

// -------- Profile self-service --------

// Either field may be omitted; empty means "keep current value".
type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"omitempty,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func (r *UpdateProfileRequest) Validate() error { return validateStruct(r) }

type PasswordChangeRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,password_strength"`
}

func (r *PasswordChangeRequest) Validate() error { return validateStruct(r) }
