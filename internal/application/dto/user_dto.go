package dto

import "time"

// RegisterRequest entrada para el registro inicial (solo mientras no haya usuarios).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse salida de login y registro: perfil + token de sesión.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// InitializedResponse indica si el registro público ya está cerrado.
type InitializedResponse struct {
	Initialized bool `json:"initialized"`
}

// UpdateProfileRequest entrada para actualizar el perfil propio; siempre exige
// la contraseña actual.
type UpdateProfileRequest struct {
	CurrentPassword string  `json:"current_password" validate:"required"`
	Name            *string `json:"name" validate:"omitempty,max=200"`
	Email           *string `json:"email" validate:"omitempty,email"`
	NewPassword     *string `json:"new_password" validate:"omitempty,min=8"`
}
