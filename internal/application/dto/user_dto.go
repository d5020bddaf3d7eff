package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida del login: mensaje + token JWT (formato del cliente web).
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// RegisterRequest entrada para registrar un usuario.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
