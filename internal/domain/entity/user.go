package entity

import "time"

// User representa un usuario del sistema (personal de la farmacia).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
