package entity

// User representa un usuario del dashboard.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt; nunca se persiste en claro
}
