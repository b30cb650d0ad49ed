package entity

// User usuario del sistema. Solo los activos pueden iniciar sesión.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt, nunca se serializa hacia clientes
	Email        string
	FullName     string
	Role         string
	IsActive     bool
}
