package domain

type User struct {
	ID           uint64
	Email        string
	Roles        []string
	PasswordHash string
}

const RoleUser = "ROLE_USER"
