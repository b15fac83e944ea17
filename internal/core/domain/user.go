package domain

type User struct {
	ID           uint64
	Username     string
	Email        string
	PasswordHash string
}

type CreateUserInput struct {
	Username     string
	Email        string
	PasswordHash string
}
