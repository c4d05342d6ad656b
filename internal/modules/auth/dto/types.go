package dto

type LoginInput struct {
	Email    string
	Password string
}

type SessionOutput struct {
	Token     string
	FirstName string
	LastName  string
	Email     string
}
