package domain

type UserId = int64

type User struct {
	Id       UserId `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PassHash string `json:"-"`
}

type Credentials struct {
	Email    string
	Password string
}
