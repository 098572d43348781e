package dto

type LoginRequestDTO struct {
	Login    string `json:"login" example:"ops.admin"`
	Password string `json:"password" example:"s3cret"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
	Role  string `json:"role" example:"ADMIN"`
}

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"finance.lead"`
	Password string `json:"password" example:"s3cret"`
	Role     string `json:"role" example:"FINANCE"`
}
