package req

type FindUserRequest struct {
	Phone string `json:"phone" validate:"required,min=8,max=20"`
}
