package req

type SendCodeRequest struct {
	Phone string `json:"phone" validate:"required,min=8,max=20"`
}
