package req

type EditProfileRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Avatar string `json:"avatar" validate:"omitempty,max=2048"`
}
