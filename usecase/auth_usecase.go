package usecase

import (
	"context"

	"direct-chat-api/dto/req"
	"direct-chat-api/dto/res"
)

type AuthUsecase interface {
	SendCode(ctx context.Context, request *req.SendCodeRequest) (res.SendCodeResponse, error)
	VerifyCode(ctx context.Context, request *req.VerifyRequest) (res.VerifyResponse, error)
}
