package config

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"direct-chat-api/apperror"
	"direct-chat-api/config/common"
	"direct-chat-api/dto/res"
)

func NewFiber(cfg *common.Config) *fiber.App {
	appName, _ := cfg.GetAppConfig()
	return fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		AppName:       appName,
		ErrorHandler:  errorHandler,
	})
}

// errorHandler translates every error that escapes a handler into the JSON
// error body; storage causes never reach the client.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(res.ErrorResponse{
			Status:     fiberErr.Message,
			StatusCode: fiberErr.Code,
			Error:      fiberErr.Message,
		})
	}

	status := apperror.StatusCode(err)
	return c.Status(status).JSON(res.ErrorResponse{
		Status:     fiber.ErrInternalServerError.Message,
		StatusCode: status,
		Error:      apperror.PublicMessage(err),
	})
}
