package handler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"direct-chat-api/apperror"
	"direct-chat-api/dto/res"
	"direct-chat-api/enum"
	"direct-chat-api/usecase"
)

type UploadHandler struct {
	usecase.UserUsecase
	UploadDir string
	*logrus.Logger
}

func NewUploadHandler(userUsecase usecase.UserUsecase, uploadDir string, logger *logrus.Logger) *UploadHandler {
	_ = os.MkdirAll(uploadDir, 0755)
	return &UploadHandler{UserUsecase: userUsecase, UploadDir: uploadDir, Logger: logger}
}

// Upload stores a multipart file under a uuid name and returns the reference
// a send_message attachment carries.
func (handler *UploadHandler) Upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return apperror.Validation("file is required")
	}

	stored := uuid.New().String() + filepath.Ext(file.Filename)
	if err := ctx.SaveFile(file, filepath.Join(handler.UploadDir, stored)); err != nil {
		handler.Logger.WithError(err).Errorln("failed to store upload")
		return apperror.Storage("failed to store file", err)
	}

	kind := enum.KindFromContentType(file.Header.Get("Content-Type"))
	return ctx.Status(fiber.StatusOK).JSON(res.UploadResponse{
		URL:  fmt.Sprintf("/uploads/%s", stored),
		Kind: string(kind),
		Name: file.Filename,
	})
}

// UploadAvatar stores the file and points the caller's profile at it.
func (handler *UploadHandler) UploadAvatar(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	file, err := ctx.FormFile("file")
	if err != nil {
		return apperror.Validation("file is required")
	}

	stored := uuid.New().String() + filepath.Ext(file.Filename)
	if err := ctx.SaveFile(file, filepath.Join(handler.UploadDir, stored)); err != nil {
		handler.Logger.WithError(err).Errorln("failed to store avatar")
		return apperror.Storage("failed to store file", err)
	}

	avatarURL := fmt.Sprintf("/uploads/%s", stored)
	user, err := handler.UserUsecase.UpdateAvatar(ctx.Context(), userID, avatarURL)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}
