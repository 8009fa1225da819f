package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"direct-chat-api/handler"
	"direct-chat-api/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.MessageHandler
	*handler.UploadHandler
	UploadDir string
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api")
	app.Post("/auth/send-code", rc.AuthHandler.SendCode)
	app.Post("/auth/verify", rc.AuthHandler.VerifyCode)

	rc.App.Static("/uploads", rc.UploadDir)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api")
	app.Use(rc.Middleware.JWTProtected)
	app.Use(rc.Middleware.ExtractUserID)

	app.Put("/auth/profile", rc.AuthHandler.UpdateProfile)

	app.Get("/conversations", rc.MessageHandler.GetConversations)
	app.Get("/messages/:contactId", rc.MessageHandler.GetMessages)
	app.Post("/messages/forward", rc.MessageHandler.ForwardMessage)

	app.Get("/users", rc.UserHandler.GetAllUsers)
	app.Post("/users/find", rc.UserHandler.FindByPhone)
	app.Post("/contacts/rename", rc.UserHandler.RenameContact)

	app.Post("/upload", rc.UploadHandler.Upload)
	app.Post("/profile/avatar", rc.UploadHandler.UploadAvatar)
}

func (rc *ConfigRoute) GetWebSocketRoute(wsHandler *handler.WebSocketHandler) {
	rc.App.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	rc.App.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
