package routers

import (
	"larib-portal/internal/app/delivery/http/middlewares"
	"larib-portal/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.Use(middlewares.Authenticate)

	router.Get("/profile", userController.GetProfile)
	router.Put("/profile", userController.UpdateProfile)
	router.Post("/profile/avatar", userController.UploadAvatar)

	router.With(middlewares.RequireAdmin).Get("/", userController.ListUsers)
	router.With(middlewares.RequireAdmin).Put("/{userID}/role", userController.UpdateUserRole)
}
