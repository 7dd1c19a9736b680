package routers

import (
	"fmt"
	"larib-portal/internal/app/config"
	"larib-portal/internal/app/delivery/http/middlewares"
	"larib-portal/internal/app/services/core/auth"
	"larib-portal/internal/app/services/core/cases"
	"larib-portal/internal/app/services/core/leaves"
	"larib-portal/internal/app/services/core/users"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	caseController *cases.CaseController,
	leaveController *leaves.LeaveController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/cases", func(r chi.Router) {
				attachCaseRoutes(r, middlewares, caseController)
			})

			r.Route("/leaves", func(r chi.Router) {
				attachLeaveRoutes(r, middlewares, leaveController)
			})

			r.Route("/holidays", func(r chi.Router) {
				attachHolidayRoutes(r, middlewares, leaveController)
			})
		})
	})
}
