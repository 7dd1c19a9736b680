package routers

import (
	"larib-portal/internal/app/delivery/http/middlewares"
	"larib-portal/internal/app/services/core/leaves"

	"github.com/go-chi/chi/v5"
)

func attachLeaveRoutes(router chi.Router, middlewares *middlewares.Middlewares, leaveController *leaves.LeaveController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", leaveController.SubmitLeave)
	router.Get("/", leaveController.ListLeaves)
	router.Get("/balance", leaveController.GetLeaveBalance)
	router.Get("/excluded-days", leaveController.GetExcludedDays)
	router.Get("/{leaveID}", leaveController.GetLeave)
	router.Delete("/{leaveID}", leaveController.CancelLeave)

	router.With(middlewares.RequireAdmin).Post("/{leaveID}/approve", leaveController.ApproveLeave)
	router.With(middlewares.RequireAdmin).Post("/{leaveID}/reject", leaveController.RejectLeave)
}

func attachHolidayRoutes(router chi.Router, middlewares *middlewares.Middlewares, leaveController *leaves.LeaveController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", leaveController.GetHolidays)
	router.Get("/calendar", leaveController.GetHolidayCalendar)
}
