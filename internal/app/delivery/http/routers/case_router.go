package routers

import (
	"larib-portal/internal/app/delivery/http/middlewares"
	"larib-portal/internal/app/services/core/cases"

	"github.com/go-chi/chi/v5"
)

func attachCaseRoutes(router chi.Router, middlewares *middlewares.Middlewares, caseController *cases.CaseController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", caseController.CreateCase)
	router.Get("/", caseController.ListCases)
	router.Get("/{caseID}", caseController.GetCase)
	router.Put("/{caseID}", caseController.UpdateCase)
	router.Delete("/{caseID}", caseController.DeleteCase)
	router.Post("/{caseID}/attachments", caseController.UploadAttachment)
	router.Get("/{caseID}/attachments/{object}", caseController.GetAttachmentURL)
}
