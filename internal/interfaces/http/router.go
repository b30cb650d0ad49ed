package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/futurestec/crm-leads-api/internal/application/auth"
	"github.com/futurestec/crm-leads-api/internal/application/comment"
	"github.com/futurestec/crm-leads-api/internal/application/lead"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	LeadUC    *lead.LeadUseCase
	CommentUC *comment.CommentUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Leads: la ruta bulk se registra antes de :id para que no la capture el parámetro.
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Get("/", leadHandler.List)
	leads.Post("/", leadHandler.Create)
	leads.Put("/bulk/update", leadHandler.BulkUpdate)
	leads.Get("/:id", leadHandler.GetByID)
	leads.Put("/:id", leadHandler.Update)
	leads.Delete("/:id", leadHandler.Delete)

	// Comentarios por lead (protegido)
	commentHandler := NewCommentHandler(deps.CommentUC)
	leads.Get("/:id/comments", commentHandler.List)
	leads.Post("/:id/comments", commentHandler.Add)

	// Notificación de interés (protegido)
	interestHandler := NewInterestHandler(deps.LeadUC)
	protected.Post("/interest-email", interestHandler.Send)
}
