package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vgmedeiros/pessoas-api/internal/application/auth"
	"github.com/vgmedeiros/pessoas-api/internal/application/usecase"
	"github.com/vgmedeiros/pessoas-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	PersonUC  *usecase.PersonUseCase
	UserUC    *usecase.UserUseCase
	JWTSecret string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Persons (protegido)
	persons := protected.Group("/persons")
	personHandler := NewPersonHandler(deps.PersonUC)
	persons.Post("/", personHandler.Create)
	persons.Get("/", personHandler.List)
	persons.Get("/:id", personHandler.GetByID)
	persons.Put("/:id", personHandler.Update)
	persons.Delete("/:id", personHandler.Delete)
	persons.Get("/:id/pdf", personHandler.FichaPDF)
	persons.Post("/:id/contacts", personHandler.AddContact)
	persons.Put("/:id/contacts/:contactId", personHandler.UpdateContact)
	persons.Delete("/:id/contacts/:contactId", personHandler.RemoveContact)

	// Users (protegido; listagem só para admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequireRole(string(entity.RoleAdmin)), userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Delete("/:id", userHandler.Delete)
}
