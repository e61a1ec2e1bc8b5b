package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Documental-api/internal/application/auth"
	"github.com/jhoicas/Documental-api/internal/application/document"
	"github.com/jhoicas/Documental-api/internal/application/usecase"
	"github.com/jhoicas/Documental-api/internal/domain/entity"
	"github.com/jhoicas/Documental-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	DocumentUC   *document.DocumentUseCase
	ProductionUC *usecase.ProductionUseCase
	CompanyUC    *usecase.CompanyUseCase
	Diagnostics  repository.DiagnosticsRepository
	JWTSecret    string
}

// Router registra las rutas de la API. Todo lo que toca datos del tenant pasa
// por AuthMiddleware; /status además exige role admin.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	productionHandler := NewProductionHandler(deps.ProductionUC)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	diagnosticsHandler := NewDiagnosticsHandler(deps.Diagnostics)

	// Auth (público)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Companies (público: provisión de tenants, el registro exige una existente)
	app.Post("/companies", companyHandler.Create)
	app.Get("/companies", companyHandler.List)
	app.Get("/companies/:id", companyHandler.GetByID)

	// Diagnóstico público: solo conectividad, sin datos
	app.Get("/db", diagnosticsHandler.DBProbe)

	// Rutas protegidas (requieren Bearer Token)
	guard := AuthMiddleware(deps.JWTSecret)

	app.Get("/validate-token", guard, authHandler.ValidateToken)
	app.Get("/user", guard, authHandler.CurrentUser)

	app.Get("/productions", guard, productionHandler.List)
	app.Post("/productions", guard, productionHandler.Create)

	app.Get("/documents", guard, documentHandler.List)
	app.Post("/upload", guard, documentHandler.Upload)
	app.Get("/download/:id", guard, documentHandler.Download)

	// Diagnóstico de operador: autenticado y solo admin
	app.Get("/status", guard, RequireRole(entity.RoleAdmin), diagnosticsHandler.Status)
}
