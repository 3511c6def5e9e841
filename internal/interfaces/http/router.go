package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RobertArzolaC/arka/internal/application/auth"
	"github.com/RobertArzolaC/arka/internal/application/numbering"
	"github.com/RobertArzolaC/arka/internal/application/usecase"
	"github.com/RobertArzolaC/arka/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	BranchUC      *usecase.BranchUseCase
	CredentialsUC *usecase.CredentialsUseCase
	UserUC        *usecase.UserUseCase
	Registry      *numbering.RegistryUseCase
	Allocator     *numbering.AllocatorUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
//
// Política de roles: consulta solo lee; operador además asigna correlativos;
// admin administra empresa, sucursales, series, credenciales y usuarios.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	branchHandler := NewBranchHandler(deps.BranchUC)
	credentialsHandler := NewCredentialsHandler(deps.CredentialsUC)
	userHandler := NewUserHandler(deps.UserUC)
	seriesHandler := NewSeriesHandler(deps.Registry, deps.Allocator, deps.BranchUC)

	// Alta de empresa (público: bootstrap de un tenant nuevo, antes de que
	// exista usuario alguno para autenticar)
	api.Post("/companies", companyHandler.Create)
	api.Get("/companies", companyHandler.List)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)
	canAllocate := RequireRole(entity.RoleAdmin, entity.RoleOperador)

	// Companies
	companies := protected.Group("/companies")
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", adminOnly, companyHandler.Update)
	companies.Delete("/:id", adminOnly, companyHandler.Delete)

	// Credenciales de emisión electrónica (solo admin)
	companies.Put("/:id/credentials", adminOnly, credentialsHandler.SetCredentials)
	companies.Put("/:id/api-credentials", adminOnly, credentialsHandler.SetAPICredentials)
	companies.Post("/:id/certificate", adminOnly, credentialsHandler.UploadCertificate)
	companies.Get("/:id/certificate", adminOnly, credentialsHandler.GetCertificate)

	// Branches
	companies.Post("/:companyID/branches", adminOnly, branchHandler.Create)
	companies.Get("/:companyID/branches", branchHandler.List)
	branches := protected.Group("/branches")
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", adminOnly, branchHandler.Update)
	branches.Delete("/:id", adminOnly, branchHandler.Delete)

	// Series de numeración
	branches.Post("/:branchID/series", adminOnly, seriesHandler.Register)
	branches.Get("/:branchID/series", seriesHandler.List)
	series := protected.Group("/series")
	series.Delete("/:id", adminOnly, seriesHandler.Remove)
	series.Post("/:id/allocate", canAllocate, seriesHandler.Allocate)

	// Users (administración, solo admin)
	users := protected.Group("/users", adminOnly)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
}
