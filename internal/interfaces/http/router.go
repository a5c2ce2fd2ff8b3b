package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/iglesias-api/internal/application/auth"
	"github.com/tu-usuario/iglesias-api/internal/application/usecase"
	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	RegistroUC   *usecase.RegistroUseCase
	IglesiaUC    *usecase.IglesiaUseCase
	PastorUC     *usecase.PastorUseCase
	SecretariaUC *usecase.SecretariaUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	MiembroUC    *usecase.MiembroUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Registro: el alta de admin es pública, las de secretarias solo SuperADMIN
	registro := api.Group("/registro")
	registroHandler := NewRegistroHandler(deps.RegistroUC)
	registro.Post("/admin", registroHandler.RegistrarAdmin)
	registro.Post("/secretaria",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RolSuperAdmin),
		registroHandler.RegistrarSecretaria)
	registro.Post("/secretaria-asociacion",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RolSuperAdmin),
		registroHandler.RegistrarSecretariaAsociacion)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Iglesias: listar cualquier autenticado, mutaciones solo administración
	iglesias := protected.Group("/iglesias")
	iglesiaHandler := NewIglesiaHandler(deps.IglesiaUC)
	iglesias.Get("/", iglesiaHandler.List)
	adminIglesias := RequireRole(entity.RolSuperAdmin, entity.RolSecretariaAsociacion)
	iglesias.Post("/", adminIglesias, iglesiaHandler.Create)
	iglesias.Put("/:id", adminIglesias, iglesiaHandler.Update)
	iglesias.Delete("/:id", adminIglesias, iglesiaHandler.Delete)

	// Pastor (solo rol PASTOR)
	pastor := protected.Group("/pastor", RequireRole(entity.RolPastor))
	pastorHandler := NewPastorHandler(deps.PastorUC)
	pastor.Get("/perfil", pastorHandler.Perfil)
	pastor.Get("/iglesias", pastorHandler.Iglesias)
	pastor.Get("/miembros", pastorHandler.Miembros)
	pastor.Post("/bautismos", pastorHandler.RegistrarBautismo)
	pastor.Get("/bautismos", pastorHandler.Bautismos)
	pastor.Get("/bautismos/:id/certificado", pastorHandler.Certificado)

	// Secretaria de iglesia (solo rol SECRETARIA)
	secretaria := protected.Group("/secretaria", RequireRole(entity.RolSecretaria))
	secretariaHandler := NewSecretariaHandler(deps.SecretariaUC)
	secretaria.Get("/iglesia", secretariaHandler.PerfilIglesia)
	secretaria.Get("/miembros", secretariaHandler.Miembros)
	secretaria.Post("/eventos", secretariaHandler.CrearEvento)

	// Usuarios (solo SuperADMIN)
	usuarios := protected.Group("/usuarios", RequireRole(entity.RolSuperAdmin))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", usuarioHandler.Create)

	// Miembro (solo rol MIEMBRO)
	miembro := protected.Group("/miembro", RequireRole(entity.RolMiembro))
	miembroHandler := NewMiembroHandler(deps.MiembroUC)
	miembro.Post("/peticiones", miembroHandler.CrearPeticion)
	miembro.Get("/peticiones", miembroHandler.Peticiones)
	miembro.Post("/citas", miembroHandler.CrearCita)
	miembro.Get("/citas", miembroHandler.Citas)
}
