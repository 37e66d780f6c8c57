package http

import (
	"github.com/gofiber/fiber/v2"
	appauth "github.com/tu-usuario/contratos-api/internal/application/auth"
	"github.com/tu-usuario/contratos-api/internal/application/usecase"
	"github.com/tu-usuario/contratos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EntidadUC      *usecase.EntidadUseCase
	TipoContratoUC *usecase.TipoContratoUseCase
	ContratoUC     *usecase.ContratoUseCase
	OfertaUC       *usecase.OfertaUseCase
	TrabajadorUC   *usecase.TrabajadorUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	AuthUC         *appauth.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Entidades (protegido)
	entidades := protected.Group("/entidades")
	entidadHandler := NewEntidadHandler(deps.EntidadUC)
	entidades.Post("/", entidadHandler.Create)
	entidades.Get("/", entidadHandler.List)
	entidades.Post("/filter/:page/:limit", entidadHandler.Filter)
	entidades.Get("/:id", entidadHandler.GetByID)
	entidades.Put("/:id", entidadHandler.Update)
	entidades.Delete("/:id", entidadHandler.Delete)

	// Tipos de contrato (protegido)
	tipos := protected.Group("/tipos-contrato")
	tipoHandler := NewTipoContratoHandler(deps.TipoContratoUC)
	tipos.Post("/", tipoHandler.Create)
	tipos.Get("/", tipoHandler.List)
	tipos.Get("/:id", tipoHandler.GetByID)
	tipos.Put("/:id", tipoHandler.Update)
	tipos.Delete("/:id", tipoHandler.Delete)

	// Contratos (protegido). Las rutas fijas van antes que /:id para que Fiber
	// no capture "siguiente-consecutivo" como id.
	contratos := protected.Group("/contratos")
	contratoHandler := NewContratoHandler(deps.ContratoUC)
	contratos.Post("/", contratoHandler.Create)
	contratos.Get("/", contratoHandler.List)
	contratos.Get("/siguiente-consecutivo/:year", contratoHandler.SiguienteConsecutivo)
	contratos.Get("/proximos-a-vencer", contratoHandler.ProximosAVencer)
	contratos.Post("/filter/:page/:limit", contratoHandler.Filter)
	contratos.Get("/:id", contratoHandler.GetByID)
	contratos.Put("/:id", contratoHandler.Update)
	contratos.Delete("/:id", contratoHandler.Delete)

	// Ofertas (protegido)
	ofertas := protected.Group("/ofertas")
	ofertaHandler := NewOfertaHandler(deps.OfertaUC)
	ofertas.Post("/", ofertaHandler.Create)
	ofertas.Get("/", ofertaHandler.List)
	ofertas.Post("/filter/:page/:limit", ofertaHandler.Filter)
	ofertas.Get("/:id", ofertaHandler.GetByID)
	ofertas.Put("/:id", ofertaHandler.Update)
	ofertas.Delete("/:id", ofertaHandler.Delete)

	// Trabajadores autorizados y asignaciones (protegido)
	trabajadores := protected.Group("/trabajadores")
	trabajadorHandler := NewTrabajadorHandler(deps.TrabajadorUC)
	trabajadores.Post("/", trabajadorHandler.Create)
	trabajadores.Get("/", trabajadorHandler.List)
	trabajadores.Delete("/asignaciones/:id_asignacion", trabajadorHandler.Desasignar)
	trabajadores.Get("/:id", trabajadorHandler.GetByID)
	trabajadores.Put("/:id", trabajadorHandler.Update)
	trabajadores.Delete("/:id", trabajadorHandler.Delete)
	trabajadores.Get("/:id/contratos", trabajadorHandler.ContratosAsignados)
	trabajadores.Put("/:id/contratos/sync", trabajadorHandler.SincronizarContratos)
	trabajadores.Post("/:id_trabajador/contratos/:id_contrato", trabajadorHandler.Asignar)

	// Usuarios (protegido, solo admin)
	usuarios := protected.Group("/usuarios", RequireRol(entity.RolAdmin))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/filter/:page/:limit", usuarioHandler.Filter)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)
}
