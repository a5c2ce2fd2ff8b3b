package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP
// despachan por identidad con errors.Is; los usecases pueden envolverlos
// con contexto adicional vía fmt.Errorf("%w: ...").
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailRegistrado    = errors.New("el email ya está registrado")
	ErrCodigoRegistrado   = errors.New("ya existe una iglesia con este código")
	ErrCredenciales       = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("acceso denegado")
	ErrReferenciaNoExiste = errors.New("la entidad referenciada no existe")
	ErrTieneDependencias  = errors.New("no se puede eliminar: tiene registros dependientes")
	ErrSinAsignacion      = errors.New("el perfil no tiene iglesia o distrito asignado")
)
