package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/iglesias-api/internal/application/dto"
	"github.com/tu-usuario/iglesias-api/internal/domain"
	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
)

// CertificadoBautismo datos para generar el certificado en PDF.
type CertificadoBautismo struct {
	NombreMiembro string
	NombrePastor  string
	NombreIglesia string
	Fecha         time.Time
	Lugar         string
}

// CertificadoGenerator genera el PDF del certificado de bautismo.
type CertificadoGenerator interface {
	GenerarCertificado(cert CertificadoBautismo) ([]byte, error)
}

// PastorUseCase operaciones del pastor autenticado, acotadas a su distrito.
type PastorUseCase struct {
	pastores     repository.PastorRepository
	usuarios     repository.UsuarioRepository
	iglesias     repository.IglesiaRepository
	miembros     repository.MiembroRepository
	bautismos    repository.BautismoRepository
	distritos    repository.DistritoRepository
	asociaciones repository.AsociacionRepository
	certificados CertificadoGenerator
}

// NewPastorUseCase construye el caso de uso del pastor.
func NewPastorUseCase(
	pastores repository.PastorRepository,
	usuarios repository.UsuarioRepository,
	iglesias repository.IglesiaRepository,
	miembros repository.MiembroRepository,
	bautismos repository.BautismoRepository,
	distritos repository.DistritoRepository,
	asociaciones repository.AsociacionRepository,
	certificados CertificadoGenerator,
) *PastorUseCase {
	return &PastorUseCase{
		pastores:     pastores,
		usuarios:     usuarios,
		iglesias:     iglesias,
		miembros:     miembros,
		bautismos:    bautismos,
		distritos:    distritos,
		asociaciones: asociaciones,
		certificados: certificados,
	}
}

// Perfil devuelve los datos del pastor con su distrito y asociación resueltos.
func (uc *PastorUseCase) Perfil(ctx context.Context, pastorID string) (*dto.PerfilPastorResponse, error) {
	pastor, err := uc.pastores.GetByID(ctx, pastorID)
	if err != nil {
		return nil, err
	}
	if pastor == nil {
		return nil, fmt.Errorf("%w: pastor", domain.ErrNotFound)
	}
	usuario, err := uc.usuarios.GetByPastorID(ctx, pastorID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, fmt.Errorf("%w: usuario del pastor", domain.ErrNotFound)
	}

	resp := &dto.PerfilPastorResponse{
		ID:              pastor.ID,
		Nombre:          usuario.Nombre,
		Apellidos:       usuario.Apellidos,
		Email:           usuario.Email,
		Telefono:        usuario.Telefono,
		FechaOrdenacion: pastor.FechaOrdenacion,
	}
	if pastor.DistritoID != nil {
		if distrito, err := uc.distritos.GetByID(ctx, *pastor.DistritoID); err != nil {
			return nil, err
		} else if distrito != nil {
			resp.Distrito = distrito.Nombre
		}
	}
	if pastor.AsociacionID != nil {
		if asociacion, err := uc.asociaciones.GetByID(ctx, *pastor.AsociacionID); err != nil {
			return nil, err
		} else if asociacion != nil {
			resp.Asociacion = asociacion.Nombre
		}
	}
	return resp, nil
}

// Iglesias lista las iglesias del distrito del pastor.
func (uc *PastorUseCase) Iglesias(ctx context.Context, pastorID string) (*dto.IglesiaListResponse, error) {
	pastor, err := uc.pastorConDistrito(ctx, pastorID)
	if err != nil {
		return nil, err
	}
	iglesias, err := uc.iglesias.ListByDistrito(ctx, *pastor.DistritoID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.IglesiaResponse, 0, len(iglesias))
	for _, i := range iglesias {
		data = append(data, toIglesiaResponse(i, 0, 0))
	}
	return &dto.IglesiaListResponse{Message: "Iglesias del distrito obtenidas exitosamente", Data: data}, nil
}

// Miembros lista los miembros de todas las iglesias del distrito del pastor.
func (uc *PastorUseCase) Miembros(ctx context.Context, pastorID string) (*dto.MiembroListResponse, error) {
	pastor, err := uc.pastorConDistrito(ctx, pastorID)
	if err != nil {
		return nil, err
	}
	miembros, err := uc.miembros.ListByDistrito(ctx, *pastor.DistritoID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MiembroResponse, 0, len(miembros))
	for _, m := range miembros {
		data = append(data, uc.toMiembroResponse(ctx, m))
	}
	return &dto.MiembroListResponse{Message: "Miembros del distrito obtenidos exitosamente", Data: data}, nil
}

// RegistrarBautismo registra un bautismo oficiado por el pastor. El miembro
// debe existir y pertenecer a una iglesia del distrito del pastor.
func (uc *PastorUseCase) RegistrarBautismo(ctx context.Context, pastorID string, in dto.RegistrarBautismoRequest) (*dto.BautismoDataResponse, error) {
	if in.MiembroID == "" {
		return nil, fmt.Errorf("%w: miembroId es requerido", domain.ErrValidation)
	}
	if in.Fecha.IsZero() {
		return nil, fmt.Errorf("%w: fecha es requerida", domain.ErrValidation)
	}
	pastor, err := uc.pastorConDistrito(ctx, pastorID)
	if err != nil {
		return nil, err
	}
	miembro, err := uc.miembros.GetByID(ctx, in.MiembroID)
	if err != nil {
		return nil, err
	}
	if miembro == nil {
		return nil, fmt.Errorf("%w: el miembro no existe", domain.ErrReferenciaNoExiste)
	}
	if err := uc.validarMiembroEnDistrito(ctx, miembro, *pastor.DistritoID); err != nil {
		return nil, err
	}

	bautismo := &entity.Bautismo{
		ID:        uuid.New().String(),
		MiembroID: in.MiembroID,
		PastorID:  pastorID,
		Fecha:     in.Fecha,
		Lugar:     in.Lugar,
		CreatedAt: time.Now(),
	}
	if err := uc.bautismos.Create(ctx, bautismo); err != nil {
		return nil, err
	}
	return &dto.BautismoDataResponse{
		Message: "Bautismo registrado exitosamente",
		Data:    uc.toBautismoResponse(ctx, bautismo),
	}, nil
}

// Bautismos lista los bautismos oficiados por el pastor.
func (uc *PastorUseCase) Bautismos(ctx context.Context, pastorID string) (*dto.BautismoListResponse, error) {
	bautismos, err := uc.bautismos.ListByPastor(ctx, pastorID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.BautismoResponse, 0, len(bautismos))
	for _, b := range bautismos {
		data = append(data, uc.toBautismoResponse(ctx, b))
	}
	return &dto.BautismoListResponse{Message: "Bautismos obtenidos exitosamente", Data: data}, nil
}

// CertificadoPDF genera el certificado en PDF de un bautismo oficiado por el
// pastor autenticado. Bautismos de otros pastores devuelven ErrForbidden.
func (uc *PastorUseCase) CertificadoPDF(ctx context.Context, pastorID, bautismoID string) ([]byte, error) {
	bautismo, err := uc.bautismos.GetByID(ctx, bautismoID)
	if err != nil {
		return nil, err
	}
	if bautismo == nil {
		return nil, fmt.Errorf("%w: bautismo", domain.ErrNotFound)
	}
	if bautismo.PastorID != pastorID {
		return nil, fmt.Errorf("%w: el bautismo pertenece a otro pastor", domain.ErrForbidden)
	}

	cert := CertificadoBautismo{Fecha: bautismo.Fecha}
	if bautismo.Lugar != nil {
		cert.Lugar = *bautismo.Lugar
	}
	if usuarioMiembro, err := uc.usuarios.GetByMiembroID(ctx, bautismo.MiembroID); err != nil {
		return nil, err
	} else if usuarioMiembro != nil {
		cert.NombreMiembro = usuarioMiembro.Nombre + " " + usuarioMiembro.Apellidos
	}
	if usuarioPastor, err := uc.usuarios.GetByPastorID(ctx, pastorID); err != nil {
		return nil, err
	} else if usuarioPastor != nil {
		cert.NombrePastor = usuarioPastor.Nombre + " " + usuarioPastor.Apellidos
	}
	if miembro, err := uc.miembros.GetByID(ctx, bautismo.MiembroID); err != nil {
		return nil, err
	} else if miembro != nil && miembro.IglesiaID != nil {
		if iglesia, err := uc.iglesias.GetByID(ctx, *miembro.IglesiaID); err != nil {
			return nil, err
		} else if iglesia != nil {
			cert.NombreIglesia = iglesia.Nombre
		}
	}

	return uc.certificados.GenerarCertificado(cert)
}

func (uc *PastorUseCase) pastorConDistrito(ctx context.Context, pastorID string) (*entity.Pastor, error) {
	pastor, err := uc.pastores.GetByID(ctx, pastorID)
	if err != nil {
		return nil, err
	}
	if pastor == nil {
		return nil, fmt.Errorf("%w: pastor", domain.ErrNotFound)
	}
	if pastor.DistritoID == nil || *pastor.DistritoID == "" {
		return nil, fmt.Errorf("%w: el pastor no tiene distrito asignado", domain.ErrSinAsignacion)
	}
	return pastor, nil
}

func (uc *PastorUseCase) validarMiembroEnDistrito(ctx context.Context, miembro *entity.Miembro, distritoID string) error {
	if miembro.IglesiaID == nil {
		return fmt.Errorf("%w: el miembro no pertenece a ninguna iglesia del distrito", domain.ErrForbidden)
	}
	iglesia, err := uc.iglesias.GetByID(ctx, *miembro.IglesiaID)
	if err != nil {
		return err
	}
	if iglesia == nil || iglesia.DistritoID != distritoID {
		return fmt.Errorf("%w: el miembro no pertenece a ninguna iglesia del distrito", domain.ErrForbidden)
	}
	return nil
}

// toMiembroResponse resuelve los datos de usuario del miembro. Si el miembro
// no tiene cuenta asociada se devuelven solo los datos del perfil.
func (uc *PastorUseCase) toMiembroResponse(ctx context.Context, m *entity.Miembro) dto.MiembroResponse {
	resp := dto.MiembroResponse{ID: m.ID, FechaNacimiento: m.FechaNacimiento}
	if m.IglesiaID != nil {
		resp.IglesiaID = *m.IglesiaID
	}
	if usuario, err := uc.usuarios.GetByMiembroID(ctx, m.ID); err == nil && usuario != nil {
		resp.Nombre = usuario.Nombre
		resp.Apellidos = usuario.Apellidos
		resp.Email = usuario.Email
		resp.Telefono = usuario.Telefono
	}
	return resp
}

func (uc *PastorUseCase) toBautismoResponse(ctx context.Context, b *entity.Bautismo) dto.BautismoResponse {
	resp := dto.BautismoResponse{
		ID:        b.ID,
		MiembroID: b.MiembroID,
		PastorID:  b.PastorID,
		Fecha:     b.Fecha,
	}
	if b.Lugar != nil {
		resp.Lugar = *b.Lugar
	}
	if usuario, err := uc.usuarios.GetByMiembroID(ctx, b.MiembroID); err == nil && usuario != nil {
		resp.NombreMiembro = usuario.Nombre + " " + usuario.Apellidos
	}
	return resp
}
