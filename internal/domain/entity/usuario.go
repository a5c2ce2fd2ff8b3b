package entity

import (
	"fmt"
	"strings"
	"time"
)

// Roles válidos para Usuario. La comparación en el middleware es
// case-insensitive, pero en la DB se persisten estos valores canónicos.
const (
	RolSuperAdmin           = "SuperADMIN"
	RolPastor               = "PASTOR"
	RolSecretaria           = "SECRETARIA"
	RolSecretariaAsociacion = "SECRETARIA_ASOCIACION"
	RolMiembro              = "MIEMBRO"
)

// TipoPerfil identifica cuál de las tablas de perfil referencia un Usuario.
type TipoPerfil int

const (
	PerfilNinguno TipoPerfil = iota // SuperADMIN no enlaza perfil
	PerfilPastor
	PerfilSecretario
	PerfilMiembro
)

// Referencia es la unión etiquetada (tipo de perfil, id) resuelta desde el rol.
type Referencia struct {
	Tipo TipoPerfil
	ID   string
}

// Usuario representa una cuenta del sistema. El rol determina cuál de los
// tres FKs de perfil debe estar poblado; los demás quedan nil.
type Usuario struct {
	ID           string
	Nombre       string
	Apellidos    string
	Email        string
	Telefono     string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Rol          string
	PastorID     *string
	SecretarioID *string
	MiembroID    *string
	IglesiaID    *string // secretaria de iglesia / miembro
	AsociacionID *string // secretaria de asociación
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RolValido informa si s corresponde a un rol conocido (case-insensitive).
func RolValido(s string) bool {
	switch strings.ToLower(s) {
	case strings.ToLower(RolSuperAdmin), strings.ToLower(RolPastor),
		strings.ToLower(RolSecretaria), strings.ToLower(RolSecretariaAsociacion),
		strings.ToLower(RolMiembro):
		return true
	}
	return false
}

// Referencia resuelve el perfil enlazado según el rol. Error si el FK que el
// rol exige no está poblado, o si hay más de un FK poblado.
func (u *Usuario) Referencia() (Referencia, error) {
	poblados := 0
	for _, p := range []*string{u.PastorID, u.SecretarioID, u.MiembroID} {
		if p != nil && *p != "" {
			poblados++
		}
	}
	if poblados > 1 {
		return Referencia{}, fmt.Errorf("usuario %s: más de un perfil enlazado", u.ID)
	}

	switch strings.ToLower(u.Rol) {
	case strings.ToLower(RolSuperAdmin):
		if poblados != 0 {
			return Referencia{}, fmt.Errorf("usuario %s: SuperADMIN no debe enlazar perfil", u.ID)
		}
		return Referencia{Tipo: PerfilNinguno}, nil
	case strings.ToLower(RolPastor):
		if u.PastorID == nil || *u.PastorID == "" {
			return Referencia{}, fmt.Errorf("usuario %s: rol PASTOR sin pastor_id", u.ID)
		}
		return Referencia{Tipo: PerfilPastor, ID: *u.PastorID}, nil
	case strings.ToLower(RolSecretaria), strings.ToLower(RolSecretariaAsociacion):
		if u.SecretarioID == nil || *u.SecretarioID == "" {
			return Referencia{}, fmt.Errorf("usuario %s: rol %s sin secretario_id", u.ID, u.Rol)
		}
		return Referencia{Tipo: PerfilSecretario, ID: *u.SecretarioID}, nil
	case strings.ToLower(RolMiembro):
		if u.MiembroID == nil || *u.MiembroID == "" {
			return Referencia{}, fmt.Errorf("usuario %s: rol MIEMBRO sin miembro_id", u.ID)
		}
		return Referencia{Tipo: PerfilMiembro, ID: *u.MiembroID}, nil
	}
	return Referencia{}, fmt.Errorf("usuario %s: rol desconocido %q", u.ID, u.Rol)
}
