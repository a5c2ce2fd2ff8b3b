package usecase_test

import (
	"context"

	"github.com/tu-usuario/iglesias-api/internal/domain"
	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
)

// Fakes en memoria para los puertos de persistencia. Los Get* devuelven
// (nil, nil) cuando el registro no existe, igual que los adapters reales.

type fakeUsuarioRepo struct {
	porID map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{porID: map[string]*entity.Usuario{}}
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	for _, e := range f.porID {
		if e.Email == u.Email {
			return domain.ErrEmailRegistrado
		}
	}
	cp := *u
	f.porID[u.ID] = &cp
	return nil
}

func (f *fakeUsuarioRepo) GetByID(_ context.Context, id string) (*entity.Usuario, error) {
	return f.porID[id], nil
}

func (f *fakeUsuarioRepo) GetByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	for _, u := range f.porID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) GetByPastorID(_ context.Context, pastorID string) (*entity.Usuario, error) {
	for _, u := range f.porID {
		if u.PastorID != nil && *u.PastorID == pastorID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) GetByMiembroID(_ context.Context, miembroID string) (*entity.Usuario, error) {
	for _, u := range f.porID {
		if u.MiembroID != nil && *u.MiembroID == miembroID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) List(_ context.Context) ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(f.porID))
	for _, u := range f.porID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsuarioRepo) CountByRol(_ context.Context) (map[string]int, error) {
	counts := map[string]int{}
	for _, u := range f.porID {
		counts[u.Rol]++
	}
	return counts, nil
}

type fakeIglesiaRepo struct {
	porID    map[string]*entity.Iglesia
	miembros map[string]int
	eventos  map[string]int
}

func newFakeIglesiaRepo() *fakeIglesiaRepo {
	return &fakeIglesiaRepo{
		porID:    map[string]*entity.Iglesia{},
		miembros: map[string]int{},
		eventos:  map[string]int{},
	}
}

func (f *fakeIglesiaRepo) Create(_ context.Context, i *entity.Iglesia) error {
	for _, e := range f.porID {
		if e.Codigo == i.Codigo {
			return domain.ErrCodigoRegistrado
		}
	}
	cp := *i
	f.porID[i.ID] = &cp
	return nil
}

func (f *fakeIglesiaRepo) GetByID(_ context.Context, id string) (*entity.Iglesia, error) {
	return f.porID[id], nil
}

func (f *fakeIglesiaRepo) GetByCodigo(_ context.Context, codigo string) (*entity.Iglesia, error) {
	for _, i := range f.porID {
		if i.Codigo == codigo {
			return i, nil
		}
	}
	return nil, nil
}

func (f *fakeIglesiaRepo) ListConConteos(_ context.Context) ([]repository.IglesiaConteos, error) {
	out := make([]repository.IglesiaConteos, 0, len(f.porID))
	for id, i := range f.porID {
		out = append(out, repository.IglesiaConteos{
			Iglesia:  *i,
			Miembros: f.miembros[id],
			Eventos:  f.eventos[id],
		})
	}
	return out, nil
}

func (f *fakeIglesiaRepo) ListByDistrito(_ context.Context, distritoID string) ([]*entity.Iglesia, error) {
	var out []*entity.Iglesia
	for _, i := range f.porID {
		if i.DistritoID == distritoID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeIglesiaRepo) Update(_ context.Context, i *entity.Iglesia) error {
	for _, e := range f.porID {
		if e.Codigo == i.Codigo && e.ID != i.ID {
			return domain.ErrCodigoRegistrado
		}
	}
	cp := *i
	f.porID[i.ID] = &cp
	return nil
}

func (f *fakeIglesiaRepo) Delete(_ context.Context, id string) error {
	delete(f.porID, id)
	return nil
}

func (f *fakeIglesiaRepo) CountDependencias(_ context.Context, id string) (int, int, error) {
	return f.miembros[id], f.eventos[id], nil
}

type fakeDistritoRepo struct {
	porID map[string]*entity.Distrito
}

func newFakeDistritoRepo(distritos ...*entity.Distrito) *fakeDistritoRepo {
	f := &fakeDistritoRepo{porID: map[string]*entity.Distrito{}}
	for _, d := range distritos {
		f.porID[d.ID] = d
	}
	return f
}

func (f *fakeDistritoRepo) GetByID(_ context.Context, id string) (*entity.Distrito, error) {
	return f.porID[id], nil
}

type fakeAsociacionRepo struct {
	porID map[string]*entity.Asociacion
}

func newFakeAsociacionRepo(asociaciones ...*entity.Asociacion) *fakeAsociacionRepo {
	f := &fakeAsociacionRepo{porID: map[string]*entity.Asociacion{}}
	for _, a := range asociaciones {
		f.porID[a.ID] = a
	}
	return f
}

func (f *fakeAsociacionRepo) GetByID(_ context.Context, id string) (*entity.Asociacion, error) {
	return f.porID[id], nil
}

type fakePastorRepo struct {
	porID map[string]*entity.Pastor
}

func newFakePastorRepo(pastores ...*entity.Pastor) *fakePastorRepo {
	f := &fakePastorRepo{porID: map[string]*entity.Pastor{}}
	for _, p := range pastores {
		f.porID[p.ID] = p
	}
	return f
}

func (f *fakePastorRepo) Create(_ context.Context, p *entity.Pastor) error {
	cp := *p
	f.porID[p.ID] = &cp
	return nil
}

func (f *fakePastorRepo) GetByID(_ context.Context, id string) (*entity.Pastor, error) {
	return f.porID[id], nil
}

type fakeSecretarioRepo struct {
	porID map[string]*entity.Secretario
}

func newFakeSecretarioRepo() *fakeSecretarioRepo {
	return &fakeSecretarioRepo{porID: map[string]*entity.Secretario{}}
}

func (f *fakeSecretarioRepo) Create(_ context.Context, s *entity.Secretario) error {
	cp := *s
	f.porID[s.ID] = &cp
	return nil
}

func (f *fakeSecretarioRepo) GetByID(_ context.Context, id string) (*entity.Secretario, error) {
	return f.porID[id], nil
}

type fakeMiembroRepo struct {
	porID    map[string]*entity.Miembro
	iglesias *fakeIglesiaRepo
}

func newFakeMiembroRepo(iglesias *fakeIglesiaRepo) *fakeMiembroRepo {
	return &fakeMiembroRepo{porID: map[string]*entity.Miembro{}, iglesias: iglesias}
}

func (f *fakeMiembroRepo) Create(_ context.Context, m *entity.Miembro) error {
	cp := *m
	f.porID[m.ID] = &cp
	return nil
}

func (f *fakeMiembroRepo) GetByID(_ context.Context, id string) (*entity.Miembro, error) {
	return f.porID[id], nil
}

func (f *fakeMiembroRepo) ListByIglesia(_ context.Context, iglesiaID string) ([]*entity.Miembro, error) {
	var out []*entity.Miembro
	for _, m := range f.porID {
		if m.IglesiaID != nil && *m.IglesiaID == iglesiaID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMiembroRepo) ListByDistrito(ctx context.Context, distritoID string) ([]*entity.Miembro, error) {
	var out []*entity.Miembro
	for _, m := range f.porID {
		if m.IglesiaID == nil {
			continue
		}
		iglesia, _ := f.iglesias.GetByID(ctx, *m.IglesiaID)
		if iglesia != nil && iglesia.DistritoID == distritoID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeEventoRepo struct {
	porID map[string]*entity.Evento
}

func newFakeEventoRepo() *fakeEventoRepo {
	return &fakeEventoRepo{porID: map[string]*entity.Evento{}}
}

func (f *fakeEventoRepo) Create(_ context.Context, e *entity.Evento) error {
	cp := *e
	f.porID[e.ID] = &cp
	return nil
}

func (f *fakeEventoRepo) ListByIglesia(_ context.Context, iglesiaID string) ([]*entity.Evento, error) {
	var out []*entity.Evento
	for _, e := range f.porID {
		if e.IglesiaID == iglesiaID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeBautismoRepo struct {
	porID map[string]*entity.Bautismo
}

func newFakeBautismoRepo() *fakeBautismoRepo {
	return &fakeBautismoRepo{porID: map[string]*entity.Bautismo{}}
}

func (f *fakeBautismoRepo) Create(_ context.Context, b *entity.Bautismo) error {
	cp := *b
	f.porID[b.ID] = &cp
	return nil
}

func (f *fakeBautismoRepo) GetByID(_ context.Context, id string) (*entity.Bautismo, error) {
	return f.porID[id], nil
}

func (f *fakeBautismoRepo) ListByPastor(_ context.Context, pastorID string) ([]*entity.Bautismo, error) {
	var out []*entity.Bautismo
	for _, b := range f.porID {
		if b.PastorID == pastorID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakePeticionRepo struct {
	porID map[string]*entity.PeticionOracion
}

func newFakePeticionRepo() *fakePeticionRepo {
	return &fakePeticionRepo{porID: map[string]*entity.PeticionOracion{}}
}

func (f *fakePeticionRepo) Create(_ context.Context, p *entity.PeticionOracion) error {
	cp := *p
	f.porID[p.ID] = &cp
	return nil
}

func (f *fakePeticionRepo) ListByMiembro(_ context.Context, miembroID string) ([]*entity.PeticionOracion, error) {
	var out []*entity.PeticionOracion
	for _, p := range f.porID {
		if p.MiembroID == miembroID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCitaRepo struct {
	porID map[string]*entity.CitaVisita
}

func newFakeCitaRepo() *fakeCitaRepo {
	return &fakeCitaRepo{porID: map[string]*entity.CitaVisita{}}
}

func (f *fakeCitaRepo) Create(_ context.Context, c *entity.CitaVisita) error {
	cp := *c
	f.porID[c.ID] = &cp
	return nil
}

func (f *fakeCitaRepo) ListByMiembro(_ context.Context, miembroID string) ([]*entity.CitaVisita, error) {
	var out []*entity.CitaVisita
	for _, c := range f.porID {
		if c.MiembroID == miembroID {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeTxRunner entrega los mismos fakes al callback, sin transacción real.
type fakeTxRunner struct {
	usuarios    *fakeUsuarioRepo
	pastores    *fakePastorRepo
	secretarios *fakeSecretarioRepo
	miembros    *fakeMiembroRepo
}

func (f *fakeTxRunner) RunRegistro(ctx context.Context, fn func(
	usuarios repository.UsuarioRepository,
	pastores repository.PastorRepository,
	secretarios repository.SecretarioRepository,
	miembros repository.MiembroRepository,
) error) error {
	return fn(f.usuarios, f.pastores, f.secretarios, f.miembros)
}
