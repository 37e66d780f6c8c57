package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/contratos-api/internal/domain"
	"github.com/tu-usuario/contratos-api/internal/domain/entity"
	"github.com/tu-usuario/contratos-api/internal/domain/repository"
	"github.com/tu-usuario/contratos-api/pkg/normalize"
)

// contiene imita la comparación unaccent(lower(col)) LIKE '%criterio%' de los
// repositorios reales: el criterio ya llega normalizado por el caso de uso.
func contiene(campo, criterio string) bool {
	return criterio == "" || strings.Contains(normalize.String(campo), criterio)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para las pruebas de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakeEntidadRepo struct {
	items  map[int]*entity.Entidad
	nextID int
}

func newFakeEntidadRepo() *fakeEntidadRepo {
	return &fakeEntidadRepo{items: map[int]*entity.Entidad{}, nextID: 1}
}

func (r *fakeEntidadRepo) Create(_ context.Context, e *entity.Entidad) error {
	e.ID = r.nextID
	r.nextID++
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEntidadRepo) GetByID(_ context.Context, id int) (*entity.Entidad, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEntidadRepo) GetAll(_ context.Context) ([]*entity.Entidad, error) {
	var out []*entity.Entidad
	for _, e := range r.items {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeEntidadRepo) Update(_ context.Context, e *entity.Entidad) error {
	if _, ok := r.items[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEntidadRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeEntidadRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeEntidadRepo) ExistsByEmail(_ context.Context, email string, excludeID *int) (bool, error) {
	for _, e := range r.items {
		if excludeID != nil && e.ID == *excludeID {
			continue
		}
		if strings.EqualFold(e.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEntidadRepo) ExistsByNombre(_ context.Context, nombre string, excludeID *int) (bool, error) {
	for _, e := range r.items {
		if excludeID != nil && e.ID == *excludeID {
			continue
		}
		if strings.EqualFold(e.Nombre, nombre) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEntidadRepo) Filter(_ context.Context, f repository.FiltroEntidades, limit, offset int) ([]*entity.Entidad, error) {
	var out []*entity.Entidad
	for _, e := range r.items {
		if matchEntidad(e, f) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginar(out, limit, offset), nil
}

func (r *fakeEntidadRepo) CountFilter(_ context.Context, f repository.FiltroEntidades) (int, error) {
	n := 0
	for _, e := range r.items {
		if matchEntidad(e, f) {
			n++
		}
	}
	return n, nil
}

func matchEntidad(e *entity.Entidad, f repository.FiltroEntidades) bool {
	return contiene(e.Nombre, f.Nombre) &&
		contiene(e.Direccion, f.Direccion) &&
		contiene(e.Telefono, f.Telefono) &&
		contiene(e.CuentaBancaria, f.CuentaBancaria) &&
		contiene(e.TipoEntidad, f.TipoEntidad) &&
		contiene(e.CodigoREO, f.CodigoREO) &&
		contiene(e.CodigoNIT, f.CodigoNIT)
}

type fakeTipoRepo struct {
	items  map[int]*entity.TipoContrato
	nextID int
}

func newFakeTipoRepo() *fakeTipoRepo {
	return &fakeTipoRepo{items: map[int]*entity.TipoContrato{}, nextID: 1}
}

func (r *fakeTipoRepo) Create(_ context.Context, t *entity.TipoContrato) error {
	t.ID = r.nextID
	r.nextID++
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *fakeTipoRepo) GetByID(_ context.Context, id int) (*entity.TipoContrato, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTipoRepo) GetAll(_ context.Context) ([]*entity.TipoContrato, error) {
	var out []*entity.TipoContrato
	for _, t := range r.items {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTipoRepo) Update(_ context.Context, t *entity.TipoContrato) error {
	if _, ok := r.items[t.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *fakeTipoRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeTipoRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

type fakeContratoRepo struct {
	items  map[int]*entity.Contrato
	nextID int
}

func newFakeContratoRepo() *fakeContratoRepo {
	return &fakeContratoRepo{items: map[int]*entity.Contrato{}, nextID: 1}
}

func (r *fakeContratoRepo) Create(_ context.Context, c *entity.Contrato) error {
	for _, o := range r.items {
		if o.NumConsecutivo == c.NumConsecutivo && o.FechaInicio.Year() == c.FechaInicio.Year() {
			return fmt.Errorf("%w: el número consecutivo %d ya está usado en ese año", domain.ErrConflict, c.NumConsecutivo)
		}
	}
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeContratoRepo) GetByID(_ context.Context, id int) (*entity.Contrato, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContratoRepo) GetAll(_ context.Context) ([]*entity.Contrato, error) {
	var out []*entity.Contrato
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeContratoRepo) Update(_ context.Context, c *entity.Contrato) error {
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeContratoRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeContratoRepo) MaxConsecutivoEnRango(_ context.Context, desde, hasta time.Time) (int, error) {
	max := 0
	for _, c := range r.items {
		if !c.FechaInicio.Before(desde) && !c.FechaInicio.After(hasta) && c.NumConsecutivo > max {
			max = c.NumConsecutivo
		}
	}
	return max, nil
}

func (r *fakeContratoRepo) ExisteConsecutivoEnRango(_ context.Context, num int, desde, hasta time.Time, excludeID *int) (bool, error) {
	for _, c := range r.items {
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		if c.NumConsecutivo == num && !c.FechaInicio.Before(desde) && !c.FechaInicio.After(hasta) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeContratoRepo) ExisteVigentePorEntidadTipo(_ context.Context, idEntidad, idTipoContrato int, ahora time.Time, excludeID *int) (bool, error) {
	for _, c := range r.items {
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		if c.IDEntidad == idEntidad && c.IDTipoContrato == idTipoContrato && c.FechaFin.After(ahora) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeContratoRepo) ListByEntidad(_ context.Context, idEntidad int) ([]*entity.Contrato, error) {
	var out []*entity.Contrato
	for _, c := range r.items {
		if c.IDEntidad == idEntidad {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeContratoRepo) ListByTipoContrato(_ context.Context, idTipoContrato int) ([]*entity.Contrato, error) {
	var out []*entity.Contrato
	for _, c := range r.items {
		if c.IDTipoContrato == idTipoContrato {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeContratoRepo) ProximosAVencer(_ context.Context, desde, hasta time.Time) ([]*entity.Contrato, error) {
	var out []*entity.Contrato
	for _, c := range r.items {
		if c.FechaFin.After(desde) && !c.FechaFin.After(hasta) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaFin.Before(out[j].FechaFin) })
	return out, nil
}

func (r *fakeContratoRepo) Filter(_ context.Context, f repository.FiltroContratos, limit, offset int) ([]*entity.Contrato, error) {
	var out []*entity.Contrato
	for _, c := range r.items {
		if matchContrato(c, f) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginar(out, limit, offset), nil
}

func (r *fakeContratoRepo) CountFilter(_ context.Context, f repository.FiltroContratos) (int, error) {
	n := 0
	for _, c := range r.items {
		if matchContrato(c, f) {
			n++
		}
	}
	return n, nil
}

func matchContrato(c *entity.Contrato, f repository.FiltroContratos) bool {
	if f.NumConsecutivo != nil && c.NumConsecutivo != *f.NumConsecutivo {
		return false
	}
	if f.IDEntidad != nil && c.IDEntidad != *f.IDEntidad {
		return false
	}
	if f.IDTipoContrato != nil && c.IDTipoContrato != *f.IDTipoContrato {
		return false
	}
	nota := ""
	if c.Nota != nil {
		nota = *c.Nota
	}
	return contiene(c.Clasificacion, f.Clasificacion) &&
		contiene(nota, f.Nota) &&
		contiene(c.NombreEntidad, f.NombreEntidad) &&
		contiene(c.NombreTipoContrato, f.NombreTipoContrato)
}

type fakeOfertaRepo struct {
	items  map[int]*entity.Oferta
	nextID int
}

func newFakeOfertaRepo() *fakeOfertaRepo {
	return &fakeOfertaRepo{items: map[int]*entity.Oferta{}, nextID: 1}
}

func (r *fakeOfertaRepo) Create(_ context.Context, o *entity.Oferta) error {
	o.ID = r.nextID
	r.nextID++
	cp := *o
	cp.Descripciones = nil
	r.items[o.ID] = &cp
	return nil
}

func (r *fakeOfertaRepo) GetByID(_ context.Context, id int) (*entity.Oferta, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOfertaRepo) GetAll(_ context.Context) ([]*entity.Oferta, error) {
	var out []*entity.Oferta
	for _, o := range r.items {
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeOfertaRepo) Update(_ context.Context, o *entity.Oferta) error {
	if _, ok := r.items[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	cp.Descripciones = nil
	r.items[o.ID] = &cp
	return nil
}

func (r *fakeOfertaRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeOfertaRepo) ListByContrato(_ context.Context, idContrato int) ([]*entity.Oferta, error) {
	var out []*entity.Oferta
	for _, o := range r.items {
		if o.IDContrato == idContrato {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeOfertaRepo) ListByUsuario(_ context.Context, idUsuario int) ([]*entity.Oferta, error) {
	var out []*entity.Oferta
	for _, o := range r.items {
		if o.IDUsuario == idUsuario {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeOfertaRepo) Filter(_ context.Context, f repository.FiltroOfertas, limit, offset int) ([]*entity.Oferta, error) {
	var out []*entity.Oferta
	for _, o := range r.items {
		if matchOferta(o, f) {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginar(out, limit, offset), nil
}

func (r *fakeOfertaRepo) CountFilter(_ context.Context, f repository.FiltroOfertas) (int, error) {
	n := 0
	for _, o := range r.items {
		if matchOferta(o, f) {
			n++
		}
	}
	return n, nil
}

func matchOferta(o *entity.Oferta, f repository.FiltroOfertas) bool {
	if f.IDContrato != nil && o.IDContrato != *f.IDContrato {
		return false
	}
	if f.IDUsuario != nil && o.IDUsuario != *f.IDUsuario {
		return false
	}
	if f.Estado != "" && (o.Estado == nil || *o.Estado != f.Estado) {
		return false
	}
	return true
}

// fakeDescripcionRepo puede forzar un fallo con failOn para probar la
// atomicidad del agregado.
type fakeDescripcionRepo struct {
	items  map[int]*entity.OfertaDescripcion
	nextID int
	failOn string
}

func newFakeDescripcionRepo() *fakeDescripcionRepo {
	return &fakeDescripcionRepo{items: map[int]*entity.OfertaDescripcion{}, nextID: 1}
}

func (r *fakeDescripcionRepo) Create(_ context.Context, d *entity.OfertaDescripcion) error {
	if r.failOn != "" && d.Descripcion == r.failOn {
		return errors.New("fallo simulado al insertar descripción")
	}
	d.ID = r.nextID
	r.nextID++
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *fakeDescripcionRepo) ListByOferta(_ context.Context, idOferta int) ([]entity.OfertaDescripcion, error) {
	var out []entity.OfertaDescripcion
	for _, d := range r.items {
		if d.IDOferta == idOferta {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDescripcionRepo) DeleteByOferta(_ context.Context, idOferta int) error {
	for id, d := range r.items {
		if d.IDOferta == idOferta {
			delete(r.items, id)
		}
	}
	return nil
}

type fakeTrabajadorRepo struct {
	items  map[int]*entity.TrabajadorAutorizado
	nextID int
}

func newFakeTrabajadorRepo() *fakeTrabajadorRepo {
	return &fakeTrabajadorRepo{items: map[int]*entity.TrabajadorAutorizado{}, nextID: 1}
}

func (r *fakeTrabajadorRepo) Create(_ context.Context, t *entity.TrabajadorAutorizado) error {
	t.ID = r.nextID
	r.nextID++
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *fakeTrabajadorRepo) GetByID(_ context.Context, id int) (*entity.TrabajadorAutorizado, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTrabajadorRepo) GetAll(_ context.Context) ([]*entity.TrabajadorAutorizado, error) {
	var out []*entity.TrabajadorAutorizado
	for _, t := range r.items {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTrabajadorRepo) Update(_ context.Context, t *entity.TrabajadorAutorizado) error {
	if _, ok := r.items[t.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *fakeTrabajadorRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeTrabajadorRepo) ExistsByCarnet(_ context.Context, carnet string, excludeID *int) (bool, error) {
	for _, t := range r.items {
		if excludeID != nil && t.ID == *excludeID {
			continue
		}
		if t.CarnetIdentidad == carnet {
			return true, nil
		}
	}
	return false, nil
}

type fakeAsignacionRepo struct {
	items  map[int]*entity.ContratoTrabajador
	nextID int
}

func newFakeAsignacionRepo() *fakeAsignacionRepo {
	return &fakeAsignacionRepo{items: map[int]*entity.ContratoTrabajador{}, nextID: 1}
}

func (r *fakeAsignacionRepo) Create(_ context.Context, a *entity.ContratoTrabajador) error {
	for _, o := range r.items {
		if o.IDContrato == a.IDContrato && o.IDTrabajadorAutorizado == a.IDTrabajadorAutorizado {
			return fmt.Errorf("%w: el trabajador ya está asignado a ese contrato", domain.ErrConflict)
		}
	}
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAsignacionRepo) GetByID(_ context.Context, id int) (*entity.ContratoTrabajador, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAsignacionRepo) GetAll(_ context.Context) ([]*entity.ContratoTrabajador, error) {
	var out []*entity.ContratoTrabajador
	for _, a := range r.items {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAsignacionRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeAsignacionRepo) DeleteByContratoYTrabajador(_ context.Context, idContrato, idTrabajador int) error {
	for id, a := range r.items {
		if a.IDContrato == idContrato && a.IDTrabajadorAutorizado == idTrabajador {
			delete(r.items, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeAsignacionRepo) ListByContrato(_ context.Context, idContrato int) ([]*entity.ContratoTrabajador, error) {
	var out []*entity.ContratoTrabajador
	for _, a := range r.items {
		if a.IDContrato == idContrato {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAsignacionRepo) ListByTrabajador(_ context.Context, idTrabajador int) ([]*entity.ContratoTrabajador, error) {
	var out []*entity.ContratoTrabajador
	for _, a := range r.items {
		if a.IDTrabajadorAutorizado == idTrabajador {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeUsuarioRepo struct {
	items  map[int]*entity.Usuario
	nextID int
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{items: map[int]*entity.Usuario{}, nextID: 1}
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) GetByID(_ context.Context, id int) (*entity.Usuario, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsuarioRepo) GetByNombreUsuario(_ context.Context, nombreUsuario string) (*entity.Usuario, error) {
	for _, u := range r.items {
		if u.NombreUsuario == nombreUsuario {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) GetAll(_ context.Context) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.items {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, u *entity.Usuario) error {
	if _, ok := r.items[u.ID]; !ok {
		return domain.ErrUsuarioNotFound
	}
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrUsuarioNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeUsuarioRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

func matchUsuario(u *entity.Usuario, f repository.FiltroUsuarios) bool {
	if !contiene(u.Nombre, f.Nombre) || !contiene(u.NombreUsuario, f.NombreUsuario) || !contiene(u.Cargo, f.Cargo) {
		return false
	}
	if f.Rol != "" && u.Rol != f.Rol {
		return false
	}
	if f.Activo != nil && u.Activo != *f.Activo {
		return false
	}
	return true
}

func (r *fakeUsuarioRepo) Filter(_ context.Context, f repository.FiltroUsuarios, limit, offset int) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.items {
		if matchUsuario(u, f) {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return paginar(out, limit, offset), nil
}

func (r *fakeUsuarioRepo) CountFilter(_ context.Context, f repository.FiltroUsuarios) (int, error) {
	n := 0
	for _, u := range r.items {
		if matchUsuario(u, f) {
			n++
		}
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Runners de transacción fake: ejecutan el callback sobre los mismos fakes y,
// si falla, restauran el estado previo (simulan el rollback real).
// ──────────────────────────────────────────────────────────────────────────────

type fakeContratoTx struct {
	contratos *fakeContratoRepo
}

func (t *fakeContratoTx) RunContrato(_ context.Context, fn func(repository.ContratoRepository) error) error {
	backup := snapshotContratos(t.contratos)
	if err := fn(t.contratos); err != nil {
		t.contratos.items = backup
		return err
	}
	return nil
}

func snapshotContratos(r *fakeContratoRepo) map[int]*entity.Contrato {
	out := make(map[int]*entity.Contrato, len(r.items))
	for id, c := range r.items {
		cp := *c
		out[id] = &cp
	}
	return out
}

type fakeOfertaTx struct {
	ofertas       *fakeOfertaRepo
	descripciones *fakeDescripcionRepo
}

func (t *fakeOfertaTx) RunOferta(_ context.Context, fn func(repository.OfertaRepository, repository.OfertaDescripcionRepository) error) error {
	backupOfertas := make(map[int]*entity.Oferta, len(t.ofertas.items))
	for id, o := range t.ofertas.items {
		cp := *o
		backupOfertas[id] = &cp
	}
	backupDescs := make(map[int]*entity.OfertaDescripcion, len(t.descripciones.items))
	for id, d := range t.descripciones.items {
		cp := *d
		backupDescs[id] = &cp
	}
	if err := fn(t.ofertas, t.descripciones); err != nil {
		t.ofertas.items = backupOfertas
		t.descripciones.items = backupDescs
		return err
	}
	return nil
}

type fakeAsignacionTx struct {
	asignaciones *fakeAsignacionRepo
}

func (t *fakeAsignacionTx) RunAsignaciones(_ context.Context, fn func(repository.ContratoTrabajadorRepository) error) error {
	backup := make(map[int]*entity.ContratoTrabajador, len(t.asignaciones.items))
	for id, a := range t.asignaciones.items {
		cp := *a
		backup[id] = &cp
	}
	if err := fn(t.asignaciones); err != nil {
		t.asignaciones.items = backup
		return err
	}
	return nil
}

func paginar[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
