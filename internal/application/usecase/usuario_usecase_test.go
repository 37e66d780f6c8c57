package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/internal/domain"
	"github.com/tu-usuario/contratos-api/internal/domain/entity"
)

type usuarioFixture struct {
	uc       *UsuarioUseCase
	usuarios *fakeUsuarioRepo
	ofertas  *fakeOfertaRepo
	descs    *fakeDescripcionRepo
}

func newUsuarioUC(t *testing.T) (*UsuarioUseCase, *fakeUsuarioRepo) {
	t.Helper()
	f := newUsuarioFixture(t)
	return f.uc, f.usuarios
}

func newUsuarioFixture(t *testing.T) *usuarioFixture {
	t.Helper()
	usuarios := newFakeUsuarioRepo()
	ofertas := newFakeOfertaRepo()
	descs := newFakeDescripcionRepo()
	uc := NewUsuarioUseCase(usuarios, ofertas, descs)
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return &usuarioFixture{uc: uc, usuarios: usuarios, ofertas: ofertas, descs: descs}
}

func sembrarUsuario(t *testing.T, repo *fakeUsuarioRepo, nombreUsuario string) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-original"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Usuario{
		Nombre:        "Laura Fernández",
		NombreUsuario: nombreUsuario,
		Cargo:         "Especialista",
		Contrasenna:   string(hash),
		Rol:           entity.RolConsultor,
		Activo:        true,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUpdateUsuario_CamposVaciosSeConservan(t *testing.T) {
	uc, repo := newUsuarioUC(t)
	u := sembrarUsuario(t, repo, "lfernandez")

	resp, err := uc.Update(context.Background(), u.ID, dto.UpdateUsuarioRequest{Cargo: "Jefa de departamento"})
	require.NoError(t, err)
	assert.Equal(t, "Jefa de departamento", resp.Cargo)
	assert.Equal(t, "Laura Fernández", resp.Nombre, "el nombre vacío no pisa el existente")
	assert.Equal(t, "lfernandez", resp.NombreUsuario)

	guardado := repo.items[u.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.Contrasenna), []byte("clave-original")),
		"contraseña vacía no cambia el hash")
}

func TestUpdateUsuario_CambioDeContrasenna(t *testing.T) {
	uc, repo := newUsuarioUC(t)
	u := sembrarUsuario(t, repo, "lfernandez")

	_, err := uc.Update(context.Background(), u.ID, dto.UpdateUsuarioRequest{Contrasenna: "clave-nueva-123"})
	require.NoError(t, err)

	guardado := repo.items[u.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.Contrasenna), []byte("clave-nueva-123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(guardado.Contrasenna), []byte("clave-original")))
}

func TestUpdateUsuario_NombreUsuarioTomado(t *testing.T) {
	uc, repo := newUsuarioUC(t)
	u := sembrarUsuario(t, repo, "lfernandez")
	sembrarUsuario(t, repo, "ocupado")

	_, err := uc.Update(context.Background(), u.ID, dto.UpdateUsuarioRequest{NombreUsuario: "ocupado"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateUsuario_Desactivar(t *testing.T) {
	uc, repo := newUsuarioUC(t)
	u := sembrarUsuario(t, repo, "lfernandez")

	inactivo := false
	resp, err := uc.Update(context.Background(), u.ID, dto.UpdateUsuarioRequest{Activo: &inactivo})
	require.NoError(t, err)
	assert.False(t, resp.Activo)
}

func TestDeleteUsuario_NoExiste(t *testing.T) {
	uc, _ := newUsuarioUC(t)

	err := uc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteUsuario_BloqueadoPorOfertas(t *testing.T) {
	f := newUsuarioFixture(t)
	u := sembrarUsuario(t, f.usuarios, "lfernandez")

	oferta := &entity.Oferta{
		IDContrato:  1,
		IDUsuario:   u.ID,
		FechaInicio: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		FechaFin:    time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, f.ofertas.Create(context.Background(), oferta))
	require.NoError(t, f.descs.Create(context.Background(), &entity.OfertaDescripcion{
		IDOferta:    oferta.ID,
		Descripcion: "Mantenimiento de climas",
	}))

	err := f.uc.Delete(context.Background(), u.ID)

	var refErr *domain.ReferentialError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "usuario", refErr.Recurso)
	assert.Equal(t, "ofertas", refErr.Relacion)
	require.Len(t, refErr.Bloqueos, 1)
	assert.Equal(t, oferta.ID, refErr.Bloqueos[0].ID)
	assert.Equal(t, "Mantenimiento de climas", refErr.Bloqueos[0].Etiqueta)
	assert.Contains(t, f.usuarios.items, u.ID, "el usuario bloqueado no se elimina")
}

func TestFilterUsuarios_RolYTexto(t *testing.T) {
	f := newUsuarioFixture(t)
	admin := sembrarUsuario(t, f.usuarios, "mgomez")
	admin.Nombre = "María Gómez"
	admin.Rol = entity.RolAdmin
	require.NoError(t, f.usuarios.Update(context.Background(), admin))
	sembrarUsuario(t, f.usuarios, "lfernandez")

	out, err := f.uc.Filter(context.Background(), dto.FilterUsuariosRequest{
		Nombre: "GOMEZ",
		Rol:    entity.RolAdmin,
	}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Pagination.Total)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "María Gómez", out.Items[0].Nombre, "el criterio sin tildes encuentra el nombre acentuado")

	_, err = f.uc.Filter(context.Background(), dto.FilterUsuariosRequest{}, 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}
