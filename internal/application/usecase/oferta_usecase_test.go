package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/internal/domain"
	"github.com/tu-usuario/contratos-api/internal/domain/entity"
)

type ofertaFixture struct {
	uc        *OfertaUseCase
	ofertas   *fakeOfertaRepo
	descs     *fakeDescripcionRepo
	contratos *fakeContratoRepo
	usuarios  *fakeUsuarioRepo
}

// newOfertaFixture siembra un contrato vigente (ID 1) y un usuario (ID 1).
func newOfertaFixture(t *testing.T, ahora time.Time) *ofertaFixture {
	t.Helper()
	f := &ofertaFixture{
		ofertas:   newFakeOfertaRepo(),
		descs:     newFakeDescripcionRepo(),
		contratos: newFakeContratoRepo(),
		usuarios:  newFakeUsuarioRepo(),
	}
	f.uc = NewOfertaUseCase(f.ofertas, f.descs, f.contratos, f.usuarios,
		&fakeOfertaTx{ofertas: f.ofertas, descripciones: f.descs})
	f.uc.now = func() time.Time { return ahora }

	ctx := context.Background()
	require.NoError(t, f.contratos.Create(ctx, &entity.Contrato{
		IDEntidad: 1, IDTipoContrato: 1,
		FechaInicio:    ahora.AddDate(0, -1, 0),
		FechaFin:       ahora.AddDate(1, 0, 0),
		NumConsecutivo: 1, Clasificacion: "mayor",
	}))
	require.NoError(t, f.usuarios.Create(ctx, &entity.Usuario{
		Nombre: "María López", NombreUsuario: "mlopez", Rol: entity.RolEconomico, Activo: true,
	}))
	return f
}

func requestOferta() dto.CreateOfertaRequest {
	return dto.CreateOfertaRequest{
		IDContrato:    1,
		IDUsuario:     1,
		FechaInicio:   "2025-06-01",
		FechaFin:      "2025-08-01",
		Descripciones: []string{"Reparación de bombas", "Pintura exterior"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta del agregado
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOferta_PersisteCabeceraYDescripciones(t *testing.T) {
	ahora := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := newOfertaFixture(t, ahora)

	resp, err := f.uc.Create(context.Background(), requestOferta())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 1, resp.ID)
	require.Len(t, resp.Descripciones, 2)
	assert.Equal(t, "Reparación de bombas", resp.Descripciones[0].Descripcion)
	assert.Nil(t, resp.Estado, "sin estado explícito queda nil")
	assert.Len(t, f.descs.items, 2)
}

func TestCreateOferta_FalloEnDescripcionNoDejaNada(t *testing.T) {
	ahora := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := newOfertaFixture(t, ahora)
	f.descs.failOn = "Pintura exterior" // la segunda línea falla

	_, err := f.uc.Create(context.Background(), requestOferta())
	require.Error(t, err)

	// Ni la cabecera ni la primera línea deben haber quedado persistidas.
	assert.Empty(t, f.ofertas.items, "la cabecera debe revertirse")
	assert.Empty(t, f.descs.items, "ninguna línea debe sobrevivir")
}

func TestCreateOferta_ContratoVencido(t *testing.T) {
	// El reloj está un año después del fin del contrato sembrado.
	ahora := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	f := newOfertaFixture(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	f.uc.now = func() time.Time { return ahora }

	_, err := f.uc.Create(context.Background(), requestOferta())
	errs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, errs, "no se puede crear una oferta para un contrato vencido")
}

func TestCreateOferta_ValidacionesAcumuladas(t *testing.T) {
	ahora := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := newOfertaFixture(t, ahora)

	estado := "pendiente" // fuera del enumerado
	req := dto.CreateOfertaRequest{
		IDContrato:    42, // no existe
		IDUsuario:     42, // no existe
		FechaInicio:   "2025-08-01",
		FechaFin:      "2025-06-01", // anterior al inicio
		Estado:        &estado,
		Descripciones: []string{"válida", "   "},
	}
	_, err := f.uc.Create(context.Background(), req)
	errs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, errs, "la fecha de fin debe ser posterior a la fecha de inicio")
	assert.Contains(t, errs, "el contrato con ID 42 no existe")
	assert.Contains(t, errs, "el usuario con ID 42 no existe")
	assert.Contains(t, errs, `estado inválido: "pendiente" (valores permitidos: vigente, facturada, vencida)`)
	assert.Contains(t, errs, "la descripción #2 no puede estar vacía")
}

func TestCreateOferta_EstadoVacioSeGuardaComoNil(t *testing.T) {
	ahora := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := newOfertaFixture(t, ahora)

	vacio := ""
	req := requestOferta()
	req.Estado = &vacio
	resp, err := f.uc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.Estado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización: reemplazo total vs. conservación de descripciones
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateOferta_DescripcionesNilConservaLasExistentes(t *testing.T) {
	ahora := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := newOfertaFixture(t, ahora)
	ctx := context.Background()

	creada, err := f.uc.Create(ctx, requestOferta())
	require.NoError(t, err)

	estado := entity.EstadoOfertaFacturada
	resp, err := f.uc.Update(ctx, creada.ID, dto.UpdateOfertaRequest{
		IDContrato:  1,
		IDUsuario:   1,
		FechaInicio: "2025-06-01",
		FechaFin:    "2025-09-01",
		Estado:      &estado,
		// Descripciones nil: no se tocan
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Estado)
	assert.Equal(t, entity.EstadoOfertaFacturada, *resp.Estado)
	require.Len(t, resp.Descripciones, 2, "las descripciones previas se conservan")
	assert.Len(t, f.descs.items, 2)
}

func TestUpdateOferta_ReemplazaElConjuntoCompleto(t *testing.T) {
	ahora := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := newOfertaFixture(t, ahora)
	ctx := context.Background()

	creada, err := f.uc.Create(ctx, requestOferta())
	require.NoError(t, err)

	nuevas := []string{"Única línea nueva"}
	resp, err := f.uc.Update(ctx, creada.ID, dto.UpdateOfertaRequest{
		IDContrato:    1,
		IDUsuario:     1,
		FechaInicio:   "2025-06-01",
		FechaFin:      "2025-08-01",
		Descripciones: &nuevas,
	})
	require.NoError(t, err)
	require.Len(t, resp.Descripciones, 1)
	assert.Equal(t, "Única línea nueva", resp.Descripciones[0].Descripcion)
	assert.Len(t, f.descs.items, 1, "las líneas anteriores deben desaparecer")
}

func TestUpdateOferta_ReemplazoRepetidoEsIdempotente(t *testing.T) {
	ahora := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := newOfertaFixture(t, ahora)
	ctx := context.Background()

	creada, err := f.uc.Create(ctx, requestOferta())
	require.NoError(t, err)

	// Aplicar dos veces el mismo conjunto debe dejar exactamente ese conjunto,
	// sin duplicar líneas.
	nuevas := []string{"Fumigación", "Poda de árboles"}
	cambio := dto.UpdateOfertaRequest{
		IDContrato:    1,
		IDUsuario:     1,
		FechaInicio:   "2025-06-01",
		FechaFin:      "2025-08-01",
		Descripciones: &nuevas,
	}
	_, err = f.uc.Update(ctx, creada.ID, cambio)
	require.NoError(t, err)
	resp, err := f.uc.Update(ctx, creada.ID, cambio)
	require.NoError(t, err)

	require.Len(t, resp.Descripciones, 2)
	assert.Equal(t, "Fumigación", resp.Descripciones[0].Descripcion)
	assert.Equal(t, "Poda de árboles", resp.Descripciones[1].Descripcion)
	assert.Len(t, f.descs.items, 2, "el reemplazo repetido no acumula líneas")

	descs, err := f.descs.ListByOferta(ctx, creada.ID)
	require.NoError(t, err)
	require.Len(t, descs, 2)
}

func TestUpdateOferta_ConjuntoVacioBorraTodas(t *testing.T) {
	ahora := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := newOfertaFixture(t, ahora)
	ctx := context.Background()

	creada, err := f.uc.Create(ctx, requestOferta())
	require.NoError(t, err)

	vacias := []string{}
	resp, err := f.uc.Update(ctx, creada.ID, dto.UpdateOfertaRequest{
		IDContrato:    1,
		IDUsuario:     1,
		FechaInicio:   "2025-06-01",
		FechaFin:      "2025-08-01",
		Descripciones: &vacias,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Descripciones)
	assert.Empty(t, f.descs.items)
}

func TestUpdateOferta_FalloEnReemplazoConservaElEstadoPrevio(t *testing.T) {
	ahora := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := newOfertaFixture(t, ahora)
	ctx := context.Background()

	creada, err := f.uc.Create(ctx, requestOferta())
	require.NoError(t, err)

	f.descs.failOn = "explota"
	nuevas := []string{"explota"}
	_, err = f.uc.Update(ctx, creada.ID, dto.UpdateOfertaRequest{
		IDContrato:    1,
		IDUsuario:     1,
		FechaInicio:   "2025-06-01",
		FechaFin:      "2025-08-01",
		Descripciones: &nuevas,
	})
	require.Error(t, err)

	// Tras el rollback las dos descripciones originales siguen intactas.
	descs, lerr := f.descs.ListByOferta(ctx, creada.ID)
	require.NoError(t, lerr)
	assert.Len(t, descs, 2)
}

func TestUpdateOferta_NoExiste(t *testing.T) {
	f := newOfertaFixture(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	_, err := f.uc.Update(context.Background(), 404, dto.UpdateOfertaRequest{
		IDContrato: 1, IDUsuario: 1, FechaInicio: "2025-06-01", FechaFin: "2025-08-01",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado y lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteOferta_ArrastraLasDescripciones(t *testing.T) {
	ahora := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := newOfertaFixture(t, ahora)
	ctx := context.Background()

	creada, err := f.uc.Create(ctx, requestOferta())
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ctx, creada.ID))
	assert.Empty(t, f.ofertas.items)
	assert.Empty(t, f.descs.items)

	_, err = f.uc.GetByID(ctx, creada.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetOferta_IncluyeDescripcionesOrdenadas(t *testing.T) {
	ahora := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := newOfertaFixture(t, ahora)
	ctx := context.Background()

	creada, err := f.uc.Create(ctx, requestOferta())
	require.NoError(t, err)

	resp, err := f.uc.GetByID(ctx, creada.ID)
	require.NoError(t, err)
	require.Len(t, resp.Descripciones, 2)
	assert.Equal(t, "Reparación de bombas", resp.Descripciones[0].Descripcion)
	assert.Equal(t, "Pintura exterior", resp.Descripciones[1].Descripcion)
}

func TestFilterOfertas_CuentaOfertasDistintas(t *testing.T) {
	ahora := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := newOfertaFixture(t, ahora)
	ctx := context.Background()

	// Una oferta con dos descripciones y otra con una.
	_, err := f.uc.Create(ctx, requestOferta())
	require.NoError(t, err)
	otra := requestOferta()
	otra.Descripciones = []string{"Instalación eléctrica"}
	_, err = f.uc.Create(ctx, otra)
	require.NoError(t, err)

	resp, err := f.uc.Filter(ctx, dto.FilterOfertasRequest{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pagination.Total, "el total no se infla por las descripciones")
	assert.Len(t, resp.Items, 2)

	_, err = f.uc.Filter(ctx, dto.FilterOfertasRequest{}, 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}
