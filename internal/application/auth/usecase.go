package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/internal/application/usecase"
	"github.com/tu-usuario/contratos-api/internal/domain"
	"github.com/tu-usuario/contratos-api/internal/domain/entity"
	"github.com/tu-usuario/contratos-api/internal/domain/repository"
	"github.com/tu-usuario/contratos-api/pkg/jwt"
)

// Config parámetros del emisor de tokens.
type Config struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase registro y autenticación de usuarios.
type UseCase struct {
	usuarios repository.UsuarioRepository
	cfg      Config
	now      func() time.Time
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(usuarios repository.UsuarioRepository, cfg Config) *UseCase {
	return &UseCase{usuarios: usuarios, cfg: cfg, now: time.Now}
}

var rolesValidos = map[string]bool{
	entity.RolAdmin:     true,
	entity.RolEconomico: true,
	entity.RolConsultor: true,
}

// Register crea una cuenta nueva. El rol por defecto es consultor.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	var errs domain.ValidationErrors
	if strings.TrimSpace(in.Nombre) == "" {
		errs = append(errs, "el nombre es obligatorio")
	}
	if strings.TrimSpace(in.NombreUsuario) == "" {
		errs = append(errs, "el nombre de usuario es obligatorio")
	}
	if len(in.Contrasenna) < 8 {
		errs = append(errs, "la contraseña debe tener al menos 8 caracteres")
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolConsultor
	}
	if !rolesValidos[rol] {
		errs = append(errs, fmt.Sprintf("rol inválido: %s", in.Rol))
	}
	if len(errs) > 0 {
		return nil, errs
	}

	existente, err := uc.usuarios.GetByNombreUsuario(ctx, in.NombreUsuario)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("%w: ya existe un usuario con ese nombre de usuario", domain.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasenna), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}

	ahora := uc.now()
	u := &entity.Usuario{
		Nombre:        in.Nombre,
		NombreUsuario: in.NombreUsuario,
		Cargo:         in.Cargo,
		Contrasenna:   string(hash),
		Rol:           rol,
		Activo:        true,
		CreatedAt:     ahora,
		UpdatedAt:     ahora,
	}
	if err := uc.usuarios.Create(ctx, u); err != nil {
		return nil, err
	}
	return usecase.ToUsuarioResponse(u), nil
}

// Login verifica credenciales y emite un token JWT.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarios.GetByNombreUsuario(ctx, in.NombreUsuario)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Contrasenna), []byte(in.Contrasenna)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !u.Activo {
		return nil, fmt.Errorf("%w: usuario desactivado", domain.ErrForbidden)
	}

	token, err := jwt.Generate(uc.cfg.Secret, u.ID, u.Nombre, u.NombreUsuario, u.Rol, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.LoginResponse{Token: token, Usuario: *usecase.ToUsuarioResponse(u)}, nil
}
