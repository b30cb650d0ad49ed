package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/futurestec/crm-leads-api/internal/application/dto"
	"github.com/futurestec/crm-leads-api/internal/domain"
	"github.com/futurestec/crm-leads-api/internal/domain/entity"
	"github.com/futurestec/crm-leads-api/internal/domain/repository"
	"github.com/futurestec/crm-leads-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// Hash bcrypt de relleno: cuando el username no existe igualmente se compara
// contra este hash para que ambos fallos tarden lo mismo. El caller no puede
// distinguir "usuario desconocido" de "password incorrecto" ni por tiempo
// ni por respuesta.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthUseCase caso de uso de autenticación: login con JWT de 24h.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password contra un usuario activo, genera el JWT y
// retorna token + vista del usuario sin el hash. Cualquier fallo de credencial
// devuelve el mismo domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindActiveByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}
}
