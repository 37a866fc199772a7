package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jstringer1212/plant-review-api/internal/application/dto"
	"github.com/jstringer1212/plant-review-api/internal/domain"
	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
	"github.com/jstringer1212/plant-review-api/internal/domain/repository"
	"github.com/jstringer1212/plant-review-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y verificación de token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt, persiste y emite token.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Token:   token,
		Message: "usuario creado correctamente",
		User:    *ToUserResponse(user),
	}, nil
}

// Login verifica email/password, comprueba que la cuenta esté activa y emite token.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		UserID:    user.ID,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

// Protect verifica un token emitido y devuelve sus claims. Cualquier causa de
// rechazo (malformado, firma, expiración) se reporta como ErrUnauthorized; el
// cliente descarta toda la sesión cacheada ante la duda.
func (uc *AuthUseCase) Protect(tokenString string) (*dto.ClaimsResponse, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, tokenString)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	out := &dto.ClaimsResponse{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      claims.Role,
		FirstName: claims.FirstName,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

func (uc *AuthUseCase) issueToken(user *entity.User) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

// ToUserResponse mapea la entidad a su representación pública (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
