package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"tallervehicular/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const recoveryTokenTTL = 30 * time.Minute

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	usuarios     UsuarioRepositoryInterface
	recuperacion RecuperacionRepositoryInterface
	jwt          jwtService
}

func NewService(usuarios UsuarioRepositoryInterface, recuperacion RecuperacionRepositoryInterface, jwt jwtService) *Service {
	return &Service{usuarios: usuarios, recuperacion: recuperacion, jwt: jwt}
}

// Login accepts the username or the email as identifier.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.usuarios.GetByUsernameOrEmail(ctx, req.Usuario)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Rol))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Nombre:   user.Nombre,
		Role:     user.Rol,
		Token:    token,
	}, nil
}

func (s *Service) Registrar(ctx context.Context, req RegistroRequest) (*domain.Usuario, error) {
	if !req.Role.Valido() {
		return nil, ErrRolInvalido
	}

	exists, err := s.usuarios.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsuarioExiste
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.Usuario{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Nombre:       req.Nombre,
		Rol:          req.Role,
	}
	if err := s.usuarios.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) ListarUsuarios(ctx context.Context) ([]domain.Usuario, error) {
	return s.usuarios.List(ctx)
}

// SolicitarRecuperacion issues a recovery token for the account behind
// the email. It reports success either way so the endpoint cannot be
// used to probe which emails exist.
func (s *Service) SolicitarRecuperacion(ctx context.Context, email string) error {
	user, err := s.usuarios.GetByUsernameOrEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.recuperacion.InvalidateForUser(ctx, user.ID); err != nil {
		return err
	}

	raw, hash := generarTokenRecuperacion()

	if err := s.recuperacion.Create(ctx, &domain.TokenRecuperacion{
		UsuarioID: user.ID,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(recoveryTokenTTL),
	}); err != nil {
		return err
	}

	// No mail transport yet, the token lands in the server log.
	// TODO: send by email once SMTP credentials are provisioned.
	log.Printf("recuperacion user_id=%d token=%s", user.ID, raw)
	return nil
}

func (s *Service) RestablecerContrasena(ctx context.Context, req RestablecerRequest) error {
	hash := hashToken(req.Token)

	token, err := s.recuperacion.GetValidByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTokenInvalido
		}
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.usuarios.UpdatePassword(ctx, token.UsuarioID, string(passwordHash)); err != nil {
		return err
	}
	return s.recuperacion.MarkUsed(ctx, token.ID)
}

func generarTokenRecuperacion() (raw string, hash string) {
	raw = uuid.NewString()
	return raw, hashToken(raw)
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(raw)))
	return hex.EncodeToString(sum[:])
}
