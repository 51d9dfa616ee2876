package repository

import (
	"context"
	"strings"
	"time"

	"tallervehicular/internal/domain"

	"gorm.io/gorm"
)

type UsuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) Create(ctx context.Context, u *domain.Usuario) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	u.Username = strings.TrimSpace(u.Username)
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UsuarioRepository) GetByID(ctx context.Context, id int64) (*domain.Usuario, error) {
	var u domain.Usuario
	tx := r.db.WithContext(ctx).First(&u, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

// GetByUsernameOrEmail resolves the login identifier: username match
// first, case-insensitive email as fallback.
func (r *UsuarioRepository) GetByUsernameOrEmail(ctx context.Context, identificador string) (*domain.Usuario, error) {
	identificador = strings.TrimSpace(identificador)

	var u domain.Usuario
	tx := r.db.WithContext(ctx).
		Where("username = ? OR LOWER(email) = ?", identificador, strings.ToLower(identificador)).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UsuarioRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Usuario{}).
		Where("username = ? OR LOWER(email) = ?", strings.TrimSpace(username), strings.ToLower(strings.TrimSpace(email))).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *UsuarioRepository) List(ctx context.Context) ([]domain.Usuario, error) {
	var usuarios []domain.Usuario
	tx := r.db.WithContext(ctx).Order("id").Find(&usuarios)
	return usuarios, tx.Error
}

func (r *UsuarioRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&domain.Usuario{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

type RecuperacionRepository struct {
	db *gorm.DB
}

func NewRecuperacionRepository(db *gorm.DB) *RecuperacionRepository {
	return &RecuperacionRepository{db: db}
}

func (r *RecuperacionRepository) Create(ctx context.Context, t *domain.TokenRecuperacion) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// GetValidByHash returns the token only while unused and unexpired.
func (r *RecuperacionRepository) GetValidByHash(ctx context.Context, hash string) (*domain.TokenRecuperacion, error) {
	var t domain.TokenRecuperacion
	tx := r.db.WithContext(ctx).
		Where("token_hash = ? AND used_at IS NULL AND expires_at > ?", hash, time.Now()).
		First(&t)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}

func (r *RecuperacionRepository) MarkUsed(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&domain.TokenRecuperacion{}).
		Where("id = ?", id).
		Update("used_at", &now).Error
}

// InvalidateForUser burns outstanding tokens before issuing a new one.
func (r *RecuperacionRepository) InvalidateForUser(ctx context.Context, userID int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&domain.TokenRecuperacion{}).
		Where("usuario_id = ? AND used_at IS NULL", userID).
		Update("used_at", &now).Error
}
