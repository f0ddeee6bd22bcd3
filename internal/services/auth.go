package services

import (
	"errors"
	"fmt"

	"github.com/adrianopellim/sra-educacional/internal/config"
	"github.com/adrianopellim/sra-educacional/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrWrongPassword      = errors.New("wrong previous password")
)

// defaultOptions are the lookup lists seeded on first run.
var defaultOptions = map[string][]string{
	"canais":  {"PRESENCIAL", "WHATSAPP"},
	"tipos":   {"ALUNO", "CANDIDATO", "REPRESENTANTE"},
	"cursos":  {"MEDICINA", "DIREITO", "PSICOLOGIA"},
	"motivos": {"Académico", "Financeiro", "Solicitação de documentos"},
	"areas":   {"Secretaria", "Tesouraria", "Coordenação"},
}

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.Security.BcryptCost)
	return string(bytes), err
}

// VerifyPassword verifies a password against a hash
func (s *AuthService) VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// Authenticate verifies credentials and returns the user. An unknown login
// and a wrong password both map to ErrInvalidCredentials so the response
// never reveals which part failed.
func (s *AuthService) Authenticate(login, password string) (*models.Usuario, error) {
	var user models.Usuario
	if err := s.db.Where("usuario = ?", login).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.VerifyPassword(user.SenhaHash, password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// ChangePassword replaces a user's hash after verifying the previous
// password. No strength rules are applied: any non-empty string is accepted.
func (s *AuthService) ChangePassword(id uint, oldPassword, newPassword string) error {
	var user models.Usuario
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !s.VerifyPassword(user.SenhaHash, oldPassword) {
		return ErrWrongPassword
	}

	hashedPassword, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.SenhaHash = hashedPassword
	return s.db.Save(&user).Error
}

// Bootstrap seeds the database on first run: one "admin" account plus the
// default lookup lists, in a single transaction. Running it again is a
// no-op, so it is safe to call on every start.
func (s *AuthService) Bootstrap() error {
	var count int64
	if err := s.db.Model(&models.Usuario{}).Where("usuario = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if s.cfg.Admin.Password == "" {
		return fmt.Errorf("admin seed password not configured (set SRA_ADMIN_PASSWORD)")
	}

	hashedPassword, err := s.HashPassword(s.cfg.Admin.Password)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		admin := &models.Usuario{
			NomeCompleto: "Administrador",
			Login:        "admin",
			SenhaHash:    hashedPassword,
			Role:         "admin",
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		for table, nomes := range defaultOptions {
			for _, nome := range nomes {
				option := &models.Option{TableName: table, Nome: nome}
				if err := tx.Create(option).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}
