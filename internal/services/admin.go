package services

import (
	"errors"

	"github.com/adrianopellim/sra-educacional/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUnknownTable = errors.New("unknown table")
	ErrNotFound     = errors.New("record not found")
)

// optionCategories are the recognized lookup lists. The order here is the
// order initial_data presents them in.
var optionCategories = []string{"canais", "tipos", "cursos", "motivos", "areas"}

type TargetKind int

const (
	TargetUsuarios TargetKind = iota
	TargetOption
)

// AdminTarget is the entity kind an admin request operates on, resolved once
// from the :table path segment at the routing boundary.
type AdminTarget struct {
	Kind     TargetKind
	Category string // option list name, empty for usuarios
}

// ResolveAdminTarget maps a :table path segment to a target. Only "usuarios"
// and the five lookup categories are valid; anything else is rejected here
// instead of silently creating a new category.
func ResolveAdminTarget(table string) (AdminTarget, error) {
	if table == "usuarios" {
		return AdminTarget{Kind: TargetUsuarios}, nil
	}
	for _, category := range optionCategories {
		if table == category {
			return AdminTarget{Kind: TargetOption, Category: category}, nil
		}
	}
	return AdminTarget{}, ErrUnknownTable
}

type AdminService struct {
	db   *gorm.DB
	auth *AuthService
}

func NewAdminService(db *gorm.DB, auth *AuthService) *AdminService {
	return &AdminService{db: db, auth: auth}
}

type UsuarioInput struct {
	NomeCompleto string
	Login        string
	Senha        string
	Role         string
}

// UsuarioPatch carries a partial update; nil fields are left untouched.
// Senha is only applied when non-empty.
type UsuarioPatch struct {
	NomeCompleto *string
	Login        *string
	Senha        *string
	Role         *string
}

type UsuarioSummary struct {
	ID           uint   `json:"id"`
	NomeCompleto string `json:"nome_completo"`
	Usuario      string `json:"usuario"`
	Role         string `json:"role"`
}

type OptionSummary struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

// InitialData returns every user and every lookup list in one aggregate,
// keyed by category name. Users are sorted by full name, options by value.
// There is no pagination: the tables are small and bounded.
func (s *AdminService) InitialData() (map[string]interface{}, error) {
	data := make(map[string]interface{}, len(optionCategories)+1)

	var users []UsuarioSummary
	if err := s.db.Model(&models.Usuario{}).Order("nome_completo").Find(&users).Error; err != nil {
		return nil, err
	}
	data["usuarios"] = users

	for _, category := range optionCategories {
		var options []OptionSummary
		if err := s.db.Model(&models.Option{}).
			Where("table_name = ?", category).
			Order("nome").
			Find(&options).Error; err != nil {
			return nil, err
		}
		data[category] = options
	}

	return data, nil
}

// CreateUsuario creates a staff account with a hashed password. The caller
// guarantees Senha is non-empty.
func (s *AdminService) CreateUsuario(in UsuarioInput) (*models.Usuario, error) {
	var existing models.Usuario
	err := s.db.Where("usuario = ?", in.Login).First(&existing).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := s.auth.HashPassword(in.Senha)
	if err != nil {
		return nil, err
	}

	user := &models.Usuario{
		NomeCompleto: in.NomeCompleto,
		Login:        in.Login,
		SenhaHash:    hashedPassword,
		Role:         in.Role,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AdminService) CreateOption(category, nome string) (*models.Option, error) {
	option := &models.Option{TableName: category, Nome: nome}
	if err := s.db.Create(option).Error; err != nil {
		return nil, err
	}
	return option, nil
}

// UpdateUsuario applies a partial update to a staff account.
func (s *AdminService) UpdateUsuario(id uint, patch UsuarioPatch) error {
	var user models.Usuario
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if patch.NomeCompleto != nil {
		user.NomeCompleto = *patch.NomeCompleto
	}
	if patch.Login != nil {
		user.Login = *patch.Login
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Senha != nil && *patch.Senha != "" {
		hashedPassword, err := s.auth.HashPassword(*patch.Senha)
		if err != nil {
			return err
		}
		user.SenhaHash = hashedPassword
	}

	return s.db.Save(&user).Error
}

func (s *AdminService) UpdateOption(id uint, nome *string) error {
	var option models.Option
	if err := s.db.First(&option, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if nome != nil {
		option.Nome = *nome
	}

	return s.db.Save(&option).Error
}

// DeleteUsuario removes a staff account. Tickets referencing the attendant
// by name are untouched. There is no guard against deleting the last admin.
func (s *AdminService) DeleteUsuario(id uint) error {
	var user models.Usuario
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&user).Error
}

func (s *AdminService) DeleteOption(id uint) error {
	var option models.Option
	if err := s.db.First(&option, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&option).Error
}
