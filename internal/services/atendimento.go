package services

import (
	"errors"
	"strings"

	"github.com/adrianopellim/sra-educacional/internal/models"
	"gorm.io/gorm"
)

var ErrStudentNotFound = errors.New("student not found")

type AtendimentoService struct {
	db *gorm.DB
}

func NewAtendimentoService(db *gorm.DB) *AtendimentoService {
	return &AtendimentoService{db: db}
}

// SearchFilters narrows a ticket search. Every zero-value field is skipped;
// the provided ones are ANDed together.
type SearchFilters struct {
	RA         string
	CPF        string
	Nome       string
	Motivo     string
	DataInicio string
	DataFim    string
}

// Create inserts one ticket and fills in its assigned id.
func (s *AtendimentoService) Create(a *models.Atendimento) error {
	return s.db.Create(a).Error
}

// Search returns all tickets matching the filters, newest first. RA, CPF and
// Nome match as case-insensitive substrings, Motivo matches exactly, and the
// date bounds are inclusive. ISO date strings compare correctly as text.
func (s *AtendimentoService) Search(f SearchFilters) ([]models.Atendimento, error) {
	query := s.db.Model(&models.Atendimento{})

	if f.RA != "" {
		query = query.Where("LOWER(ra) LIKE ?", "%"+strings.ToLower(f.RA)+"%")
	}
	if f.CPF != "" {
		query = query.Where("LOWER(cpf) LIKE ?", "%"+strings.ToLower(f.CPF)+"%")
	}
	if f.Nome != "" {
		query = query.Where("LOWER(nome_aluno) LIKE ?", "%"+strings.ToLower(f.Nome)+"%")
	}
	if f.Motivo != "" {
		query = query.Where("motivo = ?", f.Motivo)
	}
	if f.DataInicio != "" {
		query = query.Where("data >= ?", f.DataInicio)
	}
	if f.DataFim != "" {
		query = query.Where("data <= ?", f.DataFim)
	}

	var atendimentos []models.Atendimento
	if err := query.Order("id DESC").Find(&atendimentos).Error; err != nil {
		return nil, err
	}
	return atendimentos, nil
}

// FindStudent returns the most recent ticket whose RA or CPF equals the
// value, as a "last known identity" snapshot for form auto-fill. An
// unrecognized kind or empty value is treated as no match.
func (s *AtendimentoService) FindStudent(kind, value string) (*models.Atendimento, error) {
	var column string
	switch kind {
	case "ra":
		column = "ra"
	case "cpf":
		column = "cpf"
	default:
		return nil, ErrStudentNotFound
	}

	if value == "" {
		return nil, ErrStudentNotFound
	}

	var atendimento models.Atendimento
	if err := s.db.Where(column+" = ?", value).Order("id DESC").First(&atendimento).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &atendimento, nil
}
