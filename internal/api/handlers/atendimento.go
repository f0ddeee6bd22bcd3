package handlers

import (
	"errors"
	"time"

	"github.com/adrianopellim/sra-educacional/internal/models"
	"github.com/adrianopellim/sra-educacional/internal/services"
	"github.com/gin-gonic/gin"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

type AtendimentoHandler struct {
	atendimentoService *services.AtendimentoService
}

func NewAtendimentoHandler(atendimentoService *services.AtendimentoService) *AtendimentoHandler {
	return &AtendimentoHandler{atendimentoService: atendimentoService}
}

type CreateAtendimentoRequest struct {
	Entrada         string `json:"entrada" binding:"required"`
	Data            string `json:"data" binding:"required"`
	Hora            string `json:"hora" binding:"required"`
	CPF             string `json:"cpf"`
	RA              string `json:"ra"`
	TipoSolicitante string `json:"tipo_solicitante" binding:"required"`
	NomeAluno       string `json:"nome_aluno" binding:"required"`
	Curso           string `json:"curso" binding:"required"`
	Atendente       string `json:"atendente" binding:"required"`
	Motivo          string `json:"motivo" binding:"required"`
	Descricao       string `json:"descricao" binding:"required"`
	ResolvidoFCR    string `json:"resolvido_fcr" binding:"required"`
	AreaAcionada    string `json:"area_acionada"`
}

type SearchAtendimentosRequest struct {
	RA         string `json:"ra"`
	CPF        string `json:"cpf"`
	Nome       string `json:"nome"`
	Motivo     string `json:"motivo"`
	DataInicio string `json:"data_inicio"`
	DataFim    string `json:"data_fim"`
}

type FindStudentRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Create records one ticket. Date and time must parse strictly against
// their single expected layout; anything else is a 400 before the insert.
func (h *AtendimentoHandler) Create(c *gin.Context) {
	var req CreateAtendimentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if _, err := time.Parse(dateLayout, req.Data); err != nil {
		c.JSON(400, gin.H{"error": "Data inválida, formato esperado AAAA-MM-DD"})
		return
	}
	if _, err := time.Parse(timeLayout, req.Hora); err != nil {
		c.JSON(400, gin.H{"error": "Hora inválida, formato esperado HH:MM:SS"})
		return
	}

	atendimento := &models.Atendimento{
		Entrada:         req.Entrada,
		Data:            req.Data,
		Hora:            req.Hora,
		CPF:             req.CPF,
		RA:              req.RA,
		TipoSolicitante: req.TipoSolicitante,
		NomeAluno:       req.NomeAluno,
		Curso:           req.Curso,
		Atendente:       req.Atendente,
		Motivo:          req.Motivo,
		Descricao:       req.Descricao,
		ResolvidoFCR:    req.ResolvidoFCR,
		AreaAcionada:    req.AreaAcionada,
	}

	if err := h.atendimentoService.Create(atendimento); err != nil {
		c.JSON(500, gin.H{"error": "Failed to create atendimento"})
		return
	}

	c.JSON(201, gin.H{"id": atendimento.ID})
}

// Search runs a filtered ticket search. All filters are optional; an empty
// body returns every ticket, newest first.
func (h *AtendimentoHandler) Search(c *gin.Context) {
	var req SearchAtendimentosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	atendimentos, err := h.atendimentoService.Search(services.SearchFilters{
		RA:         req.RA,
		CPF:        req.CPF,
		Nome:       req.Nome,
		Motivo:     req.Motivo,
		DataInicio: req.DataInicio,
		DataFim:    req.DataFim,
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to search atendimentos"})
		return
	}

	c.JSON(200, atendimentos)
}

// FindStudent auto-fills a new ticket from the student's most recent prior
// interaction, located by exact RA or CPF.
func (h *AtendimentoHandler) FindStudent(c *gin.Context) {
	var req FindStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	atendimento, err := h.atendimentoService.FindStudent(req.Type, req.Value)
	if err != nil {
		if errors.Is(err, services.ErrStudentNotFound) {
			c.JSON(404, gin.H{"error": "Estudante não encontrado"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to find student"})
		return
	}

	c.JSON(200, gin.H{
		"nome_aluno": atendimento.NomeAluno,
		"ra":         atendimento.RA,
		"cpf":        atendimento.CPF,
		"curso":      atendimento.Curso,
	})
}
