package handlers

import (
	"errors"
	"strconv"

	"github.com/adrianopellim/sra-educacional/internal/services"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// CreateAdminRequest covers both entity kinds: the user fields apply to
// "usuarios", Nome applies to the lookup lists. Required-ness depends on the
// target, so it is enforced in the handler rather than with binding tags.
type CreateAdminRequest struct {
	NomeCompleto string `json:"nome_completo"`
	Usuario      string `json:"usuario"`
	Senha        string `json:"senha"`
	Role         string `json:"role"`
	Nome         string `json:"nome"`
}

// UpdateAdminRequest is a patch: nil fields stay untouched.
type UpdateAdminRequest struct {
	NomeCompleto *string `json:"nome_completo"`
	Usuario      *string `json:"usuario"`
	Senha        *string `json:"senha"`
	Role         *string `json:"role"`
	Nome         *string `json:"nome"`
}

// resolveTarget maps the :table path segment to a tagged target once, so no
// table-name string comparison leaks past this boundary.
func (h *AdminHandler) resolveTarget(c *gin.Context) (services.AdminTarget, bool) {
	target, err := services.ResolveAdminTarget(c.Param("table"))
	if err != nil {
		c.JSON(404, gin.H{"error": "Tabela desconhecida"})
		return target, false
	}
	return target, true
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// InitialData returns every user plus all five lookup lists in one round
// trip, for the front end's dropdowns and admin tables.
func (h *AdminHandler) InitialData(c *gin.Context) {
	data, err := h.adminService.InitialData()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load initial data"})
		return
	}
	c.JSON(200, gin.H{"options": data})
}

// Create adds a user or a lookup value depending on the target.
func (h *AdminHandler) Create(c *gin.Context) {
	target, ok := h.resolveTarget(c)
	if !ok {
		return
	}

	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	switch target.Kind {
	case services.TargetUsuarios:
		if req.Senha == "" {
			c.JSON(400, gin.H{"error": "A senha é obrigatória para novos utilizadores"})
			return
		}
		user, err := h.adminService.CreateUsuario(services.UsuarioInput{
			NomeCompleto: req.NomeCompleto,
			Login:        req.Usuario,
			Senha:        req.Senha,
			Role:         req.Role,
		})
		if err != nil {
			if errors.Is(err, services.ErrUserExists) {
				c.JSON(400, gin.H{"error": "Utilizador já existe"})
				return
			}
			c.JSON(500, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(201, gin.H{"id": user.ID})

	case services.TargetOption:
		option, err := h.adminService.CreateOption(target.Category, req.Nome)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to create option"})
			return
		}
		c.JSON(201, gin.H{"id": option.ID})
	}
}

// Update patches a user or a lookup value; only supplied fields change.
func (h *AdminHandler) Update(c *gin.Context) {
	target, ok := h.resolveTarget(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	var err error
	switch target.Kind {
	case services.TargetUsuarios:
		err = h.adminService.UpdateUsuario(id, services.UsuarioPatch{
			NomeCompleto: req.NomeCompleto,
			Login:        req.Usuario,
			Senha:        req.Senha,
			Role:         req.Role,
		})
	case services.TargetOption:
		err = h.adminService.UpdateOption(id, req.Nome)
	}

	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Item não encontrado"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(200, gin.H{"message": "Item atualizado"})
}

// Delete removes a user or a lookup value. Historical tickets keep their
// copied text values either way.
func (h *AdminHandler) Delete(c *gin.Context) {
	target, ok := h.resolveTarget(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var err error
	switch target.Kind {
	case services.TargetUsuarios:
		err = h.adminService.DeleteUsuario(id)
	case services.TargetOption:
		err = h.adminService.DeleteOption(id)
	}

	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Item não encontrado"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to delete item"})
		return
	}

	c.Status(204)
}
