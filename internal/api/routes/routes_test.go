package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/adrianopellim/sra-educacional/internal/config"
	"github.com/adrianopellim/sra-educacional/internal/models"
	"github.com/adrianopellim/sra-educacional/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setupTestDB initializes a throwaway sqlite database
func setupTestDB(t *testing.T) (*gorm.DB, *config.Config) {
	testDBPath := fmt.Sprintf("%s/sra_test_%d.db", os.TempDir(), time.Now().UnixNano())

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Type: "sqlite",
			SQLite: config.SQLiteConfig{
				Path: testDBPath,
			},
		},
		Security: config.SecurityConfig{
			BcryptCost: bcrypt.MinCost,
		},
		Admin: config.AdminConfig{
			Password: "seed-password",
		},
	}

	db, err := models.InitDB(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		os.Remove(testDBPath)
	})

	return db, cfg
}

func setupTestRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, db, cfg)
	return r
}

// doJSON performs a request with a JSON body against the router
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func createTestUser(t *testing.T, db *gorm.DB, cfg *config.Config, nome, login, senha, role string) *models.Usuario {
	adminService := services.NewAdminService(db, services.NewAuthService(db, cfg))
	user, err := adminService.CreateUsuario(services.UsuarioInput{
		NomeCompleto: nome,
		Login:        login,
		Senha:        senha,
		Role:         role,
	})
	require.NoError(t, err)
	return user
}

// createTestAtendimento inserts a ticket, filling any field left zero with a
// plausible default.
func createTestAtendimento(t *testing.T, db *gorm.DB, a models.Atendimento) *models.Atendimento {
	if a.Entrada == "" {
		a.Entrada = "PRESENCIAL"
	}
	if a.Data == "" {
		a.Data = "2024-03-15"
	}
	if a.Hora == "" {
		a.Hora = "10:30:00"
	}
	if a.TipoSolicitante == "" {
		a.TipoSolicitante = "ALUNO"
	}
	if a.NomeAluno == "" {
		a.NomeAluno = "Aluno Teste"
	}
	if a.Curso == "" {
		a.Curso = "MEDICINA"
	}
	if a.Atendente == "" {
		a.Atendente = "Atendente Teste"
	}
	if a.Motivo == "" {
		a.Motivo = "Académico"
	}
	if a.Descricao == "" {
		a.Descricao = "registo de teste"
	}
	if a.ResolvidoFCR == "" {
		a.ResolvidoFCR = "sim"
	}

	require.NoError(t, db.Create(&a).Error)
	return &a
}
