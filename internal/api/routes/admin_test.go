package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/adrianopellim/sra-educacional/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminUsuariosRoutes(t *testing.T) {
	db, cfg := setupTestDB(t)
	router := setupTestRouter(db, cfg)

	t.Run("creating a user without password is rejected", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/admin/usuarios", map[string]string{
			"nome_completo": "Sem Senha",
			"usuario":       "semsenha",
			"role":          "atendente",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "senha é obrigatória")
	})

	t.Run("created user stores a verifiable hash", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/admin/usuarios", map[string]string{
			"nome_completo": "Joana Lima",
			"usuario":       "joana",
			"senha":         "segredo456",
			"role":          "atendente",
		})

		require.Equal(t, http.StatusCreated, w.Code)

		var body map[string]float64
		decodeBody(t, w, &body)

		var stored models.Usuario
		require.NoError(t, db.First(&stored, uint(body["id"])).Error)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.SenhaHash), []byte("segredo456")))
		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.SenhaHash), []byte("outra")))
	})

	t.Run("duplicate login is rejected", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/admin/usuarios", map[string]string{
			"nome_completo": "Joana Clone",
			"usuario":       "joana",
			"senha":         "qualquer",
			"role":          "atendente",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update patches only the supplied fields", func(t *testing.T) {
		user := createTestUser(t, db, cfg, "Rui Alves", "rui", "inicial", "atendente")
		hashBefore := user.SenhaHash

		w := doJSON(t, router, "PUT", fmt.Sprintf("/api/admin/usuarios/%d", user.ID), map[string]string{
			"role": "admin",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var stored models.Usuario
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.Equal(t, "admin", stored.Role)
		assert.Equal(t, "Rui Alves", stored.NomeCompleto)
		assert.Equal(t, "rui", stored.Login)
		assert.Equal(t, hashBefore, stored.SenhaHash)
	})

	t.Run("empty password in a patch keeps the old hash", func(t *testing.T) {
		user := createTestUser(t, db, cfg, "Tiago Costa", "tiago", "inicial", "atendente")
		hashBefore := user.SenhaHash

		w := doJSON(t, router, "PUT", fmt.Sprintf("/api/admin/usuarios/%d", user.ID), map[string]string{
			"senha": "",
			"role":  "admin",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var stored models.Usuario
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.Equal(t, hashBefore, stored.SenhaHash)
	})

	t.Run("non-empty password in a patch is rehashed", func(t *testing.T) {
		user := createTestUser(t, db, cfg, "Vera Dias", "vera", "inicial", "atendente")

		w := doJSON(t, router, "PUT", fmt.Sprintf("/api/admin/usuarios/%d", user.ID), map[string]string{
			"senha": "trocada789",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var stored models.Usuario
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.SenhaHash), []byte("trocada789")))
	})

	t.Run("update of a missing id is a 404", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/api/admin/usuarios/99999", map[string]string{
			"role": "admin",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete removes the user", func(t *testing.T) {
		user := createTestUser(t, db, cfg, "Apagar Depois", "apagar", "senha", "atendente")

		w := doJSON(t, router, "DELETE", fmt.Sprintf("/api/admin/usuarios/%d", user.ID), nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		var count int64
		db.Model(&models.Usuario{}).Where("id = ?", user.ID).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("delete of a missing id is a 404", func(t *testing.T) {
		w := doJSON(t, router, "DELETE", "/api/admin/usuarios/99999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminOptionsRoutes(t *testing.T) {
	db, cfg := setupTestDB(t)
	router := setupTestRouter(db, cfg)

	t.Run("create puts the value in the category from the path", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/admin/cursos", map[string]string{
			"nome": "ENGENHARIA",
		})

		require.Equal(t, http.StatusCreated, w.Code)

		var body map[string]float64
		decodeBody(t, w, &body)

		var stored models.Option
		require.NoError(t, db.First(&stored, uint(body["id"])).Error)
		assert.Equal(t, "cursos", stored.TableName)
		assert.Equal(t, "ENGENHARIA", stored.Nome)
	})

	t.Run("update renames the value", func(t *testing.T) {
		option := models.Option{TableName: "motivos", Nome: "Velho"}
		require.NoError(t, db.Create(&option).Error)

		w := doJSON(t, router, "PUT", fmt.Sprintf("/api/admin/motivos/%d", option.ID), map[string]string{
			"nome": "Novo",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var stored models.Option
		require.NoError(t, db.First(&stored, option.ID).Error)
		assert.Equal(t, "Novo", stored.Nome)
	})

	t.Run("delete removes the value", func(t *testing.T) {
		option := models.Option{TableName: "areas", Nome: "Temporária"}
		require.NoError(t, db.Create(&option).Error)

		w := doJSON(t, router, "DELETE", fmt.Sprintf("/api/admin/areas/%d", option.ID), nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		var count int64
		db.Model(&models.Option{}).Where("id = ?", option.ID).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("missing ids are 404s", func(t *testing.T) {
		update := doJSON(t, router, "PUT", "/api/admin/canais/99999", map[string]string{"nome": "X"})
		remove := doJSON(t, router, "DELETE", "/api/admin/canais/99999", nil)
		assert.Equal(t, http.StatusNotFound, update.Code)
		assert.Equal(t, http.StatusNotFound, remove.Code)
	})
}

func TestAdminUnknownTable(t *testing.T) {
	db, cfg := setupTestDB(t)
	router := setupTestRouter(db, cfg)

	create := doJSON(t, router, "POST", "/api/admin/whatever", map[string]string{"nome": "X"})
	update := doJSON(t, router, "PUT", "/api/admin/whatever/1", map[string]string{"nome": "X"})
	remove := doJSON(t, router, "DELETE", "/api/admin/whatever/1", nil)

	assert.Equal(t, http.StatusNotFound, create.Code)
	assert.Equal(t, http.StatusNotFound, update.Code)
	assert.Equal(t, http.StatusNotFound, remove.Code)
}

func TestInitialDataRoute(t *testing.T) {
	db, cfg := setupTestDB(t)
	router := setupTestRouter(db, cfg)

	createTestUser(t, db, cfg, "Zelia Nunes", "zelia", "senha", "atendente")
	createTestUser(t, db, cfg, "Ana Braga", "ana", "senha", "admin")

	require.NoError(t, db.Create(&models.Option{TableName: "cursos", Nome: "MEDICINA"}).Error)
	require.NoError(t, db.Create(&models.Option{TableName: "cursos", Nome: "DIREITO"}).Error)
	require.NoError(t, db.Create(&models.Option{TableName: "canais", Nome: "PRESENCIAL"}).Error)

	w := doJSON(t, router, "GET", "/api/initial_data", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "senha_hash")
	assert.NotContains(t, w.Body.String(), "$2a$")

	var body struct {
		Options struct {
			Usuarios []struct {
				ID           uint   `json:"id"`
				NomeCompleto string `json:"nome_completo"`
				Usuario      string `json:"usuario"`
				Role         string `json:"role"`
			} `json:"usuarios"`
			Canais []struct {
				ID   uint   `json:"id"`
				Nome string `json:"nome"`
			} `json:"canais"`
			Cursos []struct {
				ID   uint   `json:"id"`
				Nome string `json:"nome"`
			} `json:"cursos"`
		} `json:"options"`
	}
	decodeBody(t, w, &body)

	require.Len(t, body.Options.Usuarios, 2)
	assert.Equal(t, "Ana Braga", body.Options.Usuarios[0].NomeCompleto)
	assert.Equal(t, "zelia", body.Options.Usuarios[1].Usuario)

	require.Len(t, body.Options.Cursos, 2)
	assert.Equal(t, "DIREITO", body.Options.Cursos[0].Nome)
	assert.Equal(t, "MEDICINA", body.Options.Cursos[1].Nome)

	require.Len(t, body.Options.Canais, 1)
	assert.Equal(t, "PRESENCIAL", body.Options.Canais[0].Nome)
}
