package controllers

import (
	"net/http"
	"testing"

	"pearl-laundry-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter()

	admin := models.AdminUser{
		Email:    "admin@pearl-laundry.test",
		Password: "correct horse battery", // hashed by the BeforeCreate hook
		Name:     "Administrator",
		IsActive: true,
	}
	require.NoError(t, db.Create(&admin).Error)

	t.Run("valid credentials", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/auth/login", map[string]string{
			"email":    "admin@pearl-laundry.test",
			"password": "correct horse battery",
		}, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Token string `json:"token"`
		}
		decodeBody(t, w, &resp)
		assert.NotEmpty(t, resp.Token)

		// the issued token opens the admin group
		w = doJSON(r, http.MethodGet, "/admin/dashboard", nil,
			map[string]string{"Authorization": "Bearer " + resp.Token})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/auth/login", map[string]string{
			"email":    "admin@pearl-laundry.test",
			"password": "wrong",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown account", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/auth/login", map[string]string{
			"email":    "nobody@pearl-laundry.test",
			"password": "whatever",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
