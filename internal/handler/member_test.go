package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberCreateValidation(t *testing.T) {
	r, _ := newTestEnv(t)
	token, _ := register(t, r, "Alice", "alice@example.com")

	// Missing name.
	w, env := doJSON(t, r, http.MethodPost, "/api/members", token, gin.H{"email": "x@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40001, env.Code)

	// Missing email.
	w, env = doJSON(t, r, http.MethodPost, "/api/members", token, gin.H{"name": "X"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40001, env.Code)
}

func TestMemberCreateConflictAndPasswordHidden(t *testing.T) {
	r, _ := newTestEnv(t)
	token, _ := register(t, r, "Alice", "alice@example.com")

	w, env := doJSON(t, r, http.MethodPost, "/api/members", token, gin.H{
		"name": "A", "email": "dup@x.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// The serialized record must not contain any password material.
	var raw map[string]json.RawMessage
	decodeData(t, env, &raw)
	_, hasPassword := raw["password"]
	assert.False(t, hasPassword)

	// Second create with the same email is a conflict; exactly one record
	// with that email remains.
	w, env = doJSON(t, r, http.MethodPost, "/api/members", token, gin.H{
		"name": "B", "email": "dup@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40002, env.Code)

	_, env = doJSON(t, r, http.MethodGet, "/api/members", token, nil)
	var members []struct {
		Email string `json:"email"`
	}
	decodeData(t, env, &members)
	count := 0
	for _, m := range members {
		if m.Email == "dup@x.com" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

// Member update and delete deliberately carry no ownership restriction: any
// authenticated caller may edit any member record.
func TestMemberUpdateOpenToAnyAuthenticatedUser(t *testing.T) {
	r, _ := newTestEnv(t)
	_, aliceID := register(t, r, "Alice", "alice@example.com")
	bobToken, _ := register(t, r, "Bob", "bob@example.com")

	w, env := doJSON(t, r, http.MethodPut, "/api/members/"+aliceID, bobToken, gin.H{
		"role": "Lead",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	decodeData(t, env, &updated)
	assert.Equal(t, "Lead", updated.Role)
	assert.Equal(t, "Alice", updated.Name, "fields not in the payload stay untouched")
}

func TestMemberGetNotFoundAndInvalidID(t *testing.T) {
	r, _ := newTestEnv(t)
	token, _ := register(t, r, "Alice", "alice@example.com")

	w, env := doJSON(t, r, http.MethodGet, "/api/members/ffffffffffffffffffffffff", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40401, env.Code)

	w, env = doJSON(t, r, http.MethodGet, "/api/members/not-an-id", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40001, env.Code)
}
