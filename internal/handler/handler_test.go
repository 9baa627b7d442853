package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Ashish-Kumar16/TaskGroove/internal/handler"
	"github.com/Ashish-Kumar16/TaskGroove/internal/router"
	"github.com/Ashish-Kumar16/TaskGroove/internal/service"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store/memory"
)

const testSecret = "test-secret"

func newTestEnv(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := memory.New()
	authService := service.NewAuthService(st.Users, testSecret, 1)
	memberService := service.NewMemberService(st.Users, st.Projects)
	projectService := service.NewProjectService(st.Projects, st.Users)
	taskService := service.NewTaskService(st.Tasks, st.Projects, st.Users)

	r := gin.New()
	router.Setup(r, router.Deps{
		Users:          st.Users,
		JWTSecret:      testSecret,
		AuthHandler:    handler.NewAuthHandler(authService),
		MemberHandler:  handler.NewMemberHandler(memberService),
		ProjectHandler: handler.NewProjectHandler(projectService),
		TaskHandler:    handler.NewTaskHandler(taskService, projectService),
	})
	return r, st
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

// register creates an account through the API and returns its token and id.
func register(t *testing.T, r *gin.Engine, name, email string) (token, id string) {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code, env.Message)

	var data struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.Token, data.User.ID
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}
