package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashish-Kumar16/TaskGroove/client"
	"github.com/Ashish-Kumar16/TaskGroove/internal/handler"
	"github.com/Ashish-Kumar16/TaskGroove/internal/router"
	"github.com/Ashish-Kumar16/TaskGroove/internal/service"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := memory.New()
	authService := service.NewAuthService(st.Users, "test-secret", 1)
	memberService := service.NewMemberService(st.Users, st.Projects)
	projectService := service.NewProjectService(st.Projects, st.Users)
	taskService := service.NewTaskService(st.Tasks, st.Projects, st.Users)

	r := gin.New()
	router.Setup(r, router.Deps{
		Users:          st.Users,
		JWTSecret:      "test-secret",
		AuthHandler:    handler.NewAuthHandler(authService),
		MemberHandler:  handler.NewMemberHandler(memberService),
		ProjectHandler: handler.NewProjectHandler(projectService),
		TaskHandler:    handler.NewTaskHandler(taskService, projectService),
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func strPtr(s string) *string { return &s }

func TestClientSessionFlow(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL)
	ctx := context.Background()

	s, err := c.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, s.Token)
	assert.Equal(t, s.Token, c.Token(), "register installs the token")

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", me.Email)

	// A fresh client can log in with the same credentials.
	c2 := client.New(srv.URL)
	_, err = c2.Login(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)

	// Bad credentials surface as a typed error with the server's code.
	_, err = client.New(srv.URL).Login(ctx, "alice@example.com", "wrong")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, 40104, apiErr.Code)
}

func TestClientUnauthenticated(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL)

	_, err := c.FetchMembers(context.Background())
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, 40101, apiErr.Code)
}

func TestClientProjectAndTaskLifecycle(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL)
	ctx := context.Background()

	s, err := c.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	p, err := c.CreateProject(ctx, client.ProjectInput{Name: strPtr("P1")})
	require.NoError(t, err)
	assert.Equal(t, "Not Started", p.Status)
	require.Len(t, p.Columns, 4)

	task, err := c.CreateTask(ctx, client.TaskInput{
		Title:      strPtr("T1"),
		Status:     strPtr("To Do"),
		ProjectID:  strPtr(p.ID.Hex()),
		AssigneeID: strPtr(s.User.ID.Hex()),
	})
	require.NoError(t, err)
	assert.Equal(t, "P1", task.Project.Name)
	require.NotNil(t, task.Assignee)
	assert.Equal(t, "Alice", task.Assignee.Name)

	completed := true
	updated, err := c.UpdateTask(ctx, task.ID.Hex(), client.TaskInput{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	byProject, err := c.FetchTasksByProject(ctx, p.ID.Hex())
	require.NoError(t, err)
	require.Len(t, byProject, 1)

	assigned, err := c.FetchAssignedTasks(ctx)
	require.NoError(t, err)
	require.Len(t, assigned, 1)

	require.NoError(t, c.DeleteTask(ctx, task.ID.Hex()))
	_, err = c.FetchTask(ctx, task.ID.Hex())
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 40403, apiErr.Code)

	require.NoError(t, c.DeleteProject(ctx, p.ID.Hex()))
}

func TestClientAddProjectMember(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	owner := client.New(srv.URL)
	_, err := owner.Register(ctx, "Owner", "owner@example.com", "hunter22")
	require.NoError(t, err)

	other := client.New(srv.URL)
	otherSession, err := other.Register(ctx, "Other", "other@example.com", "hunter22")
	require.NoError(t, err)

	p, err := owner.CreateProject(ctx, client.ProjectInput{Name: strPtr("P1")})
	require.NoError(t, err)

	// The outsider cannot update the project yet.
	_, err = other.UpdateProject(ctx, p.ID.Hex(), client.ProjectInput{Status: strPtr("Done")})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 40301, apiErr.Code)

	updated, err := owner.AddProjectMember(ctx, p.ID.Hex(), otherSession.User.ID.Hex())
	require.NoError(t, err)
	require.Len(t, updated.Members, 1)

	got, err := other.UpdateProject(ctx, p.ID.Hex(), client.ProjectInput{Status: strPtr("Done")})
	require.NoError(t, err)
	assert.Equal(t, "Done", got.Status)
}

func TestStateCachesReplacedWholesale(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL)
	ctx := context.Background()

	_, err := c.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	state := client.NewState(c)
	assert.Empty(t, state.Members(), "caches start empty")

	require.NoError(t, state.RefreshMembers(ctx))
	require.Len(t, state.Members(), 1)

	p1, err := c.CreateProject(ctx, client.ProjectInput{Name: strPtr("P1")})
	require.NoError(t, err)
	p2, err := c.CreateProject(ctx, client.ProjectInput{Name: strPtr("P2")})
	require.NoError(t, err)

	require.NoError(t, state.RefreshProjects(ctx))
	assert.Len(t, state.Projects(), 2)

	_, err = c.CreateTask(ctx, client.TaskInput{
		Title: strPtr("A"), Status: strPtr("s"), ProjectID: strPtr(p1.ID.Hex()),
	})
	require.NoError(t, err)
	_, err = c.CreateTask(ctx, client.TaskInput{
		Title: strPtr("B"), Status: strPtr("s"), ProjectID: strPtr(p2.ID.Hex()),
	})
	require.NoError(t, err)

	require.NoError(t, state.RefreshTasks(ctx))
	assert.Len(t, state.Tasks(), 2)

	// Refreshing with a narrower scope replaces the cache, never merges.
	require.NoError(t, state.RefreshProjectTasks(ctx, p1.ID.Hex()))
	tasks := state.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "A", tasks[0].Title)

	// Accessors hand out copies; mutating one does not corrupt the cache.
	tasks[0].Title = "mutated"
	assert.Equal(t, "A", state.Tasks()[0].Title)
}

func TestStateRefreshErrorLeavesCacheIntact(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL)
	ctx := context.Background()

	_, err := c.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	state := client.NewState(c)
	require.NoError(t, state.RefreshMembers(ctx))
	require.Len(t, state.Members(), 1)

	c.SetToken("garbage")
	err = state.RefreshMembers(ctx)
	require.Error(t, err)
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Len(t, state.Members(), 1, "failed refresh keeps the previous snapshot")
}
