package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taskPayload struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
	Project   struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"project"`
	Assignee *struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	} `json:"assignee"`
}

func createTask(t *testing.T, r *gin.Engine, token string, body gin.H) taskPayload {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/tasks", token, body)
	require.Equal(t, http.StatusCreated, w.Code, env.Message)
	var task taskPayload
	decodeData(t, env, &task)
	return task
}

func TestTaskCreateValidation(t *testing.T) {
	r, _ := newTestEnv(t)
	token, _ := register(t, r, "Alice", "alice@example.com")
	p := createProject(t, r, token, "P1")

	cases := map[string]gin.H{
		"missing title":   {"status": "To Do", "projectId": p.ID},
		"missing status":  {"title": "T", "projectId": p.ID},
		"missing project": {"title": "T", "status": "To Do"},
	}
	for name, body := range cases {
		w, env := doJSON(t, r, http.MethodPost, "/api/tasks", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
		assert.Equal(t, 40001, env.Code, name)
	}

	// A well-formed but unknown project id is a 404, not a validation error.
	w, env := doJSON(t, r, http.MethodPost, "/api/tasks", token, gin.H{
		"title": "T", "status": "To Do", "projectId": "ffffffffffffffffffffffff",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40402, env.Code)
}

func TestTaskCreateExpandsReferences(t *testing.T) {
	r, _ := newTestEnv(t)
	token, userID := register(t, r, "Alice", "alice@example.com")
	p := createProject(t, r, token, "P1")

	task := createTask(t, r, token, gin.H{
		"title":      "T1",
		"status":     "To Do",
		"projectId":  p.ID,
		"assigneeId": userID,
	})
	assert.Equal(t, "Medium", task.Priority)
	assert.False(t, task.Completed)
	assert.Equal(t, p.ID, task.Project.ID)
	assert.Equal(t, "P1", task.Project.Name)
	require.NotNil(t, task.Assignee)
	assert.Equal(t, "Alice", task.Assignee.Name)
}

// Task lists are open to any authenticated caller, but the single-item read
// checks membership of the parent project.
func TestTaskGetRequiresMembership(t *testing.T) {
	r, _ := newTestEnv(t)
	ownerToken, _ := register(t, r, "Owner", "owner@example.com")
	otherToken, otherID := register(t, r, "Other", "other@example.com")

	p := createProject(t, r, ownerToken, "P1")
	task := createTask(t, r, ownerToken, gin.H{"title": "T1", "status": "To Do", "projectId": p.ID})

	w, env := doJSON(t, r, http.MethodGet, "/api/tasks/"+task.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 40301, env.Code)

	// Lists stay open.
	w, env = doJSON(t, r, http.MethodGet, "/api/tasks", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []taskPayload
	decodeData(t, env, &all)
	assert.Len(t, all, 1)

	// Membership grants the single-item read.
	w, _ = doJSON(t, r, http.MethodPost, "/api/projects/"+p.ID+"/members", ownerToken, gin.H{"memberId": otherID})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodGet, "/api/tasks/"+task.ID, otherToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTaskCreateRequiresMembership(t *testing.T) {
	r, _ := newTestEnv(t)
	ownerToken, _ := register(t, r, "Owner", "owner@example.com")
	otherToken, _ := register(t, r, "Other", "other@example.com")

	p := createProject(t, r, ownerToken, "P1")
	w, env := doJSON(t, r, http.MethodPost, "/api/tasks", otherToken, gin.H{
		"title": "T", "status": "To Do", "projectId": p.ID,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 40301, env.Code)
}

func TestTaskUpdateAndDelete(t *testing.T) {
	r, _ := newTestEnv(t)
	token, _ := register(t, r, "Alice", "alice@example.com")
	p := createProject(t, r, token, "P1")
	task := createTask(t, r, token, gin.H{"title": "T1", "status": "To Do", "projectId": p.ID})

	w, env := doJSON(t, r, http.MethodPut, "/api/tasks/"+task.ID, token, gin.H{
		"status":    "Done",
		"completed": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var got taskPayload
	decodeData(t, env, &got)
	assert.Equal(t, "Done", got.Status)
	assert.True(t, got.Completed)
	assert.Equal(t, "T1", got.Title, "omitted fields stay untouched")

	// Flipping completed back to false must apply even though it is the
	// zero value.
	w, env = doJSON(t, r, http.MethodPut, "/api/tasks/"+task.ID, token, gin.H{"completed": false})
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, env, &got)
	assert.False(t, got.Completed)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/tasks/"+task.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, r, http.MethodGet, "/api/tasks/"+task.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40403, env.Code)
}

func TestTaskListFilters(t *testing.T) {
	r, _ := newTestEnv(t)
	token, userID := register(t, r, "Alice", "alice@example.com")
	p1 := createProject(t, r, token, "P1")
	p2 := createProject(t, r, token, "P2")

	createTask(t, r, token, gin.H{"title": "A", "status": "s", "projectId": p1.ID, "assigneeId": userID})
	createTask(t, r, token, gin.H{"title": "B", "status": "s", "projectId": p2.ID})

	_, env := doJSON(t, r, http.MethodGet, "/api/tasks?projectId="+p1.ID, token, nil)
	var tasks []taskPayload
	decodeData(t, env, &tasks)
	require.Len(t, tasks, 1)
	assert.Equal(t, "A", tasks[0].Title)

	_, env = doJSON(t, r, http.MethodGet, "/api/tasks/assigned", token, nil)
	decodeData(t, env, &tasks)
	require.Len(t, tasks, 1)
	assert.Equal(t, "A", tasks[0].Title)
}

// Deleting a member leaves their task assignments dangling; the expanded
// view then reports no assignee rather than failing.
func TestTaskAssigneeDanglingAfterMemberDelete(t *testing.T) {
	r, _ := newTestEnv(t)
	token, _ := register(t, r, "Alice", "alice@example.com")
	_, bobID := register(t, r, "Bob", "bob@example.com")

	p := createProject(t, r, token, "P1")
	task := createTask(t, r, token, gin.H{"title": "T", "status": "s", "projectId": p.ID, "assigneeId": bobID})
	require.NotNil(t, task.Assignee)

	w, _ := doJSON(t, r, http.MethodDelete, "/api/members/"+bobID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, env := doJSON(t, r, http.MethodGet, "/api/tasks/"+task.ID, token, nil)
	var got taskPayload
	decodeData(t, env, &got)
	assert.Nil(t, got.Assignee)
}
