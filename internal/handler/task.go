package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ashish-Kumar16/TaskGroove/internal/middleware"
	"github.com/Ashish-Kumar16/TaskGroove/internal/model"
	"github.com/Ashish-Kumar16/TaskGroove/internal/service"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store"
)

type TaskHandler struct {
	taskService    *service.TaskService
	projectService *service.ProjectService
}

func NewTaskHandler(taskService *service.TaskService, projectService *service.ProjectService) *TaskHandler {
	return &TaskHandler{taskService: taskService, projectService: projectService}
}

// GET /tasks and GET /tasks?projectId=
func (h *TaskHandler) List(c *gin.Context) {
	if pid := c.Query("projectId"); pid != "" {
		projectID, ok := parseObjectID(pid)
		if !ok {
			BadRequest(c, 40001, "Invalid project ID")
			return
		}
		tasks, err := h.taskService.ListByProject(c.Request.Context(), projectID)
		if err != nil {
			InternalError(c, err)
			return
		}
		Success(c, tasks)
		return
	}

	tasks, err := h.taskService.List(c.Request.Context())
	if err != nil {
		InternalError(c, err)
		return
	}
	Success(c, tasks)
}

// GET /tasks/assigned
func (h *TaskHandler) ListAssigned(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	tasks, err := h.taskService.ListByAssignee(c.Request.Context(), userID)
	if err != nil {
		InternalError(c, err)
		return
	}
	Success(c, tasks)
}

// GET /tasks/:id
//
// Unlike the list endpoints, the single-item read requires membership of
// the parent project.
func (h *TaskHandler) Get(c *gin.Context) {
	task, ok := h.fetchAndAuthorize(c)
	if !ok {
		return
	}

	view, err := h.taskService.GetView(c.Request.Context(), task.ID)
	if err != nil {
		InternalError(c, err)
		return
	}
	Success(c, view)
}

// POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
		Priority    string `json:"priority"`
		DueDate     string `json:"dueDate"`
		ProjectID   string `json:"projectId"`
		AssigneeID  string `json:"assigneeId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "Invalid request body")
		return
	}
	if req.Title == "" || req.ProjectID == "" || req.Status == "" {
		BadRequest(c, 40001, "Title, project, and status are required")
		return
	}

	projectID, ok := parseObjectID(req.ProjectID)
	if !ok {
		BadRequest(c, 40001, "Invalid project ID")
		return
	}
	var assigneeID primitive.ObjectID
	if req.AssigneeID != "" {
		assigneeID, ok = parseObjectID(req.AssigneeID)
		if !ok {
			BadRequest(c, 40001, "Invalid assignee ID")
			return
		}
	}
	dueDate, ok := parseDueDate(req.DueDate)
	if !ok {
		BadRequest(c, 40001, "Invalid due date")
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), projectID)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, 40402, "Project not found")
		return
	}
	if err != nil {
		InternalError(c, err)
		return
	}
	if !project.CanWrite(middleware.GetCurrentUserID(c)) {
		Forbidden(c, 40301, "Not authorized to create tasks for this project")
		return
	}

	view, err := h.taskService.Create(c.Request.Context(), &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     dueDate,
		Project:     projectID,
		Assignee:    assigneeID,
	})
	if err != nil {
		InternalError(c, err)
		return
	}
	Created(c, view)
}

// PUT /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	task, ok := h.fetchAndAuthorize(c)
	if !ok {
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
		Priority    *string `json:"priority"`
		DueDate     *string `json:"dueDate"`
		AssigneeID  *string `json:"assigneeId"`
		Completed   *bool   `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "Invalid request body")
		return
	}

	fields := make(map[string]any)
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.DueDate != nil {
		due, dok := parseDueDate(*req.DueDate)
		if !dok || due == nil {
			BadRequest(c, 40001, "Invalid due date")
			return
		}
		fields["dueDate"] = *due
	}
	if req.AssigneeID != nil {
		assigneeID, aok := parseObjectID(*req.AssigneeID)
		if !aok {
			BadRequest(c, 40001, "Invalid assignee ID")
			return
		}
		fields["assignee"] = assigneeID
	}
	// A false value still counts as provided.
	if req.Completed != nil {
		fields["completed"] = *req.Completed
	}

	view, err := h.taskService.Update(c.Request.Context(), task.ID, fields)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, 40403, "Task not found")
		return
	}
	if err != nil {
		InternalError(c, err)
		return
	}
	Success(c, view)
}

// DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	task, ok := h.fetchAndAuthorize(c)
	if !ok {
		return
	}

	err := h.taskService.Delete(c.Request.Context(), task.ID)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, 40403, "Task not found")
		return
	}
	if err != nil {
		InternalError(c, err)
		return
	}
	Success(c, gin.H{"message": "Task deleted"})
}

// fetchAndAuthorize runs the shared sequence for single-task endpoints:
// fetch the task (not-found preempts authorization), then re-fetch the
// parent project and apply the membership predicate against its current
// state. Responses are written on failure.
func (h *TaskHandler) fetchAndAuthorize(c *gin.Context) (*model.Task, bool) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		BadRequest(c, 40001, "Invalid task ID")
		return nil, false
	}

	task, err := h.taskService.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, 40403, "Task not found")
		return nil, false
	}
	if err != nil {
		InternalError(c, err)
		return nil, false
	}

	project, err := h.projectService.GetByID(c.Request.Context(), task.Project)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, 40402, "Project not found")
		return nil, false
	}
	if err != nil {
		InternalError(c, err)
		return nil, false
	}

	if !project.CanWrite(middleware.GetCurrentUserID(c)) {
		Forbidden(c, 40301, "Not authorized")
		return nil, false
	}
	return task, true
}
