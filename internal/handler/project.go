package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ashish-Kumar16/TaskGroove/internal/middleware"
	"github.com/Ashish-Kumar16/TaskGroove/internal/model"
	"github.com/Ashish-Kumar16/TaskGroove/internal/service"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// GET /projects
//
// Reads are open to any authenticated caller.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		InternalError(c, err)
		return
	}
	Success(c, projects)
}

// GET /projects/user
func (h *ProjectHandler) ListMine(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	projects, err := h.projectService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		InternalError(c, err)
		return
	}
	Success(c, projects)
}

// GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		BadRequest(c, 40001, "Invalid project ID")
		return
	}

	project, err := h.projectService.GetView(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, 40402, "Project not found")
		return
	}
	if err != nil {
		InternalError(c, err)
		return
	}
	Success(c, project)
}

// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		Name        string         `json:"name" binding:"required"`
		Description string         `json:"description"`
		Status      string         `json:"status"`
		DueDate     string         `json:"dueDate"`
		Columns     []model.Column `json:"columns"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "Project name is required")
		return
	}

	dueDate, ok := parseDueDate(req.DueDate)
	if !ok {
		BadRequest(c, 40001, "Invalid due date")
		return
	}

	userID := middleware.GetCurrentUserID(c)
	project, err := h.projectService.Create(c.Request.Context(), userID, req.Name, req.Description, req.Status, dueDate, req.Columns)
	if err != nil {
		InternalError(c, err)
		return
	}
	Created(c, project)
}

// PUT /projects/:id
//
// Owner or member may update. A members payload replaces the member set
// wholesale.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		BadRequest(c, 40001, "Invalid project ID")
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, 40402, "Project not found")
		return
	}
	if err != nil {
		InternalError(c, err)
		return
	}

	userID := middleware.GetCurrentUserID(c)
	if !project.CanWrite(userID) {
		Forbidden(c, 40301, "Not authorized")
		return
	}

	var req struct {
		Name        *string        `json:"name"`
		Description *string        `json:"description"`
		Status      *string        `json:"status"`
		DueDate     *string        `json:"dueDate"`
		Columns     []model.Column `json:"columns"`
		Members     []string       `json:"members"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "Invalid request body")
		return
	}

	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.DueDate != nil {
		due, ok := parseDueDate(*req.DueDate)
		if !ok || due == nil {
			BadRequest(c, 40001, "Invalid due date")
			return
		}
		fields["dueDate"] = *due
	}
	if req.Columns != nil {
		fields["columns"] = req.Columns
	}
	if req.Members != nil {
		members := make([]primitive.ObjectID, 0, len(req.Members))
		for _, s := range req.Members {
			mid, ok := parseObjectID(s)
			if !ok {
				BadRequest(c, 40001, "Invalid member ID")
				return
			}
			members = append(members, mid)
		}
		fields["members"] = members
	}

	updated, err := h.projectService.Update(c.Request.Context(), id, fields)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, 40402, "Project not found")
		return
	}
	if err != nil {
		InternalError(c, err)
		return
	}
	Success(c, updated)
}

// DELETE /projects/:id
//
// Deletion is owner-only; membership is not enough.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		BadRequest(c, 40001, "Invalid project ID")
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, 40402, "Project not found")
		return
	}
	if err != nil {
		InternalError(c, err)
		return
	}

	if project.CreatedBy != middleware.GetCurrentUserID(c) {
		Forbidden(c, 40302, "Not authorized")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		InternalError(c, err)
		return
	}
	Success(c, gin.H{"message": "Project deleted"})
}

// POST /projects/:id/members
func (h *ProjectHandler) AddMember(c *gin.Context) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		BadRequest(c, 40001, "Invalid project ID")
		return
	}

	var req struct {
		MemberID string `json:"memberId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "Member ID is required")
		return
	}
	memberID, ok := parseObjectID(req.MemberID)
	if !ok {
		BadRequest(c, 40001, "Invalid member ID")
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, 40402, "Project not found")
		return
	}
	if err != nil {
		InternalError(c, err)
		return
	}

	if !project.CanWrite(middleware.GetCurrentUserID(c)) {
		Forbidden(c, 40301, "Not authorized")
		return
	}

	updated, err := h.projectService.AddMember(c.Request.Context(), id, memberID)
	if err != nil {
		InternalError(c, err)
		return
	}
	Success(c, updated)
}

// parseDueDate accepts RFC 3339 or plain YYYY-MM-DD, the two formats the
// frontend date pickers produce. Empty means unset.
func parseDueDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, true
	}
	return nil, false
}
