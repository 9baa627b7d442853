package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ashish-Kumar16/TaskGroove/internal/service"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store"
)

type MemberHandler struct {
	memberService *service.MemberService
}

func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// GET /members
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		InternalError(c, err)
		return
	}
	Success(c, members)
}

// GET /members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		BadRequest(c, 40001, "Invalid member ID")
		return
	}

	member, err := h.memberService.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, 40401, "Member not found")
		return
	}
	if err != nil {
		InternalError(c, err)
		return
	}
	Success(c, member)
}

// POST /members
func (h *MemberHandler) Create(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Phone string `json:"phone"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "Name and email are required")
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), req.Name, req.Email, req.Phone, req.Role)
	if errors.Is(err, store.ErrDuplicateEmail) {
		BadRequest(c, 40002, "Email already exists")
		return
	}
	if err != nil {
		InternalError(c, err)
		return
	}
	Created(c, member)
}

// PUT /members/:id
//
// Any authenticated caller may edit any member; the product has no role
// model for this yet.
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		BadRequest(c, 40001, "Invalid member ID")
		return
	}

	var req struct {
		Name     *string  `json:"name"`
		Email    *string  `json:"email"`
		Phone    *string  `json:"phone"`
		Role     *string  `json:"role"`
		Avatar   *string  `json:"avatar"`
		Projects []string `json:"projects"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "Invalid request body")
		return
	}

	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}
	if req.Projects != nil {
		ids := make([]primitive.ObjectID, 0, len(req.Projects))
		for _, s := range req.Projects {
			pid, ok := parseObjectID(s)
			if !ok {
				BadRequest(c, 40001, "Invalid project ID")
				return
			}
			ids = append(ids, pid)
		}
		fields["projects"] = ids
	}

	member, err := h.memberService.Update(c.Request.Context(), id, fields)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, 40401, "Member not found")
		return
	}
	if errors.Is(err, store.ErrDuplicateEmail) {
		BadRequest(c, 40002, "Email already exists")
		return
	}
	if err != nil {
		InternalError(c, err)
		return
	}
	Success(c, member)
}

// DELETE /members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		BadRequest(c, 40001, "Invalid member ID")
		return
	}

	err := h.memberService.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, 40401, "Member not found")
		return
	}
	if err != nil {
		InternalError(c, err)
		return
	}
	Success(c, gin.H{"message": "Member deleted"})
}
