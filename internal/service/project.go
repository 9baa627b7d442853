package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ashish-Kumar16/TaskGroove/internal/model"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store"
)

type ProjectService struct {
	projects store.Projects
	users    store.Users
}

func NewProjectService(projects store.Projects, users store.Users) *ProjectService {
	return &ProjectService{projects: projects, users: users}
}

func (s *ProjectService) List(ctx context.Context) ([]model.ProjectView, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, projects)
}

// ListForUser returns the projects the user owns or belongs to.
func (s *ProjectService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]model.ProjectView, error) {
	projects, err := s.projects.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, projects)
}

// GetByID returns the raw record. Handlers use it to evaluate the ownership
// predicate against the current state before any mutation.
func (s *ProjectService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Project, error) {
	return s.projects.Get(ctx, id)
}

func (s *ProjectService) GetView(ctx context.Context, id primitive.ObjectID) (*model.ProjectView, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, project)
}

// Create stores a new project owned by ownerID. Missing status and columns
// fall back to the defaults; columns supplied without ids get generated ones.
func (s *ProjectService) Create(ctx context.Context, ownerID primitive.ObjectID, name, description, status string, dueDate *time.Time, columns []model.Column) (*model.ProjectView, error) {
	if status == "" {
		status = model.DefaultProjectStatus
	}
	if len(columns) == 0 {
		columns = model.DefaultColumns()
	} else {
		for i := range columns {
			if columns[i].ID == "" {
				columns[i].ID = uuid.NewString()
			}
		}
	}

	project := &model.Project{
		Name:        name,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
		Columns:     columns,
		Members:     []primitive.ObjectID{},
		CreatedBy:   ownerID,
	}
	if err := s.projects.Insert(ctx, project); err != nil {
		return nil, err
	}
	return s.view(ctx, project)
}

// Update applies only the provided fields. A "members" entry replaces the
// member set wholesale; there are no merge semantics.
func (s *ProjectService) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*model.ProjectView, error) {
	project, err := s.projects.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, project)
}

func (s *ProjectService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.projects.Delete(ctx, id)
}

// AddMember appends a single member id. Adding an existing member is a
// no-op. The member id is not required to resolve to a live user.
func (s *ProjectService) AddMember(ctx context.Context, projectID, memberID primitive.ObjectID) (*model.ProjectView, error) {
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, m := range project.Members {
		if m == memberID {
			return s.view(ctx, project)
		}
	}
	members := append(append([]primitive.ObjectID{}, project.Members...), memberID)
	updated, err := s.projects.Update(ctx, projectID, map[string]any{"members": members})
	if err != nil {
		return nil, err
	}
	return s.view(ctx, updated)
}

func (s *ProjectService) views(ctx context.Context, projects []model.Project) ([]model.ProjectView, error) {
	views := make([]model.ProjectView, 0, len(projects))
	for i := range projects {
		v, err := s.view(ctx, &projects[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// view expands member and owner references. Dangling member references are
// skipped; a dangling owner keeps its id so the record stays attributable.
func (s *ProjectService) view(ctx context.Context, p *model.Project) (*model.ProjectView, error) {
	users, err := s.users.ListByIDs(ctx, p.Members)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]*model.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	members := make([]model.UserBrief, 0, len(p.Members))
	for _, mid := range p.Members {
		if u, ok := byID[mid]; ok {
			members = append(members, u.Brief())
		}
	}

	owner := model.UserBrief{ID: p.CreatedBy}
	if u, err := s.users.Get(ctx, p.CreatedBy); err == nil {
		owner = u.Brief()
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	return &model.ProjectView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		DueDate:     p.DueDate,
		Columns:     p.Columns,
		Members:     members,
		CreatedBy:   owner,
	}, nil
}
