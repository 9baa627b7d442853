package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ashish-Kumar16/TaskGroove/internal/model"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store"
)

type TaskService struct {
	tasks    store.Tasks
	projects store.Projects
	users    store.Users
}

func NewTaskService(tasks store.Tasks, projects store.Projects, users store.Users) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, users: users}
}

func (s *TaskService) List(ctx context.Context) ([]model.TaskView, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, tasks)
}

func (s *TaskService) ListByAssignee(ctx context.Context, userID primitive.ObjectID) ([]model.TaskView, error) {
	tasks, err := s.tasks.ListByAssignee(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, tasks)
}

func (s *TaskService) ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]model.TaskView, error) {
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, tasks)
}

// GetByID returns the raw record so handlers can run the fetch-then-authorize
// sequence: a missing task surfaces as not-found before any membership check.
func (s *TaskService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Task, error) {
	return s.tasks.Get(ctx, id)
}

func (s *TaskService) GetView(ctx context.Context, id primitive.ObjectID) (*model.TaskView, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, task)
}

// Create stores the task. The parent project must already have been resolved
// and authorized by the caller; the assignee is deliberately not checked
// against the project's member set.
func (s *TaskService) Create(ctx context.Context, task *model.Task) (*model.TaskView, error) {
	if task.Priority == "" {
		task.Priority = model.DefaultPriority
	}
	task.Completed = false
	if task.Comments == nil {
		task.Comments = []model.Comment{}
	}
	if task.Attachments == nil {
		task.Attachments = []string{}
	}
	if err := s.tasks.Insert(ctx, task); err != nil {
		return nil, err
	}
	return s.view(ctx, task)
}

func (s *TaskService) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*model.TaskView, error) {
	task, err := s.tasks.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.tasks.Delete(ctx, id)
}

func (s *TaskService) views(ctx context.Context, tasks []model.Task) ([]model.TaskView, error) {
	views := make([]model.TaskView, 0, len(tasks))
	for i := range tasks {
		v, err := s.view(ctx, &tasks[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// view expands the project and assignee references. A dangling project
// reference keeps its id; a dangling or unset assignee becomes nil.
func (s *TaskService) view(ctx context.Context, t *model.Task) (*model.TaskView, error) {
	ref := model.ProjectRef{ID: t.Project}
	if project, err := s.projects.Get(ctx, t.Project); err == nil {
		ref = project.Ref()
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	var assignee *model.UserBrief
	if !t.Assignee.IsZero() {
		if user, err := s.users.Get(ctx, t.Assignee); err == nil {
			brief := user.Brief()
			assignee = &brief
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	comments := t.Comments
	if comments == nil {
		comments = []model.Comment{}
	}
	attachments := t.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	return &model.TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		Project:     ref,
		Assignee:    assignee,
		Completed:   t.Completed,
		Comments:    comments,
		Attachments: attachments,
	}, nil
}
