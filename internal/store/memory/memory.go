// Package memory is a map-backed implementation of the store interfaces.
// It mirrors the mongodb semantics closely enough for the service and
// handler tests: last write wins, partial updates apply only the provided
// fields, and deletes of missing records report ErrNotFound.
package memory

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ashish-Kumar16/TaskGroove/internal/model"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store"
)

// Store holds all three collections behind one mutex.
type Store struct {
	mu       sync.RWMutex
	users    map[primitive.ObjectID]model.User
	projects map[primitive.ObjectID]model.Project
	tasks    map[primitive.ObjectID]model.Task

	Users    *UserStore
	Projects *ProjectStore
	Tasks    *TaskStore
}

func New() *Store {
	s := &Store{
		users:    make(map[primitive.ObjectID]model.User),
		projects: make(map[primitive.ObjectID]model.Project),
		tasks:    make(map[primitive.ObjectID]model.Task),
	}
	s.Users = &UserStore{s: s}
	s.Projects = &ProjectStore{s: s}
	s.Tasks = &TaskStore{s: s}
	return s
}

// UserStore implements store.Users.
type UserStore struct{ s *Store }

func (u *UserStore) List(_ context.Context) ([]model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	out := make([]model.User, 0, len(u.s.users))
	for _, v := range u.s.users {
		out = append(out, v)
	}
	return out, nil
}

func (u *UserStore) ListByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	var out []model.User
	for _, id := range ids {
		if v, ok := u.s.users[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (u *UserStore) Get(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	v, ok := u.s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &v, nil
}

func (u *UserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, v := range u.s.users {
		if v.Email == email {
			return &v, nil
		}
	}
	return nil, store.ErrNotFound
}

func (u *UserStore) Insert(_ context.Context, user *model.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, v := range u.s.users {
		if v.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	u.s.users[user.ID] = *user
	return nil
}

func (u *UserStore) Update(_ context.Context, id primitive.ObjectID, fields map[string]any) (*model.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	v, ok := u.s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for k, val := range fields {
		switch k {
		case "name":
			v.Name = val.(string)
		case "email":
			email := val.(string)
			for oid, other := range u.s.users {
				if oid != id && other.Email == email {
					return nil, store.ErrDuplicateEmail
				}
			}
			v.Email = email
		case "phone":
			v.Phone = val.(string)
		case "role":
			v.Role = val.(string)
		case "avatar":
			v.Avatar = val.(string)
		case "projects":
			v.Projects = val.([]primitive.ObjectID)
		}
	}
	u.s.users[id] = v
	return &v, nil
}

func (u *UserStore) Delete(_ context.Context, id primitive.ObjectID) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(u.s.users, id)
	return nil
}

// ProjectStore implements store.Projects.
type ProjectStore struct{ s *Store }

func (p *ProjectStore) List(_ context.Context) ([]model.Project, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	out := make([]model.Project, 0, len(p.s.projects))
	for _, v := range p.s.projects {
		out = append(out, v)
	}
	return out, nil
}

func (p *ProjectStore) ListForUser(_ context.Context, userID primitive.ObjectID) ([]model.Project, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	var out []model.Project
	for _, v := range p.s.projects {
		if v.CanWrite(userID) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (p *ProjectStore) Get(_ context.Context, id primitive.ObjectID) (*model.Project, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	v, ok := p.s.projects[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &v, nil
}

func (p *ProjectStore) Insert(_ context.Context, project *model.Project) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	p.s.projects[project.ID] = *project
	return nil
}

func (p *ProjectStore) Update(_ context.Context, id primitive.ObjectID, fields map[string]any) (*model.Project, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	v, ok := p.s.projects[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for k, val := range fields {
		switch k {
		case "name":
			v.Name = val.(string)
		case "description":
			v.Description = val.(string)
		case "status":
			v.Status = val.(string)
		case "dueDate":
			t := val.(time.Time)
			v.DueDate = &t
		case "columns":
			v.Columns = val.([]model.Column)
		case "members":
			v.Members = val.([]primitive.ObjectID)
		}
	}
	p.s.projects[id] = v
	return &v, nil
}

func (p *ProjectStore) Delete(_ context.Context, id primitive.ObjectID) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.projects[id]; !ok {
		return store.ErrNotFound
	}
	delete(p.s.projects, id)
	return nil
}

// TaskStore implements store.Tasks.
type TaskStore struct{ s *Store }

func (t *TaskStore) List(_ context.Context) ([]model.Task, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	out := make([]model.Task, 0, len(t.s.tasks))
	for _, v := range t.s.tasks {
		out = append(out, v)
	}
	return out, nil
}

func (t *TaskStore) ListByProject(_ context.Context, projectID primitive.ObjectID) ([]model.Task, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	var out []model.Task
	for _, v := range t.s.tasks {
		if v.Project == projectID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (t *TaskStore) ListByAssignee(_ context.Context, userID primitive.ObjectID) ([]model.Task, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	var out []model.Task
	for _, v := range t.s.tasks {
		if v.Assignee == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (t *TaskStore) Get(_ context.Context, id primitive.ObjectID) (*model.Task, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	v, ok := t.s.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &v, nil
}

func (t *TaskStore) Insert(_ context.Context, task *model.Task) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	t.s.tasks[task.ID] = *task
	return nil
}

func (t *TaskStore) Update(_ context.Context, id primitive.ObjectID, fields map[string]any) (*model.Task, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	v, ok := t.s.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for k, val := range fields {
		switch k {
		case "title":
			v.Title = val.(string)
		case "description":
			v.Description = val.(string)
		case "status":
			v.Status = val.(string)
		case "priority":
			v.Priority = val.(string)
		case "dueDate":
			tm := val.(time.Time)
			v.DueDate = &tm
		case "assignee":
			v.Assignee = val.(primitive.ObjectID)
		case "completed":
			v.Completed = val.(bool)
		}
	}
	t.s.tasks[id] = v
	return &v, nil
}

func (t *TaskStore) Delete(_ context.Context, id primitive.ObjectID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.tasks[id]; !ok {
		return store.ErrNotFound
	}
	delete(t.s.tasks, id)
	return nil
}
