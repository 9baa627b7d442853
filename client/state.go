package client

import (
	"context"
	"sync"

	"github.com/Ashish-Kumar16/TaskGroove/internal/model"
)

// State mirrors server resources on the client side: one independent cache
// per resource type, populated by a fetch and replaced wholesale — never
// patched incrementally. After a mutation the caller re-fetches; there is
// no push channel.
type State struct {
	client *Client

	mu       sync.RWMutex
	members  []model.MemberView
	projects []model.ProjectView
	tasks    []model.TaskView
}

func NewState(c *Client) *State {
	return &State{client: c}
}

// RefreshMembers replaces the member cache with the server's current list.
func (s *State) RefreshMembers(ctx context.Context) error {
	members, err := s.client.FetchMembers(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.members = members
	s.mu.Unlock()
	return nil
}

// RefreshProjects replaces the project cache with the caller's projects.
func (s *State) RefreshProjects(ctx context.Context) error {
	projects, err := s.client.FetchUserProjects(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
	return nil
}

// RefreshAllProjects replaces the project cache with every project.
func (s *State) RefreshAllProjects(ctx context.Context) error {
	projects, err := s.client.FetchProjects(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
	return nil
}

// RefreshTasks replaces the task cache with the server's full task list.
func (s *State) RefreshTasks(ctx context.Context) error {
	tasks, err := s.client.FetchTasks(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

// RefreshAssignedTasks replaces the task cache with the caller's tasks.
func (s *State) RefreshAssignedTasks(ctx context.Context) error {
	tasks, err := s.client.FetchAssignedTasks(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

// RefreshProjectTasks replaces the task cache with one project's tasks.
func (s *State) RefreshProjectTasks(ctx context.Context, projectID string) error {
	tasks, err := s.client.FetchTasksByProject(ctx, projectID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

// Members returns a copy of the cached member list.
func (s *State) Members() []model.MemberView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.MemberView, len(s.members))
	copy(out, s.members)
	return out
}

// Projects returns a copy of the cached project list.
func (s *State) Projects() []model.ProjectView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ProjectView, len(s.projects))
	copy(out, s.projects)
	return out
}

// Tasks returns a copy of the cached task list.
func (s *State) Tasks() []model.TaskView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.TaskView, len(s.tasks))
	copy(out, s.tasks)
	return out
}
