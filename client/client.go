// Package client is the Go counterpart of the web frontend's API layer: a
// thin typed wrapper over the REST surface plus per-resource caches that
// mirror server state (see state.go).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Ashish-Kumar16/TaskGroove/internal/model"
)

// Client calls the backend. The bearer token is attached to every request
// once a login or register succeeded.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken installs the bearer credential used on subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current bearer credential, empty when logged out.
func (c *Client) Token() string { return c.token }

// APIError carries the server's error envelope.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (code %d): %s", e.Status, e.Code, e.Message)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(b)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= 400 || env.Code != 0 {
		return &APIError{Status: resp.StatusCode, Code: env.Code, Message: env.Message}
	}
	if out != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// Session is the payload returned by login and register.
type Session struct {
	Token    string     `json:"token"`
	ExpireAt time.Time  `json:"expireAt"`
	User     model.User `json:"user"`
}

// Login authenticates and installs the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var s Session
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &s)
	if err != nil {
		return nil, err
	}
	c.token = s.Token
	return &s, nil
}

// Register creates an account and installs the returned token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*Session, error) {
	var s Session
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &s)
	if err != nil {
		return nil, err
	}
	c.token = s.Token
	return &s, nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var u model.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Members

func (c *Client) FetchMembers(ctx context.Context) ([]model.MemberView, error) {
	var out []model.MemberView
	if err := c.do(ctx, http.MethodGet, "/api/members", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchMember(ctx context.Context, id string) (*model.MemberView, error) {
	var out model.MemberView
	if err := c.do(ctx, http.MethodGet, "/api/members/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MemberInput holds member create/update fields; nil pointers are omitted
// from the request so the server leaves those fields untouched.
type MemberInput struct {
	Name     *string  `json:"name,omitempty"`
	Email    *string  `json:"email,omitempty"`
	Phone    *string  `json:"phone,omitempty"`
	Role     *string  `json:"role,omitempty"`
	Avatar   *string  `json:"avatar,omitempty"`
	Projects []string `json:"projects,omitempty"`
}

func (c *Client) CreateMember(ctx context.Context, in MemberInput) (*model.MemberView, error) {
	var out model.MemberView
	if err := c.do(ctx, http.MethodPost, "/api/members", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMember(ctx context.Context, id string, in MemberInput) (*model.MemberView, error) {
	var out model.MemberView
	if err := c.do(ctx, http.MethodPut, "/api/members/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMember(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/members/"+id, nil, nil)
}

// Projects

func (c *Client) FetchProjects(ctx context.Context) ([]model.ProjectView, error) {
	var out []model.ProjectView
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchUserProjects(ctx context.Context) ([]model.ProjectView, error) {
	var out []model.ProjectView
	if err := c.do(ctx, http.MethodGet, "/api/projects/user", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchProject(ctx context.Context, id string) (*model.ProjectView, error) {
	var out model.ProjectView
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProjectInput holds project create/update fields.
type ProjectInput struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *string        `json:"status,omitempty"`
	DueDate     *string        `json:"dueDate,omitempty"`
	Columns     []model.Column `json:"columns,omitempty"`
	Members     []string       `json:"members,omitempty"`
}

func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (*model.ProjectView, error) {
	var out model.ProjectView
	if err := c.do(ctx, http.MethodPost, "/api/projects", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, in ProjectInput) (*model.ProjectView, error) {
	var out model.ProjectView
	if err := c.do(ctx, http.MethodPut, "/api/projects/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil)
}

func (c *Client) AddProjectMember(ctx context.Context, projectID, memberID string) (*model.ProjectView, error) {
	var out model.ProjectView
	err := c.do(ctx, http.MethodPost, "/api/projects/"+projectID+"/members", map[string]string{
		"memberId": memberID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Tasks

func (c *Client) FetchTasks(ctx context.Context) ([]model.TaskView, error) {
	var out []model.TaskView
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchTasksByProject(ctx context.Context, projectID string) ([]model.TaskView, error) {
	var out []model.TaskView
	path := "/api/tasks?projectId=" + url.QueryEscape(projectID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchAssignedTasks(ctx context.Context) ([]model.TaskView, error) {
	var out []model.TaskView
	if err := c.do(ctx, http.MethodGet, "/api/tasks/assigned", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchTask(ctx context.Context, id string) (*model.TaskView, error) {
	var out model.TaskView
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TaskInput holds task create/update fields.
type TaskInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	ProjectID   *string `json:"projectId,omitempty"`
	AssigneeID  *string `json:"assigneeId,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

func (c *Client) CreateTask(ctx context.Context, in TaskInput) (*model.TaskView, error) {
	var out model.TaskView
	if err := c.do(ctx, http.MethodPost, "/api/tasks", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, in TaskInput) (*model.TaskView, error) {
	var out model.TaskView
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil)
}
