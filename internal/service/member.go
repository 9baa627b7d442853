package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ashish-Kumar16/TaskGroove/internal/model"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store"
)

// DefaultMemberPassword is issued to members created through the team page.
// Known operational gap carried over from the product: there is no
// invitation or forced-reset flow yet.
const DefaultMemberPassword = "password123"

type MemberService struct {
	users    store.Users
	projects store.Projects
}

func NewMemberService(users store.Users, projects store.Projects) *MemberService {
	return &MemberService{users: users, projects: projects}
}

func (s *MemberService) List(ctx context.Context) ([]model.MemberView, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.MemberView, 0, len(users))
	for i := range users {
		v, err := s.view(ctx, &users[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *MemberService) Get(ctx context.Context, id primitive.ObjectID) (*model.MemberView, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, user)
}

func (s *MemberService) Create(ctx context.Context, name, email, phone, role string) (*model.MemberView, error) {
	if role == "" {
		role = model.DefaultRole
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultMemberPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Phone:    phone,
		Role:     role,
		Avatar:   PlaceholderAvatar(name),
		Projects: []primitive.ObjectID{},
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return s.view(ctx, user)
}

// Update applies only the provided fields. There is no ownership or role
// restriction on who may edit a member; that matches the observed product
// behavior.
func (s *MemberService) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*model.MemberView, error) {
	user, err := s.users.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, user)
}

// Delete removes the member record only. Tasks keep a dangling assignee
// reference and projects keep the member id; both are tolerated by the
// view expansion.
func (s *MemberService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.users.Delete(ctx, id)
}

func (s *MemberService) view(ctx context.Context, u *model.User) (*model.MemberView, error) {
	refs := make([]model.ProjectRef, 0, len(u.Projects))
	for _, pid := range u.Projects {
		project, err := s.projects.Get(ctx, pid)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		refs = append(refs, project.Ref())
	}
	return &model.MemberView{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
		Avatar:   u.Avatar,
		Projects: refs,
	}, nil
}
