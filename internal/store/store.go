// Package store defines the persistence interfaces consumed by the service
// layer. The mongodb subpackage is the production implementation; the memory
// subpackage backs tests.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ashish-Kumar16/TaskGroove/internal/model"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a user insert collides with the
	// unique email index.
	ErrDuplicateEmail = errors.New("email already exists")
)

// Users is the users collection. Update applies only the provided fields
// (keys are bson field names) and returns the resulting record.
type Users interface {
	List(ctx context.Context) ([]model.User, error)
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.User, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Insert(ctx context.Context, u *model.User) error
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*model.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Projects is the projects collection.
type Projects interface {
	List(ctx context.Context) ([]model.Project, error)
	// ListForUser returns projects the user owns or is a member of.
	ListForUser(ctx context.Context, userID primitive.ObjectID) ([]model.Project, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Project, error)
	Insert(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*model.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Tasks is the tasks collection.
type Tasks interface {
	List(ctx context.Context) ([]model.Task, error)
	ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]model.Task, error)
	ListByAssignee(ctx context.Context, userID primitive.ObjectID) ([]model.Task, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Task, error)
	Insert(ctx context.Context, t *model.Task) error
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*model.Task, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
