package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultProjectStatus = "Not Started"

// Column is a board stage embedded in a project.
type Column struct {
	ID    string `bson:"id" json:"id"`
	Title string `bson:"title" json:"title"`
}

// DefaultColumns returns the four fixed stages a new project starts with.
func DefaultColumns() []Column {
	return []Column{
		{ID: "todo", Title: "To Do"},
		{ID: "inprogress", Title: "In Progress"},
		{ID: "review", Title: "In Review"},
		{ID: "done", Title: "Done"},
	}
}

// Project groups tasks under an owner and a member set. CreatedBy is
// immutable after creation; Members is replaced wholesale on update.
type Project struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Status      string               `bson:"status" json:"status"`
	DueDate     *time.Time           `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Columns     []Column             `bson:"columns" json:"columns"`
	Members     []primitive.ObjectID `bson:"members" json:"members"`
	CreatedBy   primitive.ObjectID   `bson:"createdBy" json:"createdBy"`
}

// CanWrite reports whether userID may mutate this project and its tasks:
// the owner always can, members can. Deletion is stricter and checks
// CreatedBy directly.
func (p *Project) CanWrite(userID primitive.ObjectID) bool {
	if p.CreatedBy == userID {
		return true
	}
	for _, m := range p.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// ProjectView is the expanded representation returned by the API.
type ProjectView struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Status      string             `json:"status"`
	DueDate     *time.Time         `json:"dueDate,omitempty"`
	Columns     []Column           `json:"columns"`
	Members     []UserBrief        `json:"members"`
	CreatedBy   UserBrief          `json:"createdBy"`
}

func (p *Project) Ref() ProjectRef {
	return ProjectRef{ID: p.ID, Name: p.Name}
}
