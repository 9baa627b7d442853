package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultPriority = "Medium"

// Comment is a discussion entry embedded in a task.
type Comment struct {
	Text      string             `bson:"text" json:"text"`
	Author    primitive.ObjectID `bson:"author" json:"author"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Task belongs to exactly one project and is optionally assigned to one
// member. The assignee is not required to be a member of the project, and a
// deleted member leaves a dangling assignee reference; both are accepted.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	Priority    string             `bson:"priority" json:"priority"`
	DueDate     *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Project     primitive.ObjectID `bson:"project" json:"project"`
	Assignee    primitive.ObjectID `bson:"assignee,omitempty" json:"assignee,omitempty"`
	Completed   bool               `bson:"completed" json:"completed"`
	Comments    []Comment          `bson:"comments" json:"comments"`
	Attachments []string           `bson:"attachments" json:"attachments"`
}

// TaskView is the expanded representation: project as {id,name}, assignee
// as {id,name,avatar}. Assignee is nil when unset or dangling.
type TaskView struct {
	ID          primitive.ObjectID `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Status      string             `json:"status"`
	Priority    string             `json:"priority"`
	DueDate     *time.Time         `json:"dueDate,omitempty"`
	Project     ProjectRef         `json:"project"`
	Assignee    *UserBrief         `json:"assignee,omitempty"`
	Completed   bool               `json:"completed"`
	Comments    []Comment          `json:"comments"`
	Attachments []string           `json:"attachments"`
}
