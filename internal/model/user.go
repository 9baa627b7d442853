package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultRole = "Team Member"

// User is a registered team member. The password hash never leaves the
// backend: it is excluded from JSON here and absent from the views.
type User struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name     string               `bson:"name" json:"name"`
	Email    string               `bson:"email" json:"email"`
	Password string               `bson:"password" json:"-"`
	Phone    string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Role     string               `bson:"role" json:"role"`
	Avatar   string               `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Projects []primitive.ObjectID `bson:"projects" json:"-"`
}

// UserBrief is the compact form embedded in project and task views.
type UserBrief struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Avatar string             `json:"avatar,omitempty"`
}

func (u *User) Brief() UserBrief {
	return UserBrief{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

// ProjectRef is the {id,name} expansion of a project reference.
type ProjectRef struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

// MemberView is the member representation returned by the API: no password
// field, project back-references expanded to {id,name}.
type MemberView struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	Phone    string             `json:"phone,omitempty"`
	Role     string             `json:"role"`
	Avatar   string             `json:"avatar,omitempty"`
	Projects []ProjectRef       `json:"projects"`
}
