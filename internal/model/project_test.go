package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProjectCanWrite(t *testing.T) {
	owner := primitive.NewObjectID()
	member := primitive.NewObjectID()
	outsider := primitive.NewObjectID()

	tests := []struct {
		name    string
		members []primitive.ObjectID
		user    primitive.ObjectID
		want    bool
	}{
		{"owner", nil, owner, true},
		{"owner not in member list", []primitive.ObjectID{member}, owner, true},
		{"member", []primitive.ObjectID{member}, member, true},
		{"outsider", []primitive.ObjectID{member}, outsider, false},
		{"outsider empty members", nil, outsider, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project{CreatedBy: owner, Members: tt.members}
			assert.Equal(t, tt.want, p.CanWrite(tt.user))
		})
	}
}

func TestDefaultColumns(t *testing.T) {
	cols := DefaultColumns()
	assert.Len(t, cols, 4)
	assert.Equal(t, "todo", cols[0].ID)
	assert.Equal(t, "To Do", cols[0].Title)
	assert.Equal(t, "done", cols[3].ID)
	assert.Equal(t, "Done", cols[3].Title)
}
