package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ashish-Kumar16/TaskGroove/internal/model"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store"
)

// TaskStore implements store.Tasks on the tasks collection.
type TaskStore struct {
	col *mongo.Collection
}

func (s *TaskStore) List(ctx context.Context) ([]model.Task, error) {
	return s.find(ctx, bson.M{})
}

func (s *TaskStore) ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]model.Task, error) {
	return s.find(ctx, bson.M{"project": projectID})
}

func (s *TaskStore) ListByAssignee(ctx context.Context, userID primitive.ObjectID) ([]model.Task, error) {
	return s.find(ctx, bson.M{"assignee": userID})
}

func (s *TaskStore) find(ctx context.Context, filter bson.M) ([]model.Task, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []model.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskStore) Get(ctx context.Context, id primitive.ObjectID) (*model.Task, error) {
	var task model.Task
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskStore) Insert(ctx context.Context, t *model.Task) error {
	res, err := s.col.InsertOne(ctx, t)
	if err != nil {
		return err
	}
	t.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *TaskStore) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*model.Task, error) {
	if len(fields) == 0 {
		return s.Get(ctx, id)
	}
	res, err := s.col.UpdateByID(ctx, id, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, store.ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *TaskStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
