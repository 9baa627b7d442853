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

// ProjectStore implements store.Projects on the projects collection.
type ProjectStore struct {
	col *mongo.Collection
}

func (s *ProjectStore) List(ctx context.Context) ([]model.Project, error) {
	return s.find(ctx, bson.M{})
}

func (s *ProjectStore) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]model.Project, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"createdBy": userID},
		bson.M{"members": userID},
	}}
	return s.find(ctx, filter)
}

func (s *ProjectStore) find(ctx context.Context, filter bson.M) ([]model.Project, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []model.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectStore) Get(ctx context.Context, id primitive.ObjectID) (*model.Project, error) {
	var project model.Project
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectStore) Insert(ctx context.Context, p *model.Project) error {
	res, err := s.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *ProjectStore) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*model.Project, error) {
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

func (s *ProjectStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
