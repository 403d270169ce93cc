package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/db"

	"vizigoBack/internal/models"
)

// FirebaseStore talks to a Firebase Realtime Database.
type FirebaseStore struct {
	Client *db.Client
}

func NewFirebaseStore(ctx context.Context, app *firebase.App) (*FirebaseStore, error) {
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase database client: %w", err)
	}
	return &FirebaseStore{Client: client}, nil
}

func (s *FirebaseStore) Push(ctx context.Context, collection string, record interface{}) (string, error) {
	ref, err := s.Client.NewRef(collection).Push(ctx, record)
	if err != nil {
		return "", err
	}
	return ref.Key, nil
}

func (s *FirebaseStore) Create(ctx context.Context, collection, key string, record interface{}) error {
	ref := s.Client.NewRef(collection).Child(key)
	return ref.Transaction(ctx, func(node db.TransactionNode) (interface{}, error) {
		var current interface{}
		if err := node.Unmarshal(&current); err != nil {
			return nil, err
		}
		if current != nil {
			return nil, models.ErrKeyExists
		}
		return record, nil
	})
}

func (s *FirebaseStore) GetAll(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	var docs map[string]json.RawMessage
	if err := s.Client.NewRef(collection).Get(ctx, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = make(map[string]json.RawMessage)
	}
	return docs, nil
}
