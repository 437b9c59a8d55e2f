package db

import (
	"github.com/feedbook/feedbook-be/model"
	"github.com/feedbook/feedbook-be/store"
)

type Comments struct {
	store   store.Store
	records []model.Comment
}

func loadComments(s store.Store) (*Comments, error) {
	records, err := loadCollection[model.Comment](s, CommentsKey)
	if err != nil {
		return nil, err
	}
	return &Comments{store: s, records: records}, nil
}

// All returns the collection in insertion order, never nil. The caller owns
// the copy.
func (c *Comments) All() []model.Comment {
	return append(make([]model.Comment, 0, len(c.records)), c.records...)
}

func (c *Comments) Append(comment model.Comment) error {
	next := append(c.records, comment)
	if err := saveCollection(c.store, CommentsKey, next); err != nil {
		return err
	}
	c.records = next
	return nil
}

func (c *Comments) Replace(records []model.Comment) error {
	if err := saveCollection(c.store, CommentsKey, records); err != nil {
		return err
	}
	c.records = records
	return nil
}
