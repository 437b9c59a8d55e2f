package db

import (
	"github.com/feedbook/feedbook-be/model"
	"github.com/feedbook/feedbook-be/store"
)

type Posts struct {
	store   store.Store
	records []model.Post
}

func loadPosts(s store.Store) (*Posts, error) {
	records, err := loadCollection[model.Post](s, PostsKey)
	if err != nil {
		return nil, err
	}
	return &Posts{store: s, records: records}, nil
}

// All returns the collection in insertion order, never nil. The caller owns
// the copy.
func (p *Posts) All() []model.Post {
	return append(make([]model.Post, 0, len(p.records)), p.records...)
}

func (p *Posts) Find(id string) *model.Post {
	for i := range p.records {
		if p.records[i].Id == id {
			post := p.records[i]
			return &post
		}
	}
	return nil
}

func (p *Posts) Append(post model.Post) error {
	next := append(p.records, post)
	if err := saveCollection(p.store, PostsKey, next); err != nil {
		return err
	}
	p.records = next
	return nil
}

// Replace swaps in a new collection and persists it.
func (p *Posts) Replace(records []model.Post) error {
	if err := saveCollection(p.store, PostsKey, records); err != nil {
		return err
	}
	p.records = records
	return nil
}
