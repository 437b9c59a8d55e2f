// Package db holds the record repositories: in-memory collections hydrated
// from the blob store at startup and rewritten to it wholesale on every
// mutation.
package db

import (
	"github.com/feedbook/feedbook-be/store"
)

// Blob keys of the persisted collections. This layout is the external
// contract; other writers of the same store must use the same keys.
const (
	UsersKey    = "users"
	PostsKey    = "posts"
	CommentsKey = "comments"
	SessionKey  = "currentUser"
)

type Database struct {
	Users    *Users
	Posts    *Posts
	Comments *Comments
	Session  *Sessions
}

// Open hydrates every collection from the store. Missing or malformed blobs
// hydrate to empty collections rather than failing.
func Open(s store.Store) (*Database, error) {
	users, err := loadUsers(s)
	if err != nil {
		return nil, err
	}
	posts, err := loadPosts(s)
	if err != nil {
		return nil, err
	}
	comments, err := loadComments(s)
	if err != nil {
		return nil, err
	}
	session, err := loadSessions(s)
	if err != nil {
		return nil, err
	}
	return &Database{
		Users:    users,
		Posts:    posts,
		Comments: comments,
		Session:  session,
	}, nil
}

type CreatePost struct {
	Title    string
	Content  string
	ImageUrl string
}

// UpdatePost carries the editable post fields; nil means "leave unchanged".
type UpdatePost struct {
	Title    *string
	Content  *string
	ImageUrl *string
}

type CreateComment struct {
	PostId string
	Text   string
}
