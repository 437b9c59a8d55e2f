package model

import (
	"time"
)

type Post struct {
	Id         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ImageUrl   string    `json:"imageUrl,omitempty"`
	AuthorId   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	Likes      []string  `json:"likes"`
}

// LikedBy reports whether userId is in the post's like set. Each user id
// appears at most once.
func (p *Post) LikedBy(userId string) bool {
	for _, id := range p.Likes {
		if id == userId {
			return true
		}
	}
	return false
}

func (p *Post) CanEdit(user *Session) bool {
	return user != nil && user.Id == p.AuthorId
}

// Comment is immutable once created and is only ever removed by the cascade
// when its post is deleted.
type Comment struct {
	Id         string    `json:"id"`
	PostId     string    `json:"postId"`
	Text       string    `json:"text"`
	AuthorId   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}
