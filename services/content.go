package services

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/feedbook/feedbook-be/app"
	"github.com/feedbook/feedbook-be/db"
	"github.com/feedbook/feedbook-be/model"
	"github.com/feedbook/feedbook-be/util"
)

// ContentService owns the post and comment collections.
type ContentService struct {
	mu       sync.Mutex
	db       *db.Database
	notifier *app.Notifier
}

func NewContentService(database *db.Database, notifier *app.Notifier) *ContentService {
	return &ContentService{db: database, notifier: notifier}
}

// ListPosts returns every post ordered by creation time descending. Ties on
// equal timestamps come out in reverse insertion order.
func (s *ContentService) ListPosts() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.db.Posts.All()
	reversePosts(posts)
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

// ListPostsByAuthor filters ListPosts down to one author's posts.
func (s *ContentService) ListPostsByAuthor(authorId string) []model.Post {
	all := s.ListPosts()
	posts := make([]model.Post, 0, len(all))
	for _, post := range all {
		if post.AuthorId == authorId {
			posts = append(posts, post)
		}
	}
	return posts
}

func (s *ContentService) GetPost(id string) *model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Posts.Find(id)
}

// CreatePost appends a post authored by the given session with a fresh id,
// the current time and an empty like set.
func (s *ContentService) CreatePost(req *db.CreatePost, author *model.Session) (*model.Post, error) {
	if author == nil {
		return nil, opFailed("create post", errNotAuthenticated)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := model.Post{
		Id:         uuid.NewString(),
		Title:      util.SanitizeUGC(req.Title),
		Content:    util.SanitizeUGC(req.Content),
		ImageUrl:   req.ImageUrl,
		AuthorId:   author.Id,
		AuthorName: author.DisplayName,
		CreatedAt:  time.Now(),
		Likes:      []string{},
	}
	if err := s.db.Posts.Append(post); err != nil {
		return nil, opFailed("create post", err)
	}

	s.notifier.Publish(app.ChangedPosts)
	return &post, nil
}

// UpdatePost merges the non-nil fields into the post and persists the
// collection. It returns (nil, nil) when the post doesn't exist.
//
// Authorship is not checked here: callers are trusted to have verified the
// author, matching where the check has always lived (the presentation layer).
func (s *ContentService) UpdatePost(id string, fields *db.UpdatePost) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.db.Posts.All()
	for i := range posts {
		if posts[i].Id != id {
			continue
		}
		if fields.Title != nil {
			posts[i].Title = util.SanitizeUGC(*fields.Title)
		}
		if fields.Content != nil {
			posts[i].Content = util.SanitizeUGC(*fields.Content)
		}
		if fields.ImageUrl != nil {
			posts[i].ImageUrl = *fields.ImageUrl
		}
		if err := s.db.Posts.Replace(posts); err != nil {
			return nil, opFailed("update post", err)
		}
		updated := posts[i]
		s.notifier.Publish(app.ChangedPosts)
		return &updated, nil
	}
	return nil, nil
}

// DeletePost removes the post and cascades to every comment referencing it.
// Deleting a missing post is a no-op.
func (s *ContentService) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.db.Posts.All()
	kept := posts[:0]
	for _, post := range posts {
		if post.Id != id {
			kept = append(kept, post)
		}
	}
	if len(kept) == len(posts) {
		return nil
	}
	if err := s.db.Posts.Replace(kept); err != nil {
		return opFailed("delete post", err)
	}

	comments := s.db.Comments.All()
	keptComments := comments[:0]
	for _, comment := range comments {
		if comment.PostId != id {
			keptComments = append(keptComments, comment)
		}
	}
	// Not transactional: a crash here leaves the cascade half-applied.
	if err := s.db.Comments.Replace(keptComments); err != nil {
		return opFailed("delete post", err)
	}

	s.notifier.Publish(app.ChangedPosts, app.ChangedComments)
	return nil
}

// ToggleLike adds userId to the post's like set, or removes it if already
// present; toggling twice restores the original set. A missing post is a
// silent no-op.
func (s *ContentService) ToggleLike(postId, userId string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.db.Posts.All()
	for i := range posts {
		if posts[i].Id != postId {
			continue
		}
		if posts[i].LikedBy(userId) {
			likes := make([]string, 0, len(posts[i].Likes)-1)
			for _, id := range posts[i].Likes {
				if id != userId {
					likes = append(likes, id)
				}
			}
			posts[i].Likes = likes
		} else {
			posts[i].Likes = append(posts[i].Likes, userId)
		}
		if err := s.db.Posts.Replace(posts); err != nil {
			return nil, opFailed("toggle like", err)
		}
		updated := posts[i]
		s.notifier.Publish(app.ChangedPosts)
		return &updated, nil
	}
	return nil, nil
}

// ListComments returns the comments on one post, creation time descending
// with the same tie rule as ListPosts.
func (s *ContentService) ListComments(postId string) []model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.db.Comments.All()
	comments := make([]model.Comment, 0, len(all))
	for _, comment := range all {
		if comment.PostId == postId {
			comments = append(comments, comment)
		}
	}
	reverseComments(comments)
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments
}

// AddComment appends a comment with a fresh id and the current time. The
// post's existence is not checked, so a comment can reference a post deleted
// in between; the cascade on delete is the only cleanup.
func (s *ContentService) AddComment(req *db.CreateComment, author *model.Session) (*model.Comment, error) {
	if author == nil {
		return nil, opFailed("add comment", errNotAuthenticated)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment := model.Comment{
		Id:         uuid.NewString(),
		PostId:     req.PostId,
		Text:       util.SanitizeUGC(req.Text),
		AuthorId:   author.Id,
		AuthorName: author.DisplayName,
		CreatedAt:  time.Now(),
	}
	if err := s.db.Comments.Append(comment); err != nil {
		return nil, opFailed("add comment", err)
	}

	s.notifier.Publish(app.ChangedComments)
	return &comment, nil
}

func reversePosts(posts []model.Post) {
	for i, j := 0, len(posts)-1; i < j; i, j = i+1, j-1 {
		posts[i], posts[j] = posts[j], posts[i]
	}
}

func reverseComments(comments []model.Comment) {
	for i, j := 0, len(comments)-1; i < j; i, j = i+1, j-1 {
		comments[i], comments[j] = comments[j], comments[i]
	}
}
