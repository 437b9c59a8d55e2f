package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feedbook/feedbook-be/app"
	"github.com/feedbook/feedbook-be/db"
	"github.com/feedbook/feedbook-be/model"
	"github.com/feedbook/feedbook-be/services"
	"github.com/feedbook/feedbook-be/util"
)

type postRoutes struct {
	content *services.ContentService
	banner  *app.Banner
}

func AddPostRoutes(group *gin.RouterGroup, content *services.ContentService, auth *services.AuthService, banner *app.Banner) {
	routes := postRoutes{content, banner}

	// Reads work logged out; mutating handlers check the session themselves.
	posts := group.Group("/posts", Auth(auth, &AuthConfig{sessionNotRequired: true}))
	posts.GET("", routes.getPosts)
	posts.GET("/:id", routes.getPostById)
	posts.PUT("", routes.createPost)
	posts.PATCH("/:id", routes.updatePost)
	posts.DELETE("/:id", routes.deletePost)
	posts.POST("/:id/likes", routes.toggleLike)
	posts.GET("/:id/comments", routes.getComments)
	posts.PUT("/:id/comments", routes.createComment)
}

func (pr *postRoutes) getPosts(c *gin.Context) {
	var posts []model.Post
	if author := c.Query("author"); author != "" {
		posts = pr.content.ListPostsByAuthor(author)
	} else {
		posts = pr.content.ListPosts()
	}

	if sinceRaw := c.Query("since"); sinceRaw != "" {
		since, err := util.ParseTime(sinceRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "since must be RFC3339",
			})
			return
		}
		filtered := make([]model.Post, 0, len(posts))
		for _, post := range posts {
			if post.CreatedAt.After(since) {
				filtered = append(filtered, post)
			}
		}
		posts = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    posts,
	})
}

func (pr *postRoutes) getPostById(c *gin.Context) {
	post := pr.content.GetPost(c.Param("id"))
	if post == nil {
		util.HandleHTTPErrorRes(c, &util.PostNotFoundHTTPErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    post,
	})
}

type createPostReq struct {
	Title    string
	Content  string
	ImageUrl string
}

func (pr *postRoutes) createPost(c *gin.Context) {
	session := getSession(c)
	if session == nil {
		util.HandleHTTPErrorRes(c, &util.NotLoggedInHTTPErr)
		return
	}
	var req createPostReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}
	post, err := pr.content.CreatePost(&db.CreatePost{
		Title:    req.Title,
		Content:  req.Content,
		ImageUrl: req.ImageUrl,
	}, session)
	if err != nil {
		pr.fail(c, err, "create post error occurred")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    post,
	})
}

type updatePostReq struct {
	Title    *string
	Content  *string
	ImageUrl *string
}

// updatePost enforces authorship here, not in the service: the author check
// has always been the presentation layer's job.
func (pr *postRoutes) updatePost(c *gin.Context) {
	session := getSession(c)
	if session == nil {
		util.HandleHTTPErrorRes(c, &util.NotLoggedInHTTPErr)
		return
	}
	post := pr.content.GetPost(c.Param("id"))
	if post == nil {
		util.HandleHTTPErrorRes(c, &util.PostNotFoundHTTPErr)
		return
	}
	if !post.CanEdit(session) {
		util.HandleHTTPErrorRes(c, &util.NotAuthorHTTPErr)
		return
	}
	var req updatePostReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}
	updated, err := pr.content.UpdatePost(post.Id, &db.UpdatePost{
		Title:    req.Title,
		Content:  req.Content,
		ImageUrl: req.ImageUrl,
	})
	if err != nil {
		pr.fail(c, err, "update post error occurred")
		return
	}
	if updated == nil {
		util.HandleHTTPErrorRes(c, &util.PostNotFoundHTTPErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
	})
}

func (pr *postRoutes) deletePost(c *gin.Context) {
	session := getSession(c)
	if session == nil {
		util.HandleHTTPErrorRes(c, &util.NotLoggedInHTTPErr)
		return
	}
	post := pr.content.GetPost(c.Param("id"))
	if post == nil {
		util.HandleHTTPErrorRes(c, &util.PostNotFoundHTTPErr)
		return
	}
	if !post.CanEdit(session) {
		util.HandleHTTPErrorRes(c, &util.NotAuthorHTTPErr)
		return
	}
	if err := pr.content.DeletePost(post.Id); err != nil {
		pr.fail(c, err, "delete post error occurred")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

func (pr *postRoutes) toggleLike(c *gin.Context) {
	session := getSession(c)
	if session == nil {
		util.HandleHTTPErrorRes(c, &util.NotLoggedInHTTPErr)
		return
	}
	post, err := pr.content.ToggleLike(c.Param("id"), session.Id)
	if err != nil {
		pr.fail(c, err, "toggle like error occurred")
		return
	}
	// A vanished post is a no-op by contract, not an error.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    post,
	})
}

func (pr *postRoutes) getComments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    pr.content.ListComments(c.Param("id")),
	})
}

type createCommentReq struct {
	Text string
}

func (pr *postRoutes) createComment(c *gin.Context) {
	session := getSession(c)
	if session == nil {
		util.HandleHTTPErrorRes(c, &util.NotLoggedInHTTPErr)
		return
	}
	var req createCommentReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}
	comment, err := pr.content.AddComment(&db.CreateComment{
		PostId: c.Param("id"),
		Text:   req.Text,
	}, session)
	if err != nil {
		pr.fail(c, err, "add comment error occurred")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    comment,
	})
}

func (pr *postRoutes) fail(c *gin.Context, err error, logMsg string) {
	log.Println(logMsg, err)
	httpErr := buildServiceHTTPErr(err)
	pr.banner.Show(httpErr.Message)
	util.HandleHTTPErrorRes(c, httpErr)
}
