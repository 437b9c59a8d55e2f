package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feedbook/feedbook-be/app"
	"github.com/feedbook/feedbook-be/model"
	"github.com/feedbook/feedbook-be/services"
	"github.com/feedbook/feedbook-be/util"
)

type userRoutes struct {
	auth   *services.AuthService
	banner *app.Banner
}

func AddUserRoutes(group *gin.RouterGroup, auth *services.AuthService, banner *app.Banner) {
	routes := userRoutes{auth, banner}

	users := group.Group("/users")
	users.PUT("", routes.signup)

	session := group.Group("/session")
	session.PUT("", routes.login)
	session.DELETE("", routes.logout)
	session.GET("", routes.currentSession)
}

type signupReq struct {
	Email       string
	Password    string
	DisplayName string
}

func (ur *userRoutes) signup(c *gin.Context) {
	var req signupReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}
	session, err := ur.auth.Signup(req.Email, req.Password, req.DisplayName)
	if err != nil {
		ur.fail(c, err, "signup error occurred")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionRes(session),
	})
}

type loginReq struct {
	Email    string
	Password string
}

func (ur *userRoutes) login(c *gin.Context) {
	var req loginReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}
	session, err := ur.auth.Login(req.Email, req.Password)
	if err != nil {
		ur.fail(c, err, "login error occurred")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionRes(session),
	})
}

func (ur *userRoutes) logout(c *gin.Context) {
	if err := ur.auth.Logout(); err != nil {
		ur.fail(c, err, "logout error occurred")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

func (ur *userRoutes) currentSession(c *gin.Context) {
	session := ur.auth.CurrentSession()
	if session == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    nil,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionRes(session),
	})
}

func (ur *userRoutes) fail(c *gin.Context, err error, logMsg string) {
	log.Println(logMsg, err)
	httpErr := buildServiceHTTPErr(err)
	ur.banner.Show(httpErr.Message)
	util.HandleHTTPErrorRes(c, httpErr)
}

func sessionRes(session *model.Session) gin.H {
	return gin.H{
		"session": session,
		"avatar":  util.Avatar(session.DisplayName),
	}
}
