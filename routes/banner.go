package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feedbook/feedbook-be/app"
)

type bannerRoutes struct {
	banner *app.Banner
}

// AddBannerRoutes exposes the process-wide error banner so the presentation
// layer can show and dismiss the latest failure message.
func AddBannerRoutes(group *gin.RouterGroup, banner *app.Banner) {
	routes := bannerRoutes{banner}
	b := group.Group("/banner")
	b.GET("", routes.getBanner)
	b.DELETE("", routes.dismissBanner)
}

func (br *bannerRoutes) getBanner(c *gin.Context) {
	message, shown := br.banner.Current()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"message": message,
			"shown":   shown,
		},
	})
}

func (br *bannerRoutes) dismissBanner(c *gin.Context) {
	br.banner.Dismiss()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
