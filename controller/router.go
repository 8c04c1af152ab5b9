package controller

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter defines all routes of the api
func NewRouter(apiController APIController) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		RequestID(),
		cors.New(cors.Config{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET"},
			AllowHeaders:  []string{"Content-Type, Content-Length, Accept-Encoding, Host, accept, Origin, Cache-Control, X-Requested-With, X-Request-ID"},
			ExposeHeaders: []string{RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}),
	)

	api := router.Group("/portfolio")
	{
		api.GET("", apiController.GetPortfolio)
		api.GET("/:handle", apiController.GetPortfolio)
		api.GET("/:handle/projects", apiController.GetProjects)
		api.GET("/:handle/skills", apiController.GetSkills)
		api.GET("/:handle/stats", apiController.GetStats)
		api.GET("/:handle/narrative", apiController.GetNarrative)
		api.GET("/:handle/projects/:repo/readme", apiController.GetReadme)
		api.GET("/:handle/projects/:repo/languages", apiController.GetLanguages)
	}

	return router
}
