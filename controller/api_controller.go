package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kuxall/portfolio-data/config"
	"github.com/kuxall/portfolio-data/model"
	"github.com/kuxall/portfolio-data/service"
	log "github.com/sirupsen/logrus"
)

var (
	errInvalidQuery   = errors.New("INVALID_QUERY")
	errReadmeNotFound = errors.New("README_NOT_FOUND")
	errFetch          = errors.New("FETCH_ERROR")
)

type APIController interface {
	GetPortfolio(ctx *gin.Context)
	GetProjects(ctx *gin.Context)
	GetSkills(ctx *gin.Context)
	GetStats(ctx *gin.Context)
	GetNarrative(ctx *gin.Context)
	GetReadme(ctx *gin.Context)
	GetLanguages(ctx *gin.Context)
}

type apiController struct {
	portfolioService service.PortfolioService
	config           config.Config
}

func NewAPIController(config config.Config, service service.PortfolioService) APIController {
	return apiController{
		portfolioService: service,
		config:           config,
	}
}

func (s apiController) GetPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, s.portfolioService.GetPortfolio(c, s.handle(c)))
}

func (s apiController) GetProjects(c *gin.Context) {
	var query model.ProjectQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Debug("invalid projects query")
		c.JSON(http.StatusBadRequest, model.NewAPIError(errInvalidQuery))
		return
	}

	maxProjects := query.MaxProjects(s.config.Portfolio.MaxFeaturedProjects)
	c.JSON(http.StatusOK, s.portfolioService.GetProjects(c, s.handle(c), maxProjects))
}

func (s apiController) GetSkills(c *gin.Context) {
	c.JSON(http.StatusOK, s.portfolioService.GetSkills(c, s.handle(c)))
}

func (s apiController) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.portfolioService.GetStats(c, s.handle(c)))
}

func (s apiController) GetNarrative(c *gin.Context) {
	c.JSON(http.StatusOK, s.portfolioService.GetNarrative(c, s.handle(c)))
}

// GetReadme answers the raw markdown of the repository readme
func (s apiController) GetReadme(c *gin.Context) {
	readme, found := s.portfolioService.GetReadme(c, s.handle(c), c.Param("repo"))
	if !found {
		c.JSON(http.StatusNotFound, model.NewAPIError(errReadmeNotFound))
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(readme))
}

func (s apiController) GetLanguages(c *gin.Context) {
	languages, found := s.portfolioService.GetLanguages(c, s.handle(c), c.Param("repo"))
	if !found {
		c.JSON(http.StatusBadGateway, model.NewAPIError(errFetch))
		return
	}

	c.JSON(http.StatusOK, languages)
}

// handle returns the handle from the path, or the configured username
func (s apiController) handle(c *gin.Context) string {
	if handle := c.Param("handle"); handle != "" {
		return handle
	}

	return s.config.Github.Username
}
