package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/upgoma/upg-portal/internal/app/models"
	"github.com/upgoma/upg-portal/internal/app/models/dto"
	"github.com/upgoma/upg-portal/internal/app/services"
	"github.com/upgoma/upg-portal/internal/middleware"
	"github.com/upgoma/upg-portal/internal/pkg/markup"
)

// NewsController handles the public feed and the publishing surface.
type NewsController struct {
	newsService services.NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService) *NewsController {
	return &NewsController{
		newsService: newsService,
	}
}

// ListNews returns the feed, newest first
// @Summary List news
// @Description Returns all published items, or the bundled fallback list when the store is unavailable or empty
// @Tags news
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.NewsItem}
// @Router /news [get]
func (c *NewsController) ListNews(ctx *gin.Context) {
	items := c.newsService.List(ctx.Request.Context())

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      items,
		Timestamp: time.Now(),
	})
}

// GetNewsByID returns one feed item and its parsed body
// @Summary Get news details
// @Tags news
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "News item not found"
// @Router /news/{id} [get]
func (c *NewsController) GetNewsByID(ctx *gin.Context) {
	item, err := c.newsService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	blocks := markup.Parse(item.Content)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: gin.H{
			"item":      item,
			"body":      dto.NewsBodyResponse{Blocks: blocks},
			"plainText": markup.PlainText(blocks),
		},
		Timestamp: time.Now(),
	})
}

// PublishNews publishes a new feed item
// @Summary Publish a news item
// @Description Inserts the item and returns the refreshed feed
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PublishNewsRequest true "News item"
// @Success 201 {object} dto.APIResponse{data=[]models.NewsItem}
// @Failure 400 {object} dto.ErrorResponse "Invalid news data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the authorized administrator"
// @Router /news [post]
func (c *NewsController) PublishNews(ctx *gin.Context) {
	var req dto.PublishNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, "Invalid news data", err)
		return
	}

	item := models.NewsItem{
		ID:       uuid.New().String(),
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Category: models.NewsCategory(req.Category),
		Image:    req.Image,
	}

	items, err := c.newsService.Publish(ctx.Request.Context(), &item)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      items,
		Timestamp: time.Now(),
	})
}

// FormatText applies a formatting marker to an editor selection
// @Summary Apply a formatting marker
// @Description Wraps the selection in bold or underline markers, or inserts a subtitle block
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FormatRequest true "Selection and marker kind"
// @Success 200 {object} dto.APIResponse{data=dto.FormatResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid selection"
// @Router /news/format [post]
func (c *NewsController) FormatText(ctx *gin.Context) {
	var req dto.FormatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, "Invalid format request", err)
		return
	}

	text, cursor, err := markup.ApplyFormat(req.Text, req.Start, req.End, markup.FormatKind(req.Kind))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FormatResponse{Text: text, Cursor: cursor},
		Timestamp: time.Now(),
	})
}
