package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fintechpulse/pulse-cms/internal/api/metrics"
	"github.com/fintechpulse/pulse-cms/internal/core/domain"
	"github.com/fintechpulse/pulse-cms/internal/core/ports"
)

// ViewEnqueuer is the interface the handler uses to hand off view events.
type ViewEnqueuer interface {
	Enqueue(event domain.ViewEvent)
}

// ArticleHandler handles editorial content endpoints.
type ArticleHandler struct {
	service ports.ArticleService
	views   ViewEnqueuer
}

func NewArticleHandler(service ports.ArticleService, views ViewEnqueuer) *ArticleHandler {
	return &ArticleHandler{service: service, views: views}
}

type createArticleRequest struct {
	Title     string `json:"title"    validate:"required"`
	Summary   string `json:"summary"`
	Content   string `json:"content"  validate:"required"`
	Category  string `json:"category" validate:"required"`
	Published bool   `json:"published"`
}

// updateArticleRequest carries partial updates: absent fields stay untouched.
type updateArticleRequest struct {
	Title     *string `json:"title"`
	Summary   *string `json:"summary"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
	Published *bool   `json:"published"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listArticlesResponse struct {
	Data       []domain.Article   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// List returns a page of articles, newest first. Public.
//
// @Summary      List articles
// @Tags         articles
// @Produce      json
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size"
// @Param        category  query     string  false  "Filter by category id"
// @Success      200       {object}  listArticlesResponse
// @Router       /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	res, err := h.service.List(c.Request().Context(), ports.ListArticlesInput{
		Page:     page,
		Limit:    limit,
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listArticlesResponse{
		Data: res.Articles,
		Pagination: paginationResponse{
			Total:      res.Total,
			Page:       res.Page,
			Limit:      res.Limit,
			TotalPages: res.TotalPages,
		},
	})
}

// Get returns one article by slug and enqueues a view event. Public.
//
// @Summary      Get an article
// @Tags         articles
// @Produce      json
// @Param        slug  path      string  true  "Article slug"
// @Success      200   {object}  domain.Article
// @Failure      404   {object}  map[string]string
// @Router       /articles/{slug} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	article, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	if h.views != nil {
		h.views.Enqueue(domain.ViewEvent{
			Slug:      article.Slug,
			VisitorID: c.RealIP(),
			Timestamp: time.Now().UTC(),
		})
	}

	return c.JSON(http.StatusOK, article)
}

// Create publishes a new article. Editor portal (editors and admins).
//
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArticleRequest  true  "Article details"
// @Success      201   {object}  domain.Article
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	article, err := h.service.Create(c.Request().Context(), ports.CreateArticleInput{
		Title:     req.Title,
		Summary:   req.Summary,
		Content:   req.Content,
		Category:  req.Category,
		AuthorID:  userID,
		Published: req.Published,
	})
	if err != nil {
		return err
	}

	metrics.ArticlesCreatedTotal.WithLabelValues(article.Category).Inc()
	return c.JSON(http.StatusCreated, article)
}

// Update patches the provided fields of an article. Editor portal.
//
// @Summary      Update an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Article id"
// @Param        body  body      updateArticleRequest  true  "Fields to change"
// @Success      200   {object}  domain.Article
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /articles/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	article, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateArticleInput{
		Title:     req.Title,
		Summary:   req.Summary,
		Content:   req.Content,
		Category:  req.Category,
		Published: req.Published,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, article)
}

// Delete removes an article. Admin only.
//
// @Summary      Delete an article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Article deleted"})
}
