package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fintechpulse/pulse-cms/internal/api/middleware"
	"github.com/fintechpulse/pulse-cms/internal/core/domain"
	"github.com/fintechpulse/pulse-cms/internal/core/ports"
)

type stubArticleService struct {
	createFn func(ctx context.Context, in ports.CreateArticleInput) (*domain.Article, error)
	getFn    func(ctx context.Context, slug string) (*domain.Article, error)
}

func (s *stubArticleService) Create(ctx context.Context, in ports.CreateArticleInput) (*domain.Article, error) {
	return s.createFn(ctx, in)
}

func (s *stubArticleService) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return s.getFn(ctx, slug)
}

func (s *stubArticleService) List(ctx context.Context, in ports.ListArticlesInput) (*ports.ListArticlesResult, error) {
	return &ports.ListArticlesResult{}, nil
}

func (s *stubArticleService) Update(ctx context.Context, id string, in ports.UpdateArticleInput) (*domain.Article, error) {
	return nil, domain.ErrArticleNotFound
}

func (s *stubArticleService) Delete(ctx context.Context, id string) error {
	return domain.ErrArticleNotFound
}

type stubEnqueuer struct {
	events []domain.ViewEvent
}

func (s *stubEnqueuer) Enqueue(event domain.ViewEvent) {
	s.events = append(s.events, event)
}

func TestArticleHandler_Get_EnqueuesViewEvent(t *testing.T) {
	e := echo.New()
	svc := &stubArticleService{
		getFn: func(ctx context.Context, slug string) (*domain.Article, error) {
			return &domain.Article{ID: "a1", Slug: slug, Title: "T"}, nil
		},
	}
	views := &stubEnqueuer{}
	h := NewArticleHandler(svc, views)

	req := httptest.NewRequest(http.MethodGet, "/articles/open-banking", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("open-banking")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(views.events) != 1 || views.events[0].Slug != "open-banking" {
		t.Fatalf("expected one view event for slug, got %+v", views.events)
	}
}

func TestArticleHandler_Create_UsesContextIdentity(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := &stubArticleService{
		createFn: func(ctx context.Context, in ports.CreateArticleInput) (*domain.Article, error) {
			if in.AuthorID != "u42" {
				t.Fatalf("expected author from context, got %q", in.AuthorID)
			}
			return &domain.Article{ID: "a1", Slug: "t", Title: in.Title, Category: in.Category, AuthorID: in.AuthorID}, nil
		},
	}
	h := NewArticleHandler(svc, nil)

	body := `{"title":"T","content":"body","category":"markets"}`
	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, "u42")
	c.Set(middleware.ContextRole, domain.RoleEditor)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestArticleHandler_Create_NoIdentity(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := &stubArticleService{
		createFn: func(ctx context.Context, in ports.CreateArticleInput) (*domain.Article, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewArticleHandler(svc, nil)

	body := `{"title":"T","content":"body","category":"markets"}`
	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
