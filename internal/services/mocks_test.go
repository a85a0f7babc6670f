package services

import (
	"context"
	"fmt"

	"crossblog/internal/models"
	"crossblog/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Мок-репозитории (testify/mock)
type mockArticleRepo struct{ mock.Mock }

func (m *mockArticleRepo) Query(ctx context.Context, q repository.ArticleQuery) ([]*models.Article, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]*models.Article)
	return list, args.Error(1)
}

func (m *mockArticleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*models.Article)
	return a, args.Error(1)
}

func (m *mockArticleRepo) Insert(ctx context.Context, a *models.Article) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockArticleRepo) Update(ctx context.Context, a *models.Article) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockArticleRepo) Delete(ctx context.Context, a *models.Article) error {
	return m.Called(ctx, a).Error(0)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) Query(ctx context.Context, q repository.CommentQuery) ([]*models.Comment, error) {
	args := m.Called(ctx, q)
	if fn, ok := args.Get(0).(func(context.Context, repository.CommentQuery) []*models.Comment); ok {
		return fn(ctx, q), args.Error(1)
	}
	list, _ := args.Get(0).([]*models.Comment)
	return list, args.Error(1)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(int64) (*models.Comment, error)); ok {
		return fn(id)
	}
	c, _ := args.Get(0).(*models.Comment)
	return c, args.Error(1)
}

func (m *mockCommentRepo) Insert(ctx context.Context, c *models.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCommentRepo) Update(ctx context.Context, c *models.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCommentRepo) Delete(ctx context.Context, c *models.Comment) error {
	return m.Called(ctx, c).Error(0)
}

// Фикстуры в духе билдера: Title1, Title2, ...; ArticleID комментария = его номер.
func buildArticle(n int) *models.Article {
	return &models.Article{ID: int64(n), Title: fmt.Sprintf("Title%d", n), Content: fmt.Sprintf("Content%d", n)}
}

func buildArticles(size int) []*models.Article {
	out := make([]*models.Article, 0, size)
	for i := 1; i <= size; i++ {
		out = append(out, buildArticle(i))
	}
	return out
}

func buildComments(size int) []*models.Comment {
	out := make([]*models.Comment, 0, size)
	for i := 1; i <= size; i++ {
		out = append(out, &models.Comment{
			ID:        int64(i),
			ArticleID: int64(i),
			Title:     fmt.Sprintf("Title%d", i),
			Content:   fmt.Sprintf("Content%d", i),
		})
	}
	return out
}

// filterComments повторяет семантику CommentRepo.Query над фикстурами.
func filterComments(all []*models.Comment) func(repository.CommentQuery) []*models.Comment {
	return func(q repository.CommentQuery) []*models.Comment {
		var out []*models.Comment
		for _, c := range all {
			if c.ArticleID == q.ArticleID && (q.ID == 0 || c.ID == q.ID) {
				out = append(out, c)
			}
		}
		return out
	}
}

// findComment повторяет семантику CommentRepo.GetByID над фикстурами.
func findComment(all []*models.Comment) func(int64) (*models.Comment, error) {
	return func(id int64) (*models.Comment, error) {
		for _, c := range all {
			if c.ID == id {
				cp := *c
				return &cp, nil
			}
		}
		return nil, repository.ErrNotFound
	}
}
