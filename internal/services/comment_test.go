package services

import (
	"context"
	"errors"
	"testing"

	"crossblog/internal/models"
	"crossblog/internal/repository"
	"crossblog/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommentSvc(comments []*models.Comment) (CommentService, *mockArticleRepo, *mockCommentRepo) {
	articles := new(mockArticleRepo)
	repo := new(mockCommentRepo)
	filter := filterComments(comments)

	repo.On("Query", mock.Anything, mock.AnythingOfType("repository.CommentQuery")).
		Return(func(_ context.Context, q repository.CommentQuery) []*models.Comment { return filter(q) }, nil).
		Maybe()
	repo.On("GetByID", mock.Anything, mock.AnythingOfType("int64")).
		Return(findComment(comments), nil).
		Maybe()

	return NewCommentService(articles, repo), articles, repo
}

func TestCommentService_List_ArticleNotFound(t *testing.T) {
	svc, articles, repo := newCommentSvc(buildComments(3))
	articles.On("GetByID", mock.Anything, int64(1)).Return(nil, repository.ErrNotFound)

	_, err := svc.List(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Query", mock.Anything, mock.Anything)
}

func TestCommentService_List(t *testing.T) {
	svc, articles, _ := newCommentSvc(buildComments(1))
	articles.On("GetByID", mock.Anything, mock.Anything).Return(buildArticle(1), nil)

	// единственный комментарий принадлежит статье 1
	list, err := svc.List(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, list)

	svc, articles, _ = newCommentSvc(buildComments(3))
	articles.On("GetByID", mock.Anything, mock.Anything).Return(buildArticle(1), nil)

	list, err = svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCommentService_Get(t *testing.T) {
	t.Run("article not found", func(t *testing.T) {
		svc, articles, _ := newCommentSvc(buildComments(1))
		articles.On("GetByID", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

		_, err := svc.Get(context.Background(), 1, 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("comment id not found", func(t *testing.T) {
		svc, articles, _ := newCommentSvc(buildComments(3))
		articles.On("GetByID", mock.Anything, mock.Anything).Return(buildArticle(1), nil)

		for _, id := range []int64{-1, 0, 2, 42} {
			_, err := svc.Get(context.Background(), 1, id)
			assert.ErrorIs(t, err, ErrNotFound, "comment %d", id)
		}
	})

	t.Run("returns item", func(t *testing.T) {
		svc, articles, _ := newCommentSvc(buildComments(3))
		articles.On("GetByID", mock.Anything, mock.Anything).Return(buildArticle(1), nil)

		c, err := svc.Get(context.Background(), 1, 1)
		require.NoError(t, err)
		assert.Equal(t, "Title1", c.Title)
	})
}

func TestCommentService_Create(t *testing.T) {
	t.Run("bad request before article lookup", func(t *testing.T) {
		svc, articles, _ := newCommentSvc(nil)

		_, err := svc.Create(context.Background(), 1, nil)
		var verrs validation.Errors
		assert.True(t, errors.As(err, &verrs))
		articles.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("article not found", func(t *testing.T) {
		svc, articles, repo := newCommentSvc(nil)
		articles.On("GetByID", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

		_, err := svc.Create(context.Background(), 1, &models.CommentModel{Title: "Title1"})
		assert.ErrorIs(t, err, ErrNotFound)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("item", func(t *testing.T) {
		svc, articles, repo := newCommentSvc(nil)
		articles.On("GetByID", mock.Anything, int64(1)).Return(buildArticle(1), nil)
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Comment")).
			Run(func(args mock.Arguments) { args.Get(1).(*models.Comment).ID = 1 }).
			Return(nil)

		c, err := svc.Create(context.Background(), 1, &models.CommentModel{Title: "Title1", Email: "reader@example.com"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), c.ID)
		assert.Equal(t, int64(1), c.ArticleID)
		assert.Equal(t, "Title1", c.Title)
		repo.AssertExpectations(t)
	})
}

func TestCommentService_UpdateDelete(t *testing.T) {
	svc, articles, repo := newCommentSvc(buildComments(3))
	articles.On("GetByID", mock.Anything, int64(2)).Return(buildArticle(2), nil)
	articles.On("GetByID", mock.Anything, int64(9)).Return(nil, repository.ErrNotFound)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
		return c.ID == 2 && c.Title == "edited"
	})).Return(nil)
	repo.On("Delete", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool { return c.ID == 2 })).Return(nil)

	c, err := svc.Update(context.Background(), 2, 2, &models.CommentModel{Title: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", c.Title)

	_, err = svc.Update(context.Background(), 2, 3, &models.CommentModel{Title: "edited"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(context.Background(), 9, 2, &models.CommentModel{Title: "edited"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), 2, 2))
	assert.ErrorIs(t, svc.Delete(context.Background(), 9, 2), ErrNotFound)
	repo.AssertExpectations(t)
}
