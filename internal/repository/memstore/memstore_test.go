package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"crossblog/internal/models"
	"crossblog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedArticles(t *testing.T, s *Store, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		a := &models.Article{Title: fmt.Sprintf("Title%d", i), Content: fmt.Sprintf("Content%d", i)}
		require.NoError(t, s.Articles().Insert(context.Background(), a))
	}
}

func TestArticles_QueryFilters(t *testing.T) {
	s := New()
	seedArticles(t, s, 3)
	ctx := context.Background()

	all, err := s.Articles().Query(ctx, repository.ArticleQuery{TitleContains: "Title"})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)

	none, err := s.Articles().Query(ctx, repository.ArticleQuery{TitleContains: "Invalid"})
	require.NoError(t, err)
	assert.Empty(t, none)

	lower, err := s.Articles().Query(ctx, repository.ArticleQuery{TitleContains: "title"})
	require.NoError(t, err)
	assert.Len(t, lower, 3)

	strict, err := s.Articles().Query(ctx, repository.ArticleQuery{TitleContains: "title", CaseSensitive: true})
	require.NoError(t, err)
	assert.Empty(t, strict)

	limited, err := s.Articles().Query(ctx, repository.ArticleQuery{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestArticles_ReturnsCopies(t *testing.T) {
	s := New()
	seedArticles(t, s, 1)
	ctx := context.Background()

	a, err := s.Articles().GetByID(ctx, 1)
	require.NoError(t, err)
	a.Title = "changed outside"

	again, err := s.Articles().GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Title1", again.Title)
	assert.False(t, again.Date.IsZero())
}

func TestArticles_NotFound(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Articles().GetByID(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, s.Articles().Update(ctx, &models.Article{ID: 1}), repository.ErrNotFound)
	assert.ErrorIs(t, s.Articles().Delete(ctx, &models.Article{ID: 1}), repository.ErrNotFound)
}

func TestDeleteArticle_CascadesComments(t *testing.T) {
	s := New()
	seedArticles(t, s, 2)
	ctx := context.Background()

	for _, articleID := range []int64{1, 1, 2} {
		require.NoError(t, s.Comments().Insert(ctx, &models.Comment{ArticleID: articleID, Title: "c"}))
	}

	require.NoError(t, s.Articles().Delete(ctx, &models.Article{ID: 1}))

	left, err := s.Comments().Query(ctx, repository.CommentQuery{ArticleID: 1})
	require.NoError(t, err)
	assert.Empty(t, left)

	other, err := s.Comments().Query(ctx, repository.CommentQuery{ArticleID: 2})
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestComments_ScopedToArticle(t *testing.T) {
	s := New()
	seedArticles(t, s, 2)
	ctx := context.Background()

	c := &models.Comment{ArticleID: 1, Title: "Title1"}
	require.NoError(t, s.Comments().Insert(ctx, c))
	assert.Equal(t, int64(1), c.ID)

	got, err := s.Comments().Query(ctx, repository.CommentQuery{ArticleID: 1, ID: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)

	wrong, err := s.Comments().Query(ctx, repository.CommentQuery{ArticleID: 2, ID: 1})
	require.NoError(t, err)
	assert.Empty(t, wrong)

	assert.ErrorIs(t, s.Comments().Update(ctx, &models.Comment{ID: 1, ArticleID: 2}), repository.ErrNotFound)
	assert.ErrorIs(t, s.Comments().Delete(ctx, &models.Comment{ID: 1, ArticleID: 2}), repository.ErrNotFound)
	assert.ErrorIs(t, s.Comments().Insert(ctx, &models.Comment{ArticleID: 99}), repository.ErrNotFound)
}

func TestConcurrentInserts_UniqueIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a := &models.Article{Title: "t"}
			if err := s.Articles().Insert(ctx, a); err == nil {
				ids <- a.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestCanceledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Articles().Query(ctx, repository.ArticleQuery{})
	assert.ErrorIs(t, err, context.Canceled)
}
