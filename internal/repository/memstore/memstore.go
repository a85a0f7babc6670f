// Package memstore: хранилище статей и комментариев в памяти процесса.
// Используется в тестах и при STORAGE=memory.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"crossblog/internal/models"
	"crossblog/internal/repository"
)

type Store struct {
	mu            sync.RWMutex
	articles      map[int64]models.Article
	comments      map[int64]models.Comment
	nextArticleID int64
	nextCommentID int64
	now           func() time.Time
}

func New() *Store {
	return &Store{
		articles: make(map[int64]models.Article),
		comments: make(map[int64]models.Comment),
		now:      time.Now,
	}
}

func (s *Store) Articles() repository.ArticleRepo { return articleRepo{s} }
func (s *Store) Comments() repository.CommentRepo { return commentRepo{s} }

type articleRepo struct{ s *Store }

func (r articleRepo) Query(ctx context.Context, q repository.ArticleQuery) ([]*models.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*models.Article
	for _, a := range r.s.articles {
		if q.TitleContains != "" && !contains(a.Title, q.TitleContains, q.CaseSensitive) {
			continue
		}
		a := a
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.articles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r articleRepo) Insert(ctx context.Context, a *models.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextArticleID++
	a.ID = r.s.nextArticleID
	if a.Date.IsZero() {
		a.Date = r.s.now()
	}
	r.s.articles[a.ID] = *a
	return nil
}

func (r articleRepo) Update(ctx context.Context, a *models.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.articles[a.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.articles[a.ID] = *a
	return nil
}

// Delete удаляет статью вместе с её комментариями (как ON DELETE CASCADE).
func (r articleRepo) Delete(ctx context.Context, a *models.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.articles[a.ID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.articles, a.ID)
	for id, c := range r.s.comments {
		if c.ArticleID == a.ID {
			delete(r.s.comments, id)
		}
	}
	return nil
}

type commentRepo struct{ s *Store }

func (r commentRepo) Query(ctx context.Context, q repository.CommentQuery) ([]*models.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*models.Comment
	for _, c := range r.s.comments {
		if c.ArticleID != q.ArticleID || (q.ID != 0 && c.ID != q.ID) {
			continue
		}
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r commentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r commentRepo) Insert(ctx context.Context, c *models.Comment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// как внешний ключ в postgres
	if _, ok := r.s.articles[c.ArticleID]; !ok {
		return repository.ErrNotFound
	}
	r.s.nextCommentID++
	c.ID = r.s.nextCommentID
	if c.Date.IsZero() {
		c.Date = r.s.now()
	}
	r.s.comments[c.ID] = *c
	return nil
}

func (r commentRepo) Update(ctx context.Context, c *models.Comment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	old, ok := r.s.comments[c.ID]
	if !ok || old.ArticleID != c.ArticleID {
		return repository.ErrNotFound
	}
	r.s.comments[c.ID] = *c
	return nil
}

func (r commentRepo) Delete(ctx context.Context, c *models.Comment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	old, ok := r.s.comments[c.ID]
	if !ok || old.ArticleID != c.ArticleID {
		return repository.ErrNotFound
	}
	delete(r.s.comments, c.ID)
	return nil
}

func contains(s, sub string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(s, sub)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
