package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"crossblog/internal/models"
)

type ArticleRepo interface {
	Query(ctx context.Context, q ArticleQuery) ([]*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	Insert(ctx context.Context, a *models.Article) error
	Update(ctx context.Context, a *models.Article) error
	Delete(ctx context.Context, a *models.Article) error
}

type articleRepo struct{ db DB }

func NewArticleRepo(db DB) ArticleRepo { return &articleRepo{db: db} }

func (r *articleRepo) Query(ctx context.Context, q ArticleQuery) ([]*models.Article, error) {
	sql := `SELECT id, title, content, date, published FROM articles`
	args := []any{}
	i := 1

	if q.TitleContains != "" {
		op := "ILIKE"
		if q.CaseSensitive {
			op = "LIKE"
		}
		sql += fmt.Sprintf(` WHERE title %s '%%' || $%d || '%%'`, op, i)
		args = append(args, escapeLike(q.TitleContains))
		i++
	}

	sql += " ORDER BY id"
	if q.Limit > 0 {
		sql += fmt.Sprintf(" LIMIT $%d", i)
		args = append(args, q.Limit)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Date, &a.Published); err != nil {
			return nil, err
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	const q = `SELECT id, title, content, date, published FROM articles WHERE id = $1`

	var a models.Article
	if err := r.db.QueryRow(ctx, q, id).Scan(&a.ID, &a.Title, &a.Content, &a.Date, &a.Published); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Insert присваивает a.ID и дату, выставленную базой.
func (r *articleRepo) Insert(ctx context.Context, a *models.Article) error {
	const q = `
		INSERT INTO articles (title, content, date, published)
		VALUES ($1, $2, COALESCE($3::timestamptz, NOW()), $4)
		RETURNING id, date
	`
	return r.db.QueryRow(ctx, q, a.Title, a.Content, nullTime(a.Date), a.Published).Scan(&a.ID, &a.Date)
}

func (r *articleRepo) Update(ctx context.Context, a *models.Article) error {
	const q = `UPDATE articles SET title = $1, content = $2, date = $3, published = $4 WHERE id = $5`
	tag, err := r.db.Exec(ctx, q, a.Title, a.Content, a.Date, a.Published, a.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *articleRepo) Delete(ctx context.Context, a *models.Article) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, a.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
