package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"crossblog/internal/models"
)

type CommentRepo interface {
	Query(ctx context.Context, q CommentQuery) ([]*models.Comment, error)
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	Insert(ctx context.Context, c *models.Comment) error
	Update(ctx context.Context, c *models.Comment) error
	Delete(ctx context.Context, c *models.Comment) error
}

type commentRepo struct{ db DB }

func NewCommentRepo(db DB) CommentRepo { return &commentRepo{db: db} }

const commentColumns = `id, article_id, email, title, content, date, published`

func scanComment(row pgx.Row) (*models.Comment, error) {
	var c models.Comment
	if err := row.Scan(&c.ID, &c.ArticleID, &c.Email, &c.Title, &c.Content, &c.Date, &c.Published); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepo) Query(ctx context.Context, q CommentQuery) ([]*models.Comment, error) {
	sql := `SELECT ` + commentColumns + ` FROM comments WHERE article_id = $1`
	args := []any{q.ArticleID}
	if q.ID != 0 {
		sql += fmt.Sprintf(" AND id = $%d", len(args)+1)
		args = append(args, q.ID)
	}
	sql += " ORDER BY id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *commentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *commentRepo) Insert(ctx context.Context, c *models.Comment) error {
	const q = `
		INSERT INTO comments (article_id, email, title, content, date, published)
		VALUES ($1, $2, $3, $4, COALESCE($5::timestamptz, NOW()), $6)
		RETURNING id, date
	`
	return r.db.QueryRow(ctx, q,
		c.ArticleID,
		c.Email,
		c.Title,
		c.Content,
		nullTime(c.Date),
		c.Published,
	).Scan(&c.ID, &c.Date)
}

func (r *commentRepo) Update(ctx context.Context, c *models.Comment) error {
	const q = `
		UPDATE comments
		SET email = $1, title = $2, content = $3, date = $4, published = $5
		WHERE id = $6 AND article_id = $7
	`
	tag, err := r.db.Exec(ctx, q, c.Email, c.Title, c.Content, c.Date, c.Published, c.ID, c.ArticleID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *commentRepo) Delete(ctx context.Context, c *models.Comment) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1 AND article_id = $2`, c.ID, c.ArticleID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
