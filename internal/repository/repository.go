package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotFound = errors.New("not found")

// DB: то подмножество pgxpool.Pool, которое нужно репозиториям (pgxmock тоже его реализует).
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ArticleQuery: фильтр выборки статей. Пустой TitleContains означает все статьи.
type ArticleQuery struct {
	TitleContains string
	CaseSensitive bool
	Limit         int // <= 0: без ограничения
}

// CommentQuery: фильтр выборки комментариев статьи; ID == 0 означает все комментарии.
type CommentQuery struct {
	ArticleID int64
	ID        int64
}

// escapeLike экранирует спецсимволы LIKE, чтобы поиск был по подстроке, а не по шаблону.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// nullTime: NULL для нулевого времени, чтобы сработал DEFAULT/COALESCE на стороне базы.
func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
