package models

import "time"

type Article struct {
	ID        int64     `db:"id"        json:"id"`
	Title     string    `db:"title"     json:"title"`
	Content   string    `db:"content"   json:"content"`
	Date      time.Time `db:"date"      json:"date"`
	Published bool      `db:"published" json:"published"`
}

// swagger:model ArticleModel
type ArticleModel struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"     validate:"required,max=80"  example:"Как писать middleware в Go"`
	Content   string     `json:"content"                                example:"<p>Контент</p>"`
	Date      *time.Time `json:"date,omitempty"`
	Published bool       `json:"published"`
}

type ArticleListModel struct {
	Articles []ArticleModel `json:"articles"`
}

func NewArticleModel(a *Article) ArticleModel {
	d := a.Date
	return ArticleModel{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Date:      &d,
		Published: a.Published,
	}
}

// NewArticleListModel никогда не возвращает nil-срез: пустой список сериализуется как [].
func NewArticleListModel(list []*Article) ArticleListModel {
	out := ArticleListModel{Articles: make([]ArticleModel, 0, len(list))}
	for _, a := range list {
		out.Articles = append(out.Articles, NewArticleModel(a))
	}
	return out
}
