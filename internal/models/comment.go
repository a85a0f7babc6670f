package models

import "time"

type Comment struct {
	ID        int64     `db:"id"         json:"id"`
	ArticleID int64     `db:"article_id" json:"articleId"`
	Email     string    `db:"email"      json:"email"`
	Title     string    `db:"title"      json:"title"`
	Content   string    `db:"content"    json:"content"`
	Date      time.Time `db:"date"       json:"date"`
	Published bool      `db:"published"  json:"published"`
}

// swagger:model CommentModel
type CommentModel struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"     validate:"omitempty,email"  example:"reader@example.com"`
	Title     string     `json:"title"     validate:"required,max=80"  example:"Отличная статья"`
	Content   string     `json:"content"                               example:"Спасибо, помогло"`
	Date      *time.Time `json:"date,omitempty"`
	Published bool       `json:"published"`
}

type CommentListModel struct {
	Comments []CommentModel `json:"comments"`
}

func NewCommentModel(c *Comment) CommentModel {
	d := c.Date
	return CommentModel{
		ID:        c.ID,
		Email:     c.Email,
		Title:     c.Title,
		Content:   c.Content,
		Date:      &d,
		Published: c.Published,
	}
}

func NewCommentListModel(list []*Comment) CommentListModel {
	out := CommentListModel{Comments: make([]CommentModel, 0, len(list))}
	for _, c := range list {
		out.Comments = append(out.Comments, NewCommentModel(c))
	}
	return out
}
