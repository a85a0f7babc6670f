package services

import (
	"context"
	"fmt"

	"crossblog/internal/logger"
	"crossblog/internal/models"
	"crossblog/internal/repository"
	"crossblog/internal/validation"

	"go.uber.org/zap"
)

type CommentService interface {
	List(ctx context.Context, articleID int64) ([]*models.Comment, error)
	Get(ctx context.Context, articleID, commentID int64) (*models.Comment, error)
	Create(ctx context.Context, articleID int64, req *models.CommentModel) (*models.Comment, error)
	Update(ctx context.Context, articleID, commentID int64, req *models.CommentModel) (*models.Comment, error)
	Delete(ctx context.Context, articleID, commentID int64) error
}

type commentService struct {
	articles repository.ArticleRepo
	comments repository.CommentRepo
	validate *validation.Validator
	clean    *sanitizer
}

func NewCommentService(articles repository.ArticleRepo, comments repository.CommentRepo) CommentService {
	return &commentService{
		articles: articles,
		comments: comments,
		validate: validation.New(),
		clean:    newSanitizer(),
	}
}

// requireArticle: комментарий адресуется только через существующую статью.
func (s *commentService) requireArticle(ctx context.Context, articleID int64) error {
	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		logger.WithCtx(ctx).Warn("comments: статья не найдена", zap.Int64("article_id", articleID), zap.Error(err))
		return notFound(err, "article %d", articleID)
	}
	return nil
}

// find ищет комментарий по id и проверяет, что он принадлежит статье.
func (s *commentService) find(ctx context.Context, articleID, commentID int64) (*models.Comment, error) {
	if commentID <= 0 {
		return nil, fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
	}

	c, err := s.comments.GetByID(ctx, commentID)
	if err == nil && c.ArticleID != articleID {
		err = repository.ErrNotFound
	}
	if err != nil {
		logger.WithCtx(ctx).Warn("comments: комментарий не найден",
			zap.Int64("article_id", articleID),
			zap.Int64("comment_id", commentID),
			zap.Error(err),
		)
		return nil, notFound(err, "comment %d of article %d", commentID, articleID)
	}
	return c, nil
}

func (s *commentService) List(ctx context.Context, articleID int64) ([]*models.Comment, error) {
	log := logger.WithCtx(ctx)
	log.Debug("comments: список комментариев", zap.Int64("article_id", articleID))

	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}

	list, err := s.comments.Query(ctx, repository.CommentQuery{ArticleID: articleID})
	if err != nil {
		log.Error("comments: ошибка получения списка (repo)", zap.Int64("article_id", articleID), zap.Error(err))
		return nil, err
	}

	log.Debug("comments: список получен", zap.Int("count", len(list)))
	return list, nil
}

func (s *commentService) Get(ctx context.Context, articleID, commentID int64) (*models.Comment, error) {
	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}
	return s.find(ctx, articleID, commentID)
}

func (s *commentService) normalize(req *models.CommentModel) {
	if req == nil {
		return
	}
	req.Title = s.clean.Title(req.Title)
	req.Email = s.clean.Title(req.Email)
}

func (s *commentService) Create(ctx context.Context, articleID int64, req *models.CommentModel) (*models.Comment, error) {
	log := logger.WithCtx(ctx)

	s.normalize(req)
	if err := s.validate.Struct(req); err != nil {
		log.Warn("comments: валидация не пройдена", zap.Int64("article_id", articleID), zap.Error(err))
		return nil, err
	}

	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}

	log.Info("comments: создание комментария", zap.Int64("article_id", articleID), zap.String("title", req.Title))

	c := &models.Comment{
		ArticleID: articleID,
		Email:     req.Email,
		Title:     req.Title,
		Content:   s.clean.Content(req.Content),
		Published: req.Published,
	}
	if req.Date != nil {
		c.Date = *req.Date
	}

	if err := s.comments.Insert(ctx, c); err != nil {
		log.Error("comments: ошибка создания (repo)", zap.Int64("article_id", articleID), zap.Error(err))
		return nil, notFound(err, "insert comment for article %d", articleID)
	}

	log.Info("comments: комментарий создан", zap.Int64("article_id", articleID), zap.Int64("id", c.ID))
	return c, nil
}

func (s *commentService) Update(ctx context.Context, articleID, commentID int64, req *models.CommentModel) (*models.Comment, error) {
	log := logger.WithCtx(ctx)

	s.normalize(req)
	if err := s.validate.Struct(req); err != nil {
		log.Warn("comments: валидация не пройдена", zap.Int64("article_id", articleID), zap.Error(err))
		return nil, err
	}

	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}
	c, err := s.find(ctx, articleID, commentID)
	if err != nil {
		return nil, err
	}

	c.Email = req.Email
	c.Title = req.Title
	c.Content = s.clean.Content(req.Content)
	c.Published = req.Published
	if req.Date != nil {
		c.Date = *req.Date
	}

	if err := s.comments.Update(ctx, c); err != nil {
		log.Error("comments: ошибка обновления (repo)", zap.Int64("id", commentID), zap.Error(err))
		return nil, notFound(err, "update comment %d", commentID)
	}

	log.Info("comments: комментарий обновлён", zap.Int64("article_id", articleID), zap.Int64("id", commentID))
	return c, nil
}

func (s *commentService) Delete(ctx context.Context, articleID, commentID int64) error {
	log := logger.WithCtx(ctx)

	if err := s.requireArticle(ctx, articleID); err != nil {
		return err
	}
	c, err := s.find(ctx, articleID, commentID)
	if err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, c); err != nil {
		log.Error("comments: ошибка удаления (repo)", zap.Int64("id", commentID), zap.Error(err))
		return notFound(err, "delete comment %d", commentID)
	}

	log.Info("comments: комментарий удалён", zap.Int64("article_id", articleID), zap.Int64("id", commentID))
	return nil
}
