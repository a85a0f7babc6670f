package services

import (
	"context"

	"crossblog/internal/logger"
	"crossblog/internal/models"
	"crossblog/internal/repository"
	"crossblog/internal/validation"

	"go.uber.org/zap"
)

type ArticleService interface {
	Search(ctx context.Context, term string) ([]*models.Article, error)
	Get(ctx context.Context, id int64) (*models.Article, error)
	Create(ctx context.Context, req *models.ArticleModel) (*models.Article, error)
	Update(ctx context.Context, id int64, req *models.ArticleModel) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
}

type SearchOptions struct {
	CaseSensitive bool
	Limit         int
}

type articleService struct {
	repo     repository.ArticleRepo
	validate *validation.Validator
	clean    *sanitizer
	search   SearchOptions
}

func NewArticleService(repo repository.ArticleRepo, opts SearchOptions) ArticleService {
	return &articleService{
		repo:     repo,
		validate: validation.New(),
		clean:    newSanitizer(),
		search:   opts,
	}
}

func (s *articleService) Search(ctx context.Context, term string) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Поиск статей", zap.String("term", term), zap.Bool("case_sensitive", s.search.CaseSensitive))

	list, err := s.repo.Query(ctx, repository.ArticleQuery{
		TitleContains: term,
		CaseSensitive: s.search.CaseSensitive,
		Limit:         s.search.Limit,
	})
	if err != nil {
		log.Error("Ошибка поиска статей (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Статьи найдены", zap.Int("count", len(list)))
	return list, nil
}

func (s *articleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение статьи по ID", zap.Int64("id", id))

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Статья не найдена (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, notFound(err, "article %d", id)
	}
	return a, nil
}

func (s *articleService) Create(ctx context.Context, req *models.ArticleModel) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	if req != nil {
		req.Title = s.clean.Title(req.Title)
	}
	if err := s.validate.Struct(req); err != nil {
		log.Warn("Валидация не пройдена: статья", zap.Error(err))
		return nil, err
	}

	log.Info("Создание статьи", zap.String("title", req.Title), zap.Bool("published", req.Published))

	a := &models.Article{
		Title:     req.Title,
		Content:   s.clean.Content(req.Content),
		Published: req.Published,
	}
	if req.Date != nil {
		a.Date = *req.Date
	}

	if err := s.repo.Insert(ctx, a); err != nil {
		log.Error("Ошибка создания статьи (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Статья создана", zap.Int64("id", a.ID))
	return a, nil
}

func (s *articleService) Update(ctx context.Context, id int64, req *models.ArticleModel) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	if req != nil {
		req.Title = s.clean.Title(req.Title)
	}
	if err := s.validate.Struct(req); err != nil {
		log.Warn("Валидация не пройдена: статья", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Статья для обновления не найдена (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, notFound(err, "article %d", id)
	}

	log.Info("Обновление статьи", zap.Int64("id", id), zap.String("title", req.Title))

	a.Title = req.Title
	a.Content = s.clean.Content(req.Content)
	a.Published = req.Published
	if req.Date != nil {
		a.Date = *req.Date
	}

	if err := s.repo.Update(ctx, a); err != nil {
		log.Error("Ошибка обновления статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, notFound(err, "update article %d", id)
	}

	log.Info("Статья обновлена", zap.Int64("id", id))
	return a, nil
}

func (s *articleService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Статья для удаления не найдена (repo)", zap.Int64("id", id), zap.Error(err))
		return notFound(err, "article %d", id)
	}

	log.Info("Удаление статьи", zap.Int64("id", id))
	if err := s.repo.Delete(ctx, a); err != nil {
		log.Error("Ошибка удаления статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return notFound(err, "delete article %d", id)
	}

	log.Info("Статья удалена", zap.Int64("id", id))
	return nil
}
