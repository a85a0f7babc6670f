package handlers

import (
	"fmt"
	"net/http"

	"crossblog/internal/logger"
	"crossblog/internal/models"
	"crossblog/internal/services"
	helpers "crossblog/internal/utils/helpers"

	"go.uber.org/zap"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// Search
// @Summary      Поиск статей
// @Description  Статьи, в заголовке которых встречается подстрока search. Пустой search: все статьи.
// @Tags         articles
// @Produce      json
// @Param        search  query     string  false  "Подстрока заголовка"
// @Success      200     {object}  models.ArticleListModel
// @Router       /articles [get]
func (h *ArticleHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")
	list, err := h.svc.Search(r.Context(), term)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("articles: поиск выполнен", zap.String("search", term), zap.Int("count", len(list)))
	helpers.JSON(w, http.StatusOK, models.NewArticleListModel(list))
}

// Get
// @Summary      Получить статью
// @Tags         articles
// @Produce      json
// @Param        id   path      int  true  "ID статьи"
// @Success      200  {object}  models.ArticleModel
// @Failure      404  {string}  string  "Не найдено"
// @Router       /articles/{id} [get]
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		helpers.Status(w, http.StatusNotFound)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.NewArticleModel(a))
}

// Post
// @Summary      Создать статью
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body      models.ArticleModel  true  "Данные статьи"
// @Success      201   {object}  models.ArticleModel
// @Header       201   {string}  Location  "articles/{id}"
// @Failure      400   {object}  helpers.ValidationResponse
// @Router       /articles [post]
func (h *ArticleHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req models.ArticleModel
	present, ok := decodeBody(w, r, &req)
	if !ok {
		return
	}
	var model *models.ArticleModel
	if present {
		model = &req
	}

	a, err := h.svc.Create(r.Context(), model)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("articles: статья создана", zap.Int64("id", a.ID), zap.String("title", a.Title))
	helpers.Created(w, fmt.Sprintf("articles/%d", a.ID), models.NewArticleModel(a))
}

// Put
// @Summary      Обновить статью
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "ID статьи"
// @Param        body  body      models.ArticleModel  true  "Новые данные"
// @Success      200   {object}  models.ArticleModel
// @Failure      400   {object}  helpers.ValidationResponse
// @Failure      404   {string}  string  "Не найдено"
// @Router       /articles/{id} [put]
func (h *ArticleHandler) Put(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		helpers.Status(w, http.StatusNotFound)
		return
	}

	var req models.ArticleModel
	present, ok := decodeBody(w, r, &req)
	if !ok {
		return
	}
	var model *models.ArticleModel
	if present {
		model = &req
	}

	a, err := h.svc.Update(r.Context(), id, model)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.NewArticleModel(a))
}

// Delete
// @Summary      Удалить статью
// @Description  Удаляет статью вместе с комментариями
// @Tags         articles
// @Param        id   path  int  true  "ID статьи"
// @Success      200
// @Failure      404  {string}  string  "Не найдено"
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		helpers.Status(w, http.StatusNotFound)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	helpers.Status(w, http.StatusOK)
}
