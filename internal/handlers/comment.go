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

type CommentHandler struct {
	svc services.CommentService
}

func NewCommentHandler(svc services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// List
// @Summary      Комментарии статьи
// @Tags         comments
// @Produce      json
// @Param        articleId  path      int  true  "ID статьи"
// @Success      200        {object}  models.CommentListModel
// @Failure      404        {string}  string  "Статья не найдена"
// @Router       /articles/{articleId}/comments [get]
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	articleID, ok := pathID(r, "articleId")
	if !ok {
		helpers.Status(w, http.StatusNotFound)
		return
	}

	list, err := h.svc.List(r.Context(), articleID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.NewCommentListModel(list))
}

// Get
// @Summary      Получить комментарий
// @Tags         comments
// @Produce      json
// @Param        articleId  path      int  true  "ID статьи"
// @Param        commentId  path      int  true  "ID комментария"
// @Success      200        {object}  models.CommentModel
// @Failure      404        {string}  string  "Не найдено"
// @Router       /articles/{articleId}/comments/{commentId} [get]
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	articleID, ok1 := pathID(r, "articleId")
	commentID, ok2 := pathID(r, "commentId")
	if !ok1 || !ok2 {
		helpers.Status(w, http.StatusNotFound)
		return
	}

	c, err := h.svc.Get(r.Context(), articleID, commentID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.NewCommentModel(c))
}

// Post
// @Summary      Добавить комментарий
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        articleId  path      int                  true  "ID статьи"
// @Param        body       body      models.CommentModel  true  "Комментарий"
// @Success      201        {object}  models.CommentModel
// @Header       201        {string}  Location  "articles/{articleId}/comments/{id}"
// @Failure      400        {object}  helpers.ValidationResponse
// @Failure      404        {string}  string  "Статья не найдена"
// @Router       /articles/{articleId}/comments [post]
func (h *CommentHandler) Post(w http.ResponseWriter, r *http.Request) {
	articleID, ok := pathID(r, "articleId")
	if !ok {
		helpers.Status(w, http.StatusNotFound)
		return
	}

	var req models.CommentModel
	present, ok := decodeBody(w, r, &req)
	if !ok {
		return
	}
	var model *models.CommentModel
	if present {
		model = &req
	}

	c, err := h.svc.Create(r.Context(), articleID, model)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("comments: комментарий добавлен",
		zap.Int64("article_id", articleID),
		zap.Int64("id", c.ID),
	)
	helpers.Created(w, fmt.Sprintf("articles/%d/comments/%d", articleID, c.ID), models.NewCommentModel(c))
}

// Put
// @Summary      Обновить комментарий
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        articleId  path      int                  true  "ID статьи"
// @Param        commentId  path      int                  true  "ID комментария"
// @Param        body       body      models.CommentModel  true  "Комментарий"
// @Success      200        {object}  models.CommentModel
// @Failure      400        {object}  helpers.ValidationResponse
// @Failure      404        {string}  string  "Не найдено"
// @Router       /articles/{articleId}/comments/{commentId} [put]
func (h *CommentHandler) Put(w http.ResponseWriter, r *http.Request) {
	articleID, ok1 := pathID(r, "articleId")
	commentID, ok2 := pathID(r, "commentId")
	if !ok1 || !ok2 {
		helpers.Status(w, http.StatusNotFound)
		return
	}

	var req models.CommentModel
	present, ok := decodeBody(w, r, &req)
	if !ok {
		return
	}
	var model *models.CommentModel
	if present {
		model = &req
	}

	c, err := h.svc.Update(r.Context(), articleID, commentID, model)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.NewCommentModel(c))
}

// Delete
// @Summary      Удалить комментарий
// @Tags         comments
// @Param        articleId  path  int  true  "ID статьи"
// @Param        commentId  path  int  true  "ID комментария"
// @Success      200
// @Failure      404  {string}  string  "Не найдено"
// @Router       /articles/{articleId}/comments/{commentId} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	articleID, ok1 := pathID(r, "articleId")
	commentID, ok2 := pathID(r, "commentId")
	if !ok1 || !ok2 {
		helpers.Status(w, http.StatusNotFound)
		return
	}

	if err := h.svc.Delete(r.Context(), articleID, commentID); err != nil {
		writeError(w, r, err)
		return
	}
	helpers.Status(w, http.StatusOK)
}
