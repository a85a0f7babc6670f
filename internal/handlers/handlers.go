package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"crossblog/internal/logger"
	"crossblog/internal/services"
	"crossblog/internal/validation"
	helpers "crossblog/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// pathID читает числовой параметр пути; маршруты уже ограничены [0-9]+.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// decodeBody декодирует JSON в dst. Пустое тело не ошибка: present=false, модель остаётся nil,
// и отказ по ней вернёт валидация сервиса.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) (present bool, ok bool) {
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return false, true
	}
	// после объекта допускаются только пробелы
	if err == nil {
		if extra := dec.Decode(&struct{}{}); !errors.Is(extra, io.EOF) {
			err = errors.New("unexpected data after JSON value")
		}
	}
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON", zap.Error(err))
		helpers.ValidationError(w, validation.Errors{"body": "invalid json"})
		return false, false
	}
	return true, true
}

// writeError переводит ошибку сервиса в HTTP-ответ.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		helpers.ValidationError(w, verrs)
	case errors.Is(err, services.ErrNotFound):
		helpers.Status(w, http.StatusNotFound)
	default:
		logger.WithCtx(r.Context()).Error("Внутренняя ошибка", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "internal error")
	}
}
