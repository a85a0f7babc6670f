package helpers

import (
	"encoding/json"
	"net/http"

	"crossblog/internal/validation"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationResponse struct {
	Errors validation.Errors `json:"errors"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Created: 201 с заголовком Location (относительный путь ресурса).
func Created(w http.ResponseWriter, location string, data interface{}) {
	w.Header().Set("Location", location)
	JSON(w, http.StatusCreated, data)
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	JSON(w, status, ErrorResponse{Error: errMsg})
}

func ValidationError(w http.ResponseWriter, errs validation.Errors) {
	JSON(w, http.StatusBadRequest, ValidationResponse{Errors: errs})
}

// Status: ответ без тела (404 при отсутствии ресурса, 200 после удаления).
func Status(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}
