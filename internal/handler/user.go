package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/e-comm-api/internal/httputil"
	"github.com/vasapolrittideah/e-comm-api/internal/payload"
	"github.com/vasapolrittideah/e-comm-api/internal/repository"
	"github.com/vasapolrittideah/e-comm-api/internal/usecase"
)

// UserHandler handles user profile updates.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	validate    *validator.Validate
	trans       ut.Translator
	logger      *zerolog.Logger
}

func NewUserHandler(
	userUsecase usecase.UserUsecase,
	validate *validator.Validate,
	trans ut.Translator,
	logger *zerolog.Logger,
) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validate:    validate,
		trans:       trans,
		logger:      logger,
	}
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req payload.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httputil.ValidationError(w, httputil.TranslateErrors(err, h.trans))
		return
	}

	user, err := h.userUsecase.UpdateUser(r.Context(), id, repository.UpdateUserParams{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrUserNotFound):
			httputil.Error(w, http.StatusNotFound, "user not found")
		case errors.Is(err, usecase.ErrNoFieldsToUpdate):
			httputil.Error(w, http.StatusBadRequest, "no fields to update")
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			httputil.Error(w, http.StatusConflict, "user with this email already exists")
		default:
			h.logger.Error().Err(err).Str("id", id).Msg("failed to update user")
			httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	httputil.JSON(w, http.StatusOK, user)
}
