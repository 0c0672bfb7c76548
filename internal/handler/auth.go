package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/e-comm-api/internal/httputil"
	"github.com/vasapolrittideah/e-comm-api/internal/payload"
	"github.com/vasapolrittideah/e-comm-api/internal/usecase"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validate    *validator.Validate
	trans       ut.Translator
	logger      *zerolog.Logger
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	validate *validator.Validate,
	trans ut.Translator,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validate:    validate,
		trans:       trans,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httputil.ValidationError(w, httputil.TranslateErrors(err, h.trans))
		return
	}

	user, token, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			httputil.Error(w, http.StatusConflict, "user with this email already exists")
			return
		}

		h.logger.Error().Err(err).Msg("failed to register user")
		httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	httputil.JSON(w, http.StatusCreated, payload.AuthResponse{User: user, Auth: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httputil.ValidationError(w, httputil.TranslateErrors(err, h.trans))
		return
	}

	user, token, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			httputil.Error(w, http.StatusUnauthorized, "invalid email or password")
			return
		}

		h.logger.Error().Err(err).Msg("failed to login user")
		httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	httputil.JSON(w, http.StatusOK, payload.AuthResponse{User: user, Auth: token})
}
