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
	"github.com/vasapolrittideah/e-comm-api/internal/middleware"
	"github.com/vasapolrittideah/e-comm-api/internal/model"
	"github.com/vasapolrittideah/e-comm-api/internal/payload"
	"github.com/vasapolrittideah/e-comm-api/internal/repository"
	"github.com/vasapolrittideah/e-comm-api/internal/usecase"
)

// ProductHandler handles product CRUD and keyword search.
type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validate       *validator.Validate
	trans          ut.Translator
	logger         *zerolog.Logger
}

func NewProductHandler(
	productUsecase usecase.ProductUsecase,
	validate *validator.Validate,
	trans ut.Translator,
	logger *zerolog.Logger,
) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validate:       validate,
		trans:          trans,
		logger:         logger,
	}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httputil.ValidationError(w, httputil.TranslateErrors(err, h.trans))
		return
	}

	params := usecase.AddProductParams{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Company:  req.Company,
	}
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		params.UserID = claims.User.ID.Hex()
	}

	product, err := h.productUsecase.AddProduct(r.Context(), params)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create product")
		httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	httputil.JSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.ListProducts(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list products")
		httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	if products == nil {
		products = []*model.Product{}
	}

	httputil.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			httputil.Error(w, http.StatusBadRequest, "invalid product id")
		case errors.Is(err, usecase.ErrProductNotFound):
			httputil.Error(w, http.StatusNotFound, "product not found")
		default:
			h.logger.Error().Err(err).Str("id", id).Msg("failed to get product")
			httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	httputil.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req payload.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httputil.ValidationError(w, httputil.TranslateErrors(err, h.trans))
		return
	}

	product, err := h.productUsecase.UpdateProduct(r.Context(), id, repository.UpdateProductParams{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Company:  req.Company,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			httputil.Error(w, http.StatusBadRequest, "invalid product id")
		case errors.Is(err, usecase.ErrNoFieldsToUpdate):
			httputil.Error(w, http.StatusBadRequest, "no fields to update")
		case errors.Is(err, usecase.ErrProductNotFound):
			httputil.Error(w, http.StatusNotFound, "product not found")
		default:
			h.logger.Error().Err(err).Str("id", id).Msg("failed to update product")
			httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	httputil.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	count, err := h.productUsecase.DeleteProduct(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			httputil.Error(w, http.StatusBadRequest, "invalid product id")
		case errors.Is(err, usecase.ErrProductNotFound):
			httputil.Error(w, http.StatusNotFound, "product not found")
		default:
			h.logger.Error().Err(err).Str("id", id).Msg("failed to delete product")
			httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	httputil.JSON(w, http.StatusOK, payload.DeleteProductResponse{DeletedCount: count})
}

func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := chi.URLParam(r, "key")

	products, err := h.productUsecase.SearchProducts(r.Context(), keyword)
	if err != nil {
		h.logger.Error().Err(err).Str("keyword", keyword).Msg("failed to search products")
		httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	if products == nil {
		products = []*model.Product{}
	}

	httputil.JSON(w, http.StatusOK, products)
}
