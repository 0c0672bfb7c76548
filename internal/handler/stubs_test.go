package handler_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/e-comm-api/internal/auth"
	"github.com/vasapolrittideah/e-comm-api/internal/handler"
	"github.com/vasapolrittideah/e-comm-api/internal/httputil"
	"github.com/vasapolrittideah/e-comm-api/internal/model"
	"github.com/vasapolrittideah/e-comm-api/internal/repository"
	"github.com/vasapolrittideah/e-comm-api/internal/usecase"
)

type stubAuthUsecase struct {
	registerFn func(context.Context, usecase.RegisterParams) (*model.User, string, error)
	loginFn    func(context.Context, usecase.LoginParams) (*model.User, string, error)
}

func (s *stubAuthUsecase) Register(ctx context.Context, p usecase.RegisterParams) (*model.User, string, error) {
	return s.registerFn(ctx, p)
}

func (s *stubAuthUsecase) Login(ctx context.Context, p usecase.LoginParams) (*model.User, string, error) {
	return s.loginFn(ctx, p)
}

type stubProductUsecase struct {
	addFn    func(context.Context, usecase.AddProductParams) (*model.Product, error)
	getFn    func(context.Context, string) (*model.Product, error)
	listFn   func(context.Context) ([]*model.Product, error)
	updateFn func(context.Context, string, repository.UpdateProductParams) (*model.Product, error)
	deleteFn func(context.Context, string) (int64, error)
	searchFn func(context.Context, string) ([]*model.Product, error)
}

func (s *stubProductUsecase) AddProduct(ctx context.Context, p usecase.AddProductParams) (*model.Product, error) {
	return s.addFn(ctx, p)
}

func (s *stubProductUsecase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductUsecase) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductUsecase) UpdateProduct(
	ctx context.Context,
	id string,
	p repository.UpdateProductParams,
) (*model.Product, error) {
	return s.updateFn(ctx, id, p)
}

func (s *stubProductUsecase) DeleteProduct(ctx context.Context, id string) (int64, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubProductUsecase) SearchProducts(ctx context.Context, keyword string) ([]*model.Product, error) {
	return s.searchFn(ctx, keyword)
}

type stubUserUsecase struct {
	updateFn func(context.Context, string, repository.UpdateUserParams) (*model.User, error)
}

func (s *stubUserUsecase) UpdateUser(
	ctx context.Context,
	id string,
	p repository.UpdateUserParams,
) (*model.User, error) {
	return s.updateFn(ctx, id, p)
}

func newTestCodec() auth.TokenCodec {
	return auth.NewTokenCodec("test-secret", time.Hour)
}

func newTestRouter(
	t *testing.T,
	codec auth.TokenCodec,
	authUC usecase.AuthUsecase,
	productUC usecase.ProductUsecase,
	userUC usecase.UserUsecase,
) *chi.Mux {
	t.Helper()

	validate, trans, err := httputil.NewValidator()
	require.NoError(t, err)

	logger := zerolog.Nop()

	return handler.NewRouter(
		&logger,
		codec,
		time.Minute,
		handler.NewAuthHandler(authUC, validate, trans, &logger),
		handler.NewProductHandler(productUC, validate, trans, &logger),
		handler.NewUserHandler(userUC, validate, trans, &logger),
	)
}
