package catalog

import (
	"context"
	"errors"

	"go-garment-store/internal/backend"
	"go-garment-store/internal/cart"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Backend adalah subset client REST yang dipakai katalog.
type Backend interface {
	CatalogList(ctx context.Context, search string) ([]backend.CatalogItem, error)
	CatalogShow(ctx context.Context, id string) (backend.CatalogItem, error)
	ReviewsList(ctx context.Context) ([]backend.Review, error)
	ReviewCreate(ctx context.Context, token string, req backend.ReviewRequest) error
}

type Service interface {
	List(ctx context.Context, search string) ([]CatalogView, error)
	Show(ctx context.Context, id string) (CatalogView, error)
	Reviews(ctx context.Context) ([]ReviewView, error)
	AddReview(ctx context.Context, token string, req AddReviewRequest) error
}

type service struct {
	backend  Backend
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(b Backend, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		backend:  b,
		validate: validator.New(),
		logger:   logger.Named("catalog.service"),
	}
}

func toView(item backend.CatalogItem) CatalogView {
	return CatalogView{
		ID:          item.ID.String(),
		Name:        item.Name,
		Price:       cart.NormalizePrice(item.Price.String()),
		Image:       item.Image,
		Description: item.Description,
		Sizes:       item.Sizes,
		Colors:      item.Colors,
		Stock:       item.Stock,
	}
}

func (s *service) List(ctx context.Context, search string) ([]CatalogView, error) {
	items, err := s.backend.CatalogList(ctx, search)
	if err != nil {
		return nil, upstreamOrCatalogErr(err)
	}

	views := make([]CatalogView, 0, len(items))
	for _, it := range items {
		views = append(views, toView(it))
	}
	return views, nil
}

func (s *service) Show(ctx context.Context, id string) (CatalogView, error) {
	item, err := s.backend.CatalogShow(ctx, id)
	if err != nil {
		return CatalogView{}, upstreamOrCatalogErr(err)
	}
	return toView(item), nil
}

func (s *service) Reviews(ctx context.Context) ([]ReviewView, error) {
	reviews, err := s.backend.ReviewsList(ctx)
	if err != nil {
		return nil, upstreamOrCatalogErr(err)
	}
	return reviews, nil
}

func (s *service) AddReview(ctx context.Context, token string, req AddReviewRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return ErrInvalidReview.WithCause(err)
	}

	err := s.backend.ReviewCreate(ctx, token, backend.ReviewRequest{
		CatalogID: req.CatalogID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return upstreamOrCatalogErr(err)
	}
	return nil
}

func upstreamOrCatalogErr(err error) error {
	var up *backend.UpstreamError
	if errors.As(err, &up) && up.Message != "" {
		return ErrCatalogFailed.WithMessage(up.Message)
	}
	return ErrCatalogFailed.WithCause(err)
}
