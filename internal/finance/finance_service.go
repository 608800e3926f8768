package finance

import (
	"context"
	"errors"

	"go-garment-store/internal/backend"
	"go-garment-store/internal/cart"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Backend adalah subset client REST yang dipakai back office.
type Backend interface {
	FinanceReport(ctx context.Context, token string, req backend.FinanceReportRequest) ([]backend.FinanceEntry, error)
	Users(ctx context.Context, token string) ([]backend.User, error)
	UsersCount(ctx context.Context, token string) (int64, error)
}

type Service interface {
	Report(ctx context.Context, token string, req ReportRequest) (ReportView, error)
	UsersCount(ctx context.Context, token string) (int64, error)
	CustomerLocations(ctx context.Context, token string) ([]CustomerLocation, error)
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
		logger:   logger.Named("finance.service"),
	}
}

func (s *service) Report(ctx context.Context, token string, req ReportRequest) (ReportView, error) {
	if err := s.validate.Struct(req); err != nil {
		return ReportView{}, ErrInvalidReportRange.WithCause(err)
	}

	entries, err := s.backend.FinanceReport(ctx, token, backend.FinanceReportRequest{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Type:      req.Type,
	})
	if err != nil {
		return ReportView{}, upstreamOrFinanceErr(err)
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, e := range entries {
		// Nominal datang sebagai string bebas, dinormalisasi dulu.
		amount := decimal.NewFromInt(cart.NormalizePrice(e.Amount.String()))
		switch e.Type {
		case "pemasukan":
			income = income.Add(amount)
		case "pengeluaran":
			expense = expense.Add(amount)
		}
	}

	if entries == nil {
		entries = []backend.FinanceEntry{}
	}
	return ReportView{
		Entries:      entries,
		TotalIncome:  income.String(),
		TotalExpense: expense.String(),
		Balance:      income.Sub(expense).String(),
	}, nil
}

func (s *service) UsersCount(ctx context.Context, token string) (int64, error) {
	count, err := s.backend.UsersCount(ctx, token)
	if err != nil {
		return 0, upstreamOrFinanceErr(err)
	}
	return count, nil
}

// CustomerLocations menyaring user ber-koordinat untuk peta sebaran.
// User tanpa lat/lng dilewati, bukan digambar di (0,0).
func (s *service) CustomerLocations(ctx context.Context, token string) ([]CustomerLocation, error) {
	users, err := s.backend.Users(ctx, token)
	if err != nil {
		return nil, upstreamOrFinanceErr(err)
	}

	locations := make([]CustomerLocation, 0, len(users))
	for _, u := range users {
		if u.Latitude == 0 && u.Longitude == 0 {
			continue
		}
		locations = append(locations, CustomerLocation{
			ID:        u.ID.String(),
			Name:      u.Name,
			Address:   u.Address,
			Latitude:  u.Latitude,
			Longitude: u.Longitude,
		})
	}
	return locations, nil
}

func upstreamOrFinanceErr(err error) error {
	var up *backend.UpstreamError
	if errors.As(err, &up) && up.Message != "" {
		return ErrFinanceFailed.WithMessage(up.Message)
	}
	return ErrFinanceFailed.WithCause(err)
}
