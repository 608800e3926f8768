package transaction

import (
	"context"
	"errors"

	"go-garment-store/internal/backend"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Backend adalah subset client REST yang dipakai transaksi.
type Backend interface {
	TransactionList(ctx context.Context, token string) ([]backend.Transaction, error)
	TransactionShow(ctx context.Context, token, id string) (backend.Transaction, error)
	AdminVerify(ctx context.Context, token, transactionID, action string) error
}

type Service interface {
	List(ctx context.Context, token string) ([]TransactionView, error)
	Detail(ctx context.Context, token, id string) (TransactionView, error)

	// Admin action: approve/reject diteruskan ke backend, hasilnya
	// transaksi terbaru di-fetch ulang.
	Verify(ctx context.Context, token, id string, req VerifyRequest) (TransactionView, error)
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
		logger:   logger.Named("transaction.service"),
	}
}

func toView(tx backend.Transaction) TransactionView {
	return TransactionView{
		Transaction: tx,
		StatusLabel: DisplayStatus(tx.Status),
	}
}

func (s *service) List(ctx context.Context, token string) ([]TransactionView, error) {
	txs, err := s.backend.TransactionList(ctx, token)
	if err != nil {
		return nil, upstreamOrTxErr(err)
	}

	views := make([]TransactionView, 0, len(txs))
	for _, tx := range txs {
		views = append(views, toView(tx))
	}
	return views, nil
}

func (s *service) Detail(ctx context.Context, token, id string) (TransactionView, error) {
	tx, err := s.backend.TransactionShow(ctx, token, id)
	if err != nil {
		return TransactionView{}, upstreamOrTxErr(err)
	}
	return toView(tx), nil
}

func (s *service) Verify(ctx context.Context, token, id string, req VerifyRequest) (TransactionView, error) {
	if err := s.validate.Struct(req); err != nil {
		return TransactionView{}, ErrInvalidAction.WithCause(err)
	}

	if err := s.backend.AdminVerify(ctx, token, id, req.Action); err != nil {
		s.logger.Error("admin verify failed",
			zap.String("transaction_id", id),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return TransactionView{}, upstreamOrTxErr(err)
	}

	return s.Detail(ctx, token, id)
}

func upstreamOrTxErr(err error) error {
	var up *backend.UpstreamError
	if errors.As(err, &up) && up.Message != "" {
		return ErrTransactionFailed.WithMessage(up.Message)
	}
	return ErrTransactionFailed.WithCause(err)
}
