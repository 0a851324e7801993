package gateway

import (
	"context"
	"time"

	"sports-booking/pkg/utils"

	"go.uber.org/zap"
)

type ChargeRequest struct {
	BookingID string
	Amount    float64
	Currency  string
	Method    string
}

type Receipt struct {
	TransactionID string
	Amount        float64
	Currency      string
	Method        string
	ProcessedAt   time.Time
}

type RefundRequest struct {
	BookingID string
	PaymentID string
	Amount    float64
}

type Refund struct {
	RefundID      string
	Amount        float64
	Status        string
	EstimatedDays string
}

// PaymentGateway settles and refunds charges. Implementations decide the
// outcome; the booking workflow only reacts to it.
type PaymentGateway interface {
	Charge(ctx context.Context, req *ChargeRequest) (*Receipt, error)
	Refund(ctx context.Context, req *RefundRequest) (*Refund, error)
}

// SimulatedGateway approves every charge and refund. It stands in until a
// real processor is wired behind the PaymentGateway interface.
type SimulatedGateway struct {
	log *zap.Logger
}

func NewSimulatedGateway(log *zap.Logger) *SimulatedGateway {
	return &SimulatedGateway{
		log: log.With(zap.String("gateway", "simulated")),
	}
}

func (g *SimulatedGateway) Charge(_ context.Context, req *ChargeRequest) (*Receipt, error) {
	receipt := &Receipt{
		TransactionID: utils.GenerateTransactionID(),
		Amount:        req.Amount,
		Currency:      req.Currency,
		Method:        req.Method,
		ProcessedAt:   time.Now(),
	}

	g.log.Info("Charge approved",
		zap.String("booking_id", req.BookingID),
		zap.String("transaction_id", receipt.TransactionID),
		zap.Float64("amount", req.Amount),
		zap.String("method", req.Method),
	)

	return receipt, nil
}

func (g *SimulatedGateway) Refund(_ context.Context, req *RefundRequest) (*Refund, error) {
	refund := &Refund{
		RefundID:      utils.GenerateRefundID(),
		Amount:        req.Amount,
		Status:        "processed",
		EstimatedDays: "5-7 business days",
	}

	g.log.Info("Refund processed",
		zap.String("booking_id", req.BookingID),
		zap.String("payment_id", req.PaymentID),
		zap.String("refund_id", refund.RefundID),
		zap.Float64("amount", req.Amount),
	)

	return refund, nil
}
