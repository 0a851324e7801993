package usecase

import (
	"context"
	"fmt"
	"time"

	"sports-booking/internal/data/entity"
	"sports-booking/internal/data/repository"
	"sports-booking/internal/dto/request"
	"sports-booking/internal/dto/response"
	"sports-booking/internal/gateway"
	"sports-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ProcessPayment(ctx context.Context, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error)
	CancelBooking(ctx context.Context, bookingID, reason string) (*response.CancellationResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
	GetBookingPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error)
	ListBookings(ctx context.Context, userEmail string) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo    *repository.Repository
	gateway gateway.PaymentGateway
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, gw gateway.PaymentGateway, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		gateway: gw,
		log:     log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	duration := req.DurationHours
	if duration <= 0 {
		duration = 1.0
	}

	rate := req.PricePerHour
	if rate <= 0 {
		rate = 500.0
	}

	players := req.NumPlayers
	if players < 1 {
		players = 1
	}

	// Total price is fixed here and never recomputed
	booking := &entity.Booking{
		ID:            utils.GenerateBookingID(),
		UserName:      req.UserName,
		UserEmail:     req.UserEmail,
		UserPhone:     req.UserPhone,
		ActivityID:    req.ActivityID,
		ActivityName:  req.ActivityName,
		VenueName:     req.VenueName,
		VenueAddress:  req.VenueAddress,
		SportType:     req.SportType,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		DurationHours: duration,
		PricePerHour:  rate,
		TotalPrice:    rate * duration,
		NumPlayers:    players,
		Status:        entity.BookingStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_email", req.UserEmail),
			zap.String("venue", req.VenueName),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("user_email", booking.UserEmail),
		zap.String("sport", booking.SportType),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := response.BookingToResponse(booking)
	resp.NextStep = fmt.Sprintf("Process payment for booking %s to confirm it", booking.ID)
	return &resp, nil
}

func (s *bookingService) ProcessPayment(ctx context.Context, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Process payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", req.BookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, req.BookingID)
	}

	// Only pending bookings accept a payment; no payment record is created
	// for any other state
	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking %s is %s", ErrInvalidState, booking.ID, booking.Status)
	}

	method := req.PaymentMethod
	if method == "" {
		method = "upi"
	}

	payment := &entity.Payment{
		ID:        utils.GeneratePaymentID(),
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
		Currency:  "INR",
		Status:    entity.PaymentStatusProcessing,
		Method:    method,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
		return nil, fmt.Errorf("create payment: %w", err)
	}

	receipt, err := s.gateway.Charge(ctx, &gateway.ChargeRequest{
		BookingID: booking.ID,
		Amount:    payment.Amount,
		Currency:  payment.Currency,
		Method:    method,
	})
	if err != nil {
		// Declined: payment failed, booking stays pending
		if updateErr := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusFailed); updateErr != nil {
			s.log.Error("Failed to mark payment failed", zap.Error(updateErr), zap.String("payment_id", payment.ID))
		}
		payment.Status = entity.PaymentStatusFailed

		s.log.Warn("Payment declined",
			zap.Error(err),
			zap.String("payment_id", payment.ID),
			zap.String("booking_id", booking.ID),
		)

		resp := response.PaymentToResponse(payment)
		resp.BookingStatus = booking.Status
		return &resp, nil
	}

	payment.TransactionID = receipt.TransactionID
	payment.Status = entity.PaymentStatusSuccess

	if err := s.repo.Payment.UpdateResult(ctx, payment.ID, entity.PaymentStatusSuccess, receipt.TransactionID); err != nil {
		return nil, fmt.Errorf("store payment result: %w", err)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusConfirmed); err != nil {
		s.log.Error("Failed to confirm booking after payment",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
		return nil, fmt.Errorf("confirm booking %s: %w", booking.ID, err)
	}

	if err := s.repo.Booking.LinkPayment(ctx, booking.ID, payment.ID); err != nil {
		s.log.Error("Failed to link payment to booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
			zap.String("payment_id", payment.ID),
		)
	}

	s.log.Info("Payment processed",
		zap.String("payment_id", payment.ID),
		zap.String("booking_id", booking.ID),
		zap.String("transaction_id", payment.TransactionID),
		zap.Float64("amount", payment.Amount),
	)

	resp := response.PaymentToResponse(payment)
	resp.BookingStatus = entity.BookingStatusConfirmed
	resp.NextStep = fmt.Sprintf("Sync booking %s to the calendar to get a reminder", booking.ID)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID, reason string) (*response.CancellationResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	switch booking.Status {
	case entity.BookingStatusCancelled:
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCancelled, bookingID)
	case entity.BookingStatusCompleted:
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCompleted, bookingID)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	result := &response.CancellationResponse{
		BookingID: bookingID,
		Status:    entity.BookingStatusCancelled,
		Reason:    reason,
	}

	// Refund only a settled payment; unpaid bookings cancel without one
	if booking.PaymentID != "" {
		payment, err := s.repo.Payment.FindByID(ctx, booking.PaymentID)
		if err != nil {
			return nil, fmt.Errorf("find payment %s: %w", booking.PaymentID, err)
		}

		if payment != nil && payment.Status == entity.PaymentStatusSuccess {
			refund, err := s.gateway.Refund(ctx, &gateway.RefundRequest{
				BookingID: bookingID,
				PaymentID: payment.ID,
				Amount:    booking.TotalPrice,
			})
			if err != nil {
				return nil, fmt.Errorf("refund payment %s: %w", payment.ID, err)
			}

			if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusRefunded); err != nil {
				s.log.Error("Failed to mark payment refunded",
					zap.Error(err),
					zap.String("payment_id", payment.ID),
				)
				return nil, fmt.Errorf("mark payment %s refunded: %w", payment.ID, err)
			}

			result.Refund = &response.RefundResponse{
				RefundID:      refund.RefundID,
				RefundAmount:  refund.Amount,
				RefundStatus:  refund.Status,
				EstimatedDays: refund.EstimatedDays,
			}
		}
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("reason", reason),
		zap.Bool("refunded", result.Refund != nil),
	)

	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find payments for booking %s: %w", bookingID, err)
	}

	detail := &response.BookingDetailResponse{
		BookingResponse: response.BookingToResponse(booking),
	}
	for _, payment := range payments {
		detail.Payments = append(detail.Payments, response.PaymentToResponse(payment))
	}

	return detail, nil
}

func (s *bookingService) GetBookingPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find payments for booking %s: %w", bookingID, err)
	}

	responses := make([]response.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		responses = append(responses, response.PaymentToResponse(payment))
	}

	return responses, nil
}

func (s *bookingService) ListBookings(ctx context.Context, userEmail string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUserEmail(ctx, userEmail)
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("user_email", userEmail),
		)
		return nil, fmt.Errorf("list bookings for %s: %w", userEmail, err)
	}

	responses := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, response.BookingToResponse(booking))
	}

	s.log.Info("Bookings listed",
		zap.String("user_email", userEmail),
		zap.Int("count", len(responses)),
	)

	return responses, nil
}
