package adaptor

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sports-booking/internal/data/repository"
	"sports-booking/internal/gateway"
	"sports-booking/internal/usecase"
	"sports-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	repo := repository.NewMemoryRepository(zap.NewNop())
	service := usecase.NewBookingService(repo, gateway.NewSimulatedGateway(zap.NewNop()), zap.NewNop())
	handler := NewBookingHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/bookings", handler.CreateBooking)
	r.Get("/api/bookings", handler.ListBookings)
	r.Get("/api/bookings/{id}", handler.GetBooking)
	r.Get("/api/bookings/{id}/payments", handler.GetBookingPayments)
	r.Put("/api/bookings/{id}/cancel", handler.CancelBooking)
	r.Post("/api/payments", handler.ProcessPayment)
	return r
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, body any) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return rec, envelope
}

func bookingPayload() map[string]any {
	return map[string]any{
		"user_name":      "Rahul Sharma",
		"user_email":     "rahul@example.com",
		"user_phone":     "+919876543210",
		"activity_id":    "ACT123",
		"activity_name":  "Badminton Doubles",
		"venue_name":     "Smash Arena",
		"venue_address":  "12 MG Road, Bengaluru",
		"sport_type":     "Badminton",
		"date":           "2025-11-24",
		"time_slot":      "6:00 PM - 7:00 PM",
		"duration_hours": 2,
		"price_per_hour": 500,
		"num_players":    4,
	}
}

func createBooking(t *testing.T, router *chi.Mux) string {
	t.Helper()
	rec, envelope := doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	id, ok := data["id"].(string)
	require.True(t, ok)
	return id
}

func TestCreateBookingEndpoint(t *testing.T) {
	router := newBookingTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload())
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, envelope.Status)

	data := envelope.Data.(map[string]any)
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, 1000.0, data["total_price"])
}

func TestCreateBookingEndpointBadBody(t *testing.T) {
	router := newBookingTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingEndpointValidation(t *testing.T) {
	router := newBookingTestRouter(t)

	payload := bookingPayload()
	payload["user_email"] = "nope"
	rec, envelope := doJSON(t, router, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Status)
}

func TestPaymentAndCancelFlow(t *testing.T) {
	router := newBookingTestRouter(t)
	id := createBooking(t, router)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/payments", map[string]any{
		"booking_id":     id,
		"payment_method": "upi",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	data := envelope.Data.(map[string]any)
	assert.Equal(t, "success", data["status"])
	assert.Equal(t, "confirmed", data["booking_status"])

	// Paying again conflicts
	rec, _ = doJSON(t, router, http.MethodPost, "/api/payments", map[string]any{"booking_id": id})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Cancel refunds the settled payment
	rec, envelope = doJSON(t, router, http.MethodPut, "/api/bookings/"+id+"/cancel", map[string]any{
		"reason": "rain expected",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	data = envelope.Data.(map[string]any)
	refund, ok := data["refund"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1000.0, refund["refund_amount"])

	// Cancelling again conflicts
	rec, _ = doJSON(t, router, http.MethodPut, "/api/bookings/"+id+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetBookingEndpoint(t *testing.T) {
	router := newBookingTestRouter(t)
	id := createBooking(t, router)

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/bookings/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	data := envelope.Data.(map[string]any)
	assert.Equal(t, id, data["id"])

	rec, _ = doJSON(t, router, http.MethodGet, "/api/bookings/BKMISSING0", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListBookingsEndpoint(t *testing.T) {
	router := newBookingTestRouter(t)
	createBooking(t, router)

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/bookings?email=rahul@example.com", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 1)

	// Email is mandatory
	rec, _ = doJSON(t, router, http.MethodGet, "/api/bookings", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingPaymentsEndpoint(t *testing.T) {
	router := newBookingTestRouter(t)
	id := createBooking(t, router)

	_, _ = doJSON(t, router, http.MethodPost, "/api/payments", map[string]any{"booking_id": id})

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/bookings/"+id+"/payments", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := envelope.Data.([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
}
