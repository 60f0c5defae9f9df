package handler

import (
	"net/http"
	"strings"
	"time"

	"washapp/internal/delivery/api/response"
	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// HeaderIdempotencyKey lets clients retry booking creation safely.
const HeaderIdempotencyKey = "Idempotency-Key"

const bookingDateLayout = time.DateOnly

type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	ReviewUC  usecase.ReviewUsecase
	PaymentUC usecase.PaymentUsecase
}

// BookingHandler serves bookings and the records attached to them.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	reviewUC  usecase.ReviewUsecase
	paymentUC usecase.PaymentUsecase
}

func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		reviewUC:  params.ReviewUC,
		paymentUC: params.PaymentUC,
	}
}

type CreateBookingRequest struct {
	ServiceID           uuid.UUID `json:"service_id" validate:"required"`
	BookingDate         string    `json:"booking_date" validate:"required,datetime=2006-01-02"`
	BookingTime         string    `json:"booking_time" validate:"required"`
	VehicleType         string    `json:"vehicle_type" validate:"required,max=50"`
	VehicleNumber       string    `json:"vehicle_number" validate:"required,max=20"`
	SpecialInstructions string    `json:"special_instructions"`
}

type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
}

type CheckInRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

type SubmitReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"required,max=50"`
	TransactionID string          `json:"transaction_id" validate:"max=100"`
	Status        string          `json:"status" validate:"omitempty,oneof=pending completed failed refunded"`
}

func (h *BookingHandler) Create(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	var req CreateBookingRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	date, err := time.Parse(bookingDateLayout, req.BookingDate)
	if err != nil {
		return response.BindingError(c, "Invalid booking_date")
	}
	tod, err := entity.ParseTimeOfDay(req.BookingTime)
	if err != nil {
		return response.BindingError(c, "Invalid booking_time")
	}

	created, err := h.bookingUC.Create(c.Request().Context(), actor, &usecase.CreateBookingInput{
		ServiceID:           req.ServiceID,
		BookingDate:         date,
		BookingTime:         tod,
		VehicleType:         req.VehicleType,
		VehicleNumber:       req.VehicleNumber,
		SpecialInstructions: req.SpecialInstructions,
		IdempotencyKey:      strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey)),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

// List accepts ?status=pending,confirmed.
func (h *BookingHandler) List(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	statuses, err := entity.ParseBookingStatuses(c.QueryParam("status"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidStatus.WithDetails(err.Error()))
	}

	bookings, err := h.bookingUC.List(c.Request().Context(), actor, statuses)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bookings)
}

func (h *BookingHandler) Get(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	found, err := h.bookingUC.Get(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, found)
}

func (h *BookingHandler) Transition(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req TransitionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	updated, err := h.bookingUC.Transition(c.Request().Context(), actor, id, entity.BookingStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

func (h *BookingHandler) Cancel(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	cancelled, err := h.bookingUC.Cancel(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cancelled)
}

// CheckInQR returns the booking's check-in code as image/png.
func (h *BookingHandler) CheckInQR(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	png, err := h.bookingUC.CheckInQR(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *BookingHandler) CheckIn(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}

	var req CheckInRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	found, err := h.bookingUC.ResolveCheckIn(c.Request().Context(), actor, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, found)
}

func (h *BookingHandler) SubmitReview(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req SubmitReviewRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	review, err := h.reviewUC.Submit(c.Request().Context(), actor, id, &usecase.SubmitReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review)
}

func (h *BookingHandler) RecordPayment(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req RecordPaymentRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	payment, err := h.paymentUC.Record(c.Request().Context(), actor, id, &usecase.RecordPaymentInput{
		Amount:        req.Amount,
		Method:        req.PaymentMethod,
		TransactionID: req.TransactionID,
		Status:        entity.PaymentStatus(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, payment)
}

func (h *BookingHandler) ListPayments(c echo.Context) error {
	actor, ok, err := actorOrAbort(c)
	if !ok {
		return err
	}
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	payments, err := h.paymentUC.List(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payments)
}
