package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/auth"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/stpnv0/HotelBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// HeaderStaffKey carries the staff API key on POST /jwt.
const HeaderStaffKey = "X-Staff-Key"

type RoomSvc interface {
	CreateRoom(ctx context.Context, input domain.CreateRoomInput) (*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
}

type BookingSvc interface {
	Book(ctx context.Context, roomID, requester string) (*domain.Booking, error)
	SetStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) error
	ListByRequester(ctx context.Context, caller, requester string) ([]*domain.Booking, error)
}

type TokenIssuer interface {
	Issue(email, staffKey string) (string, error)
	TTL() time.Duration
}

type Handler struct {
	roomService    RoomSvc
	bookingService BookingSvc
	tokens         TokenIssuer
	secureCookie   bool
}

func NewHandler(roomService RoomSvc, bookingService BookingSvc, tokens TokenIssuer, secureCookie bool) *Handler {
	return &Handler{
		roomService:    roomService,
		bookingService: bookingService,
		tokens:         tokens,
		secureCookie:   secureCookie,
	}
}

func (h *Handler) Root(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "Hotel Room Server is running"})
}

// Session

func (h *Handler) IssueToken(c *ginext.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.tokens.Issue(req.Email, c.GetHeader(HeaderStaffKey))
	if err != nil {
		if errors.Is(err, auth.ErrStaffDenied) {
			c.Set("error", err.Error())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized access"})
			return
		}
		h.handleError(c, err)
		return
	}

	h.setTokenCookie(c, token, int(h.tokens.TTL().Seconds()))
	c.JSON(http.StatusOK, dto.TokenResponse{Success: true})
}

func (h *Handler) Logout(c *ginext.Context) {
	h.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, dto.TokenResponse{Success: true})
}

func (h *Handler) setTokenCookie(c *ginext.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.TokenCookie, value, maxAge, "/", "", h.secureCookie, true)
}

// Rooms

func (h *Handler) ListRooms(c *ginext.Context) {
	rooms, err := h.roomService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, dto.ToRoomResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetRoom(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
		return
	}

	room, err := h.roomService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			c.Set("error", err.Error())
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Code: "RoomNotFound"})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) CreateRoom(c *ginext.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), domain.CreateRoomInput{
		Name:       req.Name,
		TotalSeats: *req.TotalSeats,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), req.RoomID, req.RequesterIdentity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	status, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid status", Code: "Validation"})
		return
	}

	booking, err := h.bookingService.SetStatus(c.Request.Context(), id, status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	requester := c.Query("requester_identity")
	if requester == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "requester_identity is required"})
		return
	}

	bookings, err := h.bookingService.ListByRequester(c.Request.Context(), middleware.Identity(c), requester)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: false})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: true})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	code, ok := domain.RejectionCode(err)
	switch {
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error(), Code: code})

	case ok:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: code})

	default:
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:     "service temporarily unavailable",
			Retryable: true,
		})
	}
}
