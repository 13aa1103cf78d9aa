package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Root(c *ginext.Context)
	IssueToken(c *ginext.Context)
	Logout(c *ginext.Context)
	ListRooms(c *ginext.Context)
	GetRoom(c *ginext.Context)
	CreateRoom(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
}

// Guards are the per-route middlewares. Auth verifies the session token, Staff
// must run after Auth, Idempotency wraps retried writes.
type Guards struct {
	Auth        ginext.HandlerFunc
	Staff       ginext.HandlerFunc
	Idempotency ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/", h.Root)
	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	// Session
	router.POST("/jwt", h.IssueToken)
	router.POST("/logout", h.Logout)

	// Rooms
	router.GET("/rooms", h.ListRooms)
	router.GET("/rooms/:id", h.GetRoom)
	router.POST("/rooms", g.Auth, g.Staff, h.CreateRoom)

	// Bookings
	router.POST("/bookings", g.Idempotency, h.CreateBooking)
	router.PATCH("/bookings/:id", g.Auth, g.Staff, g.Idempotency, h.UpdateBooking)
	router.GET("/bookings", g.Auth, h.ListBookings)
	router.DELETE("/bookings/:id", h.DeleteBooking)

	return router
}
