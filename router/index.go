package router

import (
	"santaratrip/handler"
	"santaratrip/middleware"
	"santaratrip/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	destination := v1.Group("/destination", logger.New())
	destination.Get("/", handler.GetDestinations)
	destination.Get("/:slug", handler.GetDestinationBySlug)
	destination.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateDestination(), handler.CreateDestination)
	destination.Put("/:id", middleware.Protected(), middleware.AdminOnly(), validate.CreateDestination(), handler.UpdateDestination)
	destination.Delete("/:id", middleware.Protected(), middleware.AdminOnly(), handler.DeleteDestination)

	hotel := v1.Group("/hotel", logger.New())
	hotel.Get("/", handler.GetHotels)
	hotel.Get("/:slug", handler.GetHotelBySlug)
	hotel.Get("/:slug/rooms", handler.GetHotelRooms)
	hotel.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateHotel(), handler.CreateHotel)
	hotel.Put("/:id", middleware.Protected(), middleware.AdminOnly(), validate.CreateHotel(), handler.UpdateHotel)
	hotel.Delete("/:id", middleware.Protected(), middleware.AdminOnly(), handler.DeleteHotel)

	room := v1.Group("/room", logger.New())
	room.Get("/:id/availability", handler.GetRoomAvailability)
	room.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateRoom(), handler.CreateRoom)
	room.Put("/:id", middleware.Protected(), middleware.AdminOnly(), validate.CreateRoom(), handler.UpdateRoom)
	room.Delete("/:id", middleware.Protected(), middleware.AdminOnly(), handler.DeleteRoom)

	event := v1.Group("/event", logger.New())
	event.Get("/", handler.GetEvents)
	event.Get("/:slug", handler.GetEventBySlug)
	event.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateEvent(), handler.CreateEvent)
	event.Put("/:id", middleware.Protected(), middleware.AdminOnly(), validate.CreateEvent(), handler.UpdateEvent)
	event.Delete("/:id", middleware.Protected(), middleware.AdminOnly(), handler.DeleteEvent)

	order := v1.Group("/order", logger.New())
	order.Post("/hotel", middleware.Protected(), validate.BookHotel(), handler.BookHotel)
	order.Post("/wisata", middleware.Protected(), validate.BookWisata(), handler.BookWisata)
	order.Post("/event", middleware.Protected(), validate.BookEvent(), handler.BookEvent)
	order.Post("/review", middleware.Protected(), validate.SubmitReview(), handler.SubmitReview)
	order.Get("/user", middleware.Protected(), handler.GetMyOrders)
	order.Get("/:code", middleware.Protected(), handler.GetOrderDetail)
	order.Post("/:code/cancel", middleware.Protected(), handler.CancelOrderByUser)

	review := v1.Group("/review", logger.New())
	review.Get("/:itemType/:itemId", handler.GetReviews)

	payment := v1.Group("/payment", logger.New())
	payment.Get("/status/:orderId", middleware.Protected(), handler.CheckPaymentStatus)
	payment.Get("/token/:orderId", middleware.Protected(), handler.GetPaymentToken)
	// Server-to-server, authenticated by signature instead of JWT
	payment.Post("/midtrans-notify", handler.MidtransNotification)

	v1.Get("/ticket/email", middleware.Protected(), handler.ResendTicket)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateUploadSignature)

	v1.Get("/ws/room/:id", websocket.New(handler.RoomAvailabilitySocket))
}
