package constants

const (
	ROLE_ADMIN = "admin"
	ROLE_USER  = "user"
)

const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read validated input"
	ERROR_CREATE               = "Create failed"
	ERROR_UPDATE               = "Update failed"

	MISSING_LOGIN_INPUT = "Email and password are required"
	INVALID_EMAIL       = "Email is not registered"
	INVALID_PASSWORD    = "Wrong password"
	EMAIL_TAKEN         = "Email is already registered"
	NOT_ADMIN           = "Admin access required"
	NOT_LOGGED_IN       = "Please login first"
	NOT_ORDER_OWNER     = "Not allowed to access this order"

	HOTEL_NOT_FOUND       = "Hotel not found"
	ROOM_NOT_FOUND        = "Room type not found"
	DESTINATION_NOT_FOUND = "Destination not found"
	EVENT_NOT_FOUND       = "Event not found"
	ORDER_NOT_FOUND       = "Order not found"

	ROOM_NOT_AVAILABLE   = "Room is not available"
	EVENT_NOT_BOOKABLE   = "Event is not open for booking"
	INVALID_DATE_RANGE   = "Check-in date must be before check-out date"
	INVALID_DATE_FORMAT  = "Invalid date format, expected YYYY-MM-DD"
	ORDER_NOT_PENDING    = "Order is no longer pending"
	PAYMENT_TOKEN_FAILED = "Failed to create payment token"
	DUPLICATE_REVIEW     = "You already reviewed this item"
	ITEM_NOT_IN_ORDER    = "Item is not part of this order"
	TICKET_NOT_PAID      = "Tickets are only available for paid orders"
	INVALID_SIGNATURE    = "Invalid notification signature"
)
