package model

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type BookHotelInput struct {
	HotelId       uint   `json:"hotelId" validate:"required"`
	RoomId        uint   `json:"roomId" validate:"required"`
	StartDate     string `json:"startDate" validate:"required"` // YYYY-MM-DD
	EndDate       string `json:"endDate" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=transfer credit_card e-wallet"`
	Notes         string `json:"notes"`
}

type BookWisataInput struct {
	DestinationId uint   `json:"destinationId" validate:"required"`
	VisitDate     string `json:"visitDate" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=transfer credit_card e-wallet"`
	Notes         string `json:"notes"`
}

type BookEventInput struct {
	EventId       uint   `json:"eventId" validate:"required"`
	VisitDate     string `json:"visitDate" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=transfer credit_card e-wallet"`
	Notes         string `json:"notes"`
}

type SubmitReviewInput struct {
	OrderId  uint   `json:"orderId" validate:"required"`
	ItemId   uint   `json:"itemId" validate:"required"`
	ItemType string `json:"itemType" validate:"required,oneof=hotel room destination event"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required,max=500"`
}

type FilterCatalogInput struct {
	Search   string `query:"search"`
	City     string `query:"city"`
	Category string `query:"category"`
	Limit    *int   `query:"limit"`
	Page     *int   `query:"page"`
}

type CreateDestinationInput struct {
	Name        string   `json:"name" form:"name" validate:"required"`
	Description string   `json:"description" form:"description"`
	Category    string   `json:"category" form:"category"`
	City        string   `json:"city" form:"city"`
	Province    string   `json:"province" form:"province"`
	Address     string   `json:"address" form:"address"`
	Price       int64    `json:"price" form:"price" validate:"required,gt=0"`
	Facilities  []string `json:"facilities" form:"facilities"`
}

type CreateHotelInput struct {
	Name        string   `json:"name" form:"name" validate:"required"`
	Description string   `json:"description" form:"description"`
	Address     string   `json:"address" form:"address" validate:"required"`
	City        string   `json:"city" form:"city"`
	Province    string   `json:"province" form:"province"`
	Stars       int      `json:"stars" form:"stars" validate:"min=1,max=5"`
	Facilities  []string `json:"facilities" form:"facilities"`
}

type CreateRoomInput struct {
	HotelId     uint     `json:"hotelId" form:"hotelId" validate:"required"`
	Name        string   `json:"name" form:"name" validate:"required"`
	Type        string   `json:"type" form:"type" validate:"required"`
	Description string   `json:"description" form:"description"`
	Price       int64    `json:"price" form:"price" validate:"required,gt=0"`
	Capacity    int      `json:"capacity" form:"capacity" validate:"required,gt=0"`
	Guests      int      `json:"guests" form:"guests" validate:"gt=0"`
	BedType     string   `json:"bedType" form:"bedType" validate:"required,oneof=single twin double queen king"`
	Size        int      `json:"size" form:"size"`
	Facilities  []string `json:"facilities" form:"facilities"`
}

type CreateEventInput struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category"`
	Location    string `json:"location" form:"location"`
	Price       int64  `json:"price" form:"price" validate:"required,gt=0"`
	Capacity    int    `json:"capacity" form:"capacity" validate:"required,gt=0"`
	StartDate   string `json:"startDate" form:"startDate" validate:"required"`
	EndDate     string `json:"endDate" form:"endDate" validate:"required"`
}
