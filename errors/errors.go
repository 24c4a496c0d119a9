package errors

const (
	InvalidCredentials       = "invalid email/password"
	EmailRoleExist           = "account with this email and role already exists"
	EmailNotFound            = "Email not found"
	InvalidOrExpiredOtp      = "Invalid or expired OTP"
	InvalidRequestFormat     = "Invalid request format"
	InvalidTokenError        = "Token is invalid"
	VenueNotFound            = "Venue not found"
	VenueExists              = "A venue with the same name and address already exists."
	EventNotFound            = "Event not found"
	InvalidTicketType        = "Invalid ticket type"
	NotEnoughTickets         = "Not enough tickets available"
	InvalidBookingDates      = "Invalid check-in/check-out dates"
	InvalidBookingTarget     = "Invalid request. Provide venueId or eventId."
	PaymentNotFound          = "Payment record not found"
	NoEventTypes             = "No event types found. Please add event types first."
	InvalidEventTypeForMode  = "Invalid event type for the selected mode."
	OfflineVenueRequired     = "For offline events, a venue or custom address is required."
	TicketTypesRequired      = "At least one ticket type must be provided."
	TicketTypeFieldsRequired = "Each ticket type must have a name, price, and quantity."
	InvalidModeError         = "Invalid mode specified"
	DuplicateOnlineType      = "This event type already exists for Online events"
	DuplicateOfflineType     = "This event type already exists for Offline events"
	PanCardExists            = "This pan already exists"
	NoFileUploaded           = "No file uploaded"
	DatabaseError            = "something went wrong"
	InvalidID                = "Invalid id"
	Unauthorized             = "Unauthorized"
)
