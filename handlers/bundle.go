package handlers

// HandlerBundle groups the request handlers wired at startup.
type HandlerBundle struct {
	Booking *BookingHandler
	Catalog *CatalogHandler
	Admin   *AdminHandler
	Inquiry *InquiryHandler
}
