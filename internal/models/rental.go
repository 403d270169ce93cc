package models

// RentalRequestInput is the body of POST /rental/.
type RentalRequestInput struct {
	Name     *string `json:"name" validate:"required"`
	Number   *string `json:"number" validate:"required"`
	BikeName *string `json:"bike_name" validate:"required"`
	FromDate *string `json:"from_date" validate:"required,isodate"`
	ToDate   *string `json:"to_date" validate:"required,isodate"`
}

// RentalRecord is the document pushed to rental_requests.
type RentalRecord struct {
	Name     string `json:"name"`
	Number   string `json:"number"`
	BikeName string `json:"bike_name"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

type CreateRentalResponse struct {
	Message  string `json:"message"`
	RentalID string `json:"rental_id"`
}
