package models

// BikeUpdateRequest is the body of POST /update_bike/. A nil field was absent
// or null; an empty string is a value. Dates stay strings here so validation
// can report the offending field.
type BikeUpdateRequest struct {
	BrandName          *string `json:"brand_name" validate:"required"`
	Name               *string `json:"name" validate:"required"`
	ModelName          *string `json:"model_name" validate:"required"`
	RegistrationNumber *string `json:"registration_number" validate:"required"`
	KilometersDriven   *string `json:"kilometers_driven" validate:"required"`
	Color              *string `json:"color" validate:"required"`
	ModelYear          *string `json:"model_year" validate:"required"`
	Description        *string `json:"description" validate:"required"`
	City               *string `json:"city" validate:"required"`
	Location           *string `json:"location" validate:"required"`
	CreatedAt          *string `json:"created_at" validate:"omitempty,isodate"`
	PurchaseDate       *string `json:"purchase_date" validate:"required,isodate"`
	Availability       *string `json:"availability" validate:"required"`
	PricePerDay        *string `json:"price_per_day" validate:"required"`
	PricePerMonth      *string `json:"price_per_month" validate:"required"`
	Category           *string `json:"category" validate:"required"`
}

// BikeRecord is the document stored under vehicles/<bikeId>.
type BikeRecord struct {
	BikeID             string `json:"bikeId"`
	BrandName          string `json:"brand_name"`
	Name               string `json:"name"`
	ModelName          string `json:"model_name"`
	RegistrationNumber string `json:"registration_number"`
	KilometersDriven   string `json:"kilometers_driven"`
	Color              string `json:"color"`
	ModelYear          string `json:"model_year"`
	Description        string `json:"description"`
	City               string `json:"city"`
	Location           string `json:"location"`
	CreatedAt          string `json:"created_at"`
	PurchaseDate       string `json:"purchase_date"`
	Availability       string `json:"availability"`
	PricePerDay        string `json:"price_per_day"`
	PricePerMonth      string `json:"price_per_month"`
	Category           string `json:"category"`
}

// Bike is a listing as returned by GET /bikes.
type Bike struct {
	BikeID             string `json:"bikeId"`
	BrandName          string `json:"brand_name"`
	Name               string `json:"name"`
	ModelName          string `json:"model_name"`
	RegistrationNumber string `json:"registration_number"`
	KilometersDriven   string `json:"kilometers_driven"`
	Color              string `json:"color"`
	ModelYear          string `json:"model_year"`
	Description        string `json:"description"`
	City               string `json:"city"`
	Location           string `json:"location"`
	CreatedAt          *Date  `json:"created_at"`
	PurchaseDate       Date   `json:"purchase_date"`
	Availability       string `json:"availability"`
	PricePerDay        string `json:"price_per_day"`
	PricePerMonth      string `json:"price_per_month"`
	Category           string `json:"category"`
}

type CreateBikeResponse struct {
	Message string `json:"message"`
	BikeID  string `json:"bike_id"`
}
