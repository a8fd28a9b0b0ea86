package domain

import "time"

// Step is one stage of the checkout flow.
type Step string

const (
	StepShipping  Step = "shipping"
	StepReview    Step = "review"
	StepConfirmed Step = "confirmed"
)

// ShippingDetails holds the validated shipping form values.
type ShippingDetails struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zipCode"`
}

// Order is the confirmation produced when an order is placed. Lines and total
// come from the cart snapshot frozen at review time.
type Order struct {
	ID         string          `json:"id"`
	PlacedAt   time.Time       `json:"placedAt"`
	Shipping   ShippingDetails `json:"shipping"`
	Lines      []CartLine      `json:"lines"`
	TotalCents int64           `json:"totalCents"`
}
