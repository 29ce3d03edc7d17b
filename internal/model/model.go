// Package model defines the core domain types for the class enrollment
// and payment backend.
package model

import "time"

// Roles a user can hold. Every registered user starts as RoleUser;
// promotions are admin-only operations.
const (
	RoleUser       = "user"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Class approval lifecycle.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

// User represents a registered account. Users are never deleted.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	PhotoURL    string    `json:"photo_url"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// Class represents a dance class proposed by an instructor.
// Feedback is present only when the class has been denied.
type Class struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	InstructorName       string    `json:"instructor_name"`
	InstructorEmail      string    `json:"instructor_email"`
	Price                float64   `json:"price"`
	ImageURL             string    `json:"image_url"`
	AvailableSeats       int       `json:"available_seats"`
	TotalEnrolledStudent int       `json:"total_enrolled_student"`
	Status               string    `json:"status"`
	Feedback             string    `json:"feedback,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// PublicClass is the display-safe projection served on unauthenticated
// listings: no approval feedback, no instructor email.
type PublicClass struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	InstructorName       string  `json:"instructor_name"`
	Price                float64 `json:"price"`
	ImageURL             string  `json:"image_url"`
	AvailableSeats       int     `json:"available_seats"`
	TotalEnrolledStudent int     `json:"total_enrolled_student"`
}

// Public converts a Class to its display-safe projection.
func (c *Class) Public() PublicClass {
	return PublicClass{
		ID:                   c.ID,
		Name:                 c.Name,
		InstructorName:       c.InstructorName,
		Price:                c.Price,
		ImageURL:             c.ImageURL,
		AvailableSeats:       c.AvailableSeats,
		TotalEnrolledStudent: c.TotalEnrolledStudent,
	}
}

// Instructor is the public projection of a user with the instructor role.
type Instructor struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

// CartSelection is a user's provisional, unpaid intent to enroll in a class.
// Rows are removed either by the owner or by a successful settlement.
type CartSelection struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	ClassID   string    `json:"class_id"`
	ClassName string    `json:"class_name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// EnrolledClass is the append-only record of a purchased seat. Rows created
// by the same settlement share a payment transaction id.
type EnrolledClass struct {
	ID                   string    `json:"id"`
	UserEmail            string    `json:"user_email"`
	ClassID              string    `json:"class_id"`
	ClassName            string    `json:"class_name"`
	Price                float64   `json:"price"`
	PaymentTransactionID string    `json:"payment_transaction_id"`
	PaymentDate          time.Time `json:"payment_date"`
}

// ─── Request / response payloads ─────────────────────────────────────────────

// TokenRequest is the payload for POST /jwt.
type TokenRequest struct {
	Email string `json:"email"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterUserRequest is the payload for POST /users.
type RegisterUserRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

// RegisterUserResponse acknowledges a registration attempt. Registering an
// email that already exists is a no-op that sets Existing.
type RegisterUserResponse struct {
	Message  string `json:"message"`
	Existing bool   `json:"existing"`
}

// CreateClassRequest is the payload for POST /classes. The instructor's
// email comes from the verified token, never from the body.
type CreateClassRequest struct {
	Name           string  `json:"name"`
	InstructorName string  `json:"instructor_name"`
	Price          float64 `json:"price"`
	ImageURL       string  `json:"image_url"`
	AvailableSeats int     `json:"available_seats"`
}

// StatusUpdateRequest is the body for PATCH /classes; feedback is mandatory
// when denying a class.
type StatusUpdateRequest struct {
	Feedback string `json:"feedback"`
}

// AddSelectionRequest is the payload for POST /selected-classes. Class name,
// price, and image are resolved server-side from the catalog.
type AddSelectionRequest struct {
	ClassID string `json:"class_id"`
}

// CreateIntentRequest is the payload for POST /create-payment-intent.
// TotalPrice is in major currency units; conversion to minor units (×100)
// happens server-side before calling the gateway.
type CreateIntentRequest struct {
	TotalPrice float64 `json:"totalPrice"`
}

// CreateIntentResponse returns the gateway client secret.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentRequest is the confirmed-payment record posted to POST /payment.
type PaymentRequest struct {
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	TransactionID string   `json:"transactionId"`
	CartItemIDs   []string `json:"cartItems"`
	ClassIDs      []string `json:"classesId"`
	ClassName     string   `json:"className"`
	Price         float64  `json:"price"`
}

// SettlementResult summarises a successful settlement.
type SettlementResult struct {
	TransactionID   string `json:"transaction_id"`
	EnrolledCount   int    `json:"enrolled_count"`
	RemovedFromCart int    `json:"removed_from_cart"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
