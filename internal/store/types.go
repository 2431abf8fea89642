package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactSubmission is a contact form submission as persisted in the
// contacts collection. Records are immutable once created.
type ContactSubmission struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Company   string             `bson:"company,omitempty" json:"company,omitempty"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	IPAddress string             `bson:"ip_address" json:"ipAddress"`
	UserAgent string             `bson:"user_agent,omitempty" json:"userAgent,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// QuoteSubmission is a quote request as persisted in the quotes collection.
type QuoteSubmission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Company      string             `bson:"company,omitempty" json:"company,omitempty"`
	Product      string             `bson:"product" json:"product"`
	Quantity     string             `bson:"quantity" json:"quantity"`
	Requirements string             `bson:"requirements,omitempty" json:"requirements,omitempty"`
	IPAddress    string             `bson:"ip_address" json:"ipAddress"`
	UserAgent    string             `bson:"user_agent,omitempty" json:"userAgent,omitempty"`
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
}
