package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ConsultationStatus string

const ConsultationStatusPending ConsultationStatus = "pending"

// ScheduleLayout is the minute-precision format accepted for booking times.
const ScheduleLayout = "2006-01-02T15:04"

type Consultation struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	ConsultantID  uuid.UUID
	Category      string
	Description   string
	Status        ConsultationStatus
	ScheduledDate *time.Time
	Fee           decimal.Decimal
	CreatedDate   time.Time
}
