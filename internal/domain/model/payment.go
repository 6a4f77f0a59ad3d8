package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

type Payment struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount    decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"amount"`
	Currency  string          `gorm:"type:varchar(10);not null" json:"currency"`
	Status    PaymentStatus   `gorm:"type:varchar(20);not null" json:"status"`
	OrderID   int64           `gorm:"not null;index" json:"order_id"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
