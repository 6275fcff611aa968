// Package notificationrepo persists the notification outbox. Rows are
// written alongside the status change that produced them and consumed by
// the relay job.
package notificationrepo

import (
	"time"

	"github.com/google/uuid"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/model/order"
)

// NotificationDTO represents the database structure for outbox rows.
type NotificationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	RecipientID   uuid.UUID `gorm:"type:uuid"`
	Status        string    `gorm:"size:16"`
	Destination   string    `gorm:"size:255"`
	DepartureDate time.Time `gorm:"type:date"`
	ReturnDate    time.Time `gorm:"type:date"`
	CreatedAt     time.Time `gorm:"type:date;autoCreateTime:false"`
	Dispatched    bool      `gorm:"index"`
}

// TableName specifies the database table name for outbox rows.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		RecipientID:   aggregate.RecipientID().Bytes(),
		Status:        aggregate.Status().String(),
		Destination:   aggregate.Destination(),
		DepartureDate: aggregate.Period().Departure().Time(),
		ReturnDate:    aggregate.Period().Return().Time(),
		CreatedAt:     aggregate.CreatedAt().Time(),
		Dispatched:    aggregate.Dispatched(),
	}
}

// toDomain converts a database DTO to a notification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	period, err := kernel.NewTravelPeriod(
		kernel.DateFromTime(dto.DepartureDate),
		kernel.DateFromTime(dto.ReturnDate),
	)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, orderID, recipientID, status,
		dto.Destination, period, kernel.DateFromTime(dto.CreatedAt), dto.Dispatched)
}
