// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps are owned by the aggregate, so GORM's automatic time tracking
// is disabled.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	Destination   string    `gorm:"size:255"`
	DepartureDate time.Time `gorm:"type:date"`
	ReturnDate    time.Time `gorm:"type:date"`
	Status        string    `gorm:"size:16;index"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OwnerID:       aggregate.OwnerID().Bytes(),
		Destination:   aggregate.Destination(),
		DepartureDate: aggregate.Period().Departure().Time(),
		ReturnDate:    aggregate.Period().Return().Time(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which accepts stored orders with departure dates in the past.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
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

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, ownerID, dto.Destination, period, status, dto.CreatedAt, dto.UpdatedAt)
}
