package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a hotel room booking in the system
type Booking struct {
	ID           int64
	UserID       int64
	RoomID       int64
	CheckInDate  time.Time // дата заезда (полуоткрытый интервал [CheckIn, CheckOut))
	CheckOutDate time.Time // дата выезда
	TotalPrice   int64     // итоговая цена в минимальных единицах валюты (VND без субъединиц)
	Status       BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking participates in availability checks
// Отменённые бронирования не занимают номер
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeConfirmed returns true if the booking can transition to confirmed
// Подтверждать можно только pending - повторное подтверждение это ошибка, не no-op
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the booking can be cancelled
// Из cancelled переходов нет
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Nights returns the number of nights covered by the booking
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckInDate, b.CheckOutDate)
}

// Overlaps reports whether the booking interval overlaps [checkIn, checkOut)
// Интервалы полуоткрытые: граничащие бронирования не пересекаются
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return IntervalsOverlap(b.CheckInDate, b.CheckOutDate, checkIn, checkOut)
}
