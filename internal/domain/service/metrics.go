package service

import "washapp/internal/domain/entity"

// BookingMetrics records booking lifecycle events after they commit.
type BookingMetrics interface {
	BookingCreated()
	BookingTransitioned(from, to entity.BookingStatus)
	ReviewSubmitted(rating int)
}
