package storage

import (
	"context"
	"errors"
	"fmt"

	"parcelverge/internal/repository"
)

const topDeliveryPersonsLimit = 5

// UserSpendSummaries lists every user with the count and total price of their
// bookings, joined by email.
func (s *PostgresStorage) UserSpendSummaries(ctx context.Context) ([]UserSpendSummary, error) {
	rows, err := s.users.SpendSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build spend summaries: %w", err)
	}

	summaries := make([]UserSpendSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, UserSpendSummary{
			ID:               row.ID,
			Email:            row.Email,
			Name:             row.Name,
			PhoneNumber:      row.PhoneNumber,
			ImageURL:         row.ImageURL,
			Role:             row.Role,
			NumberOfBookings: row.NumberOfBookings,
			TotalSpent:       row.TotalSpent,
		})
	}
	return summaries, nil
}

// TopDeliveryPersons ranks assignees by the number of parcels ever assigned to
// them, regardless of delivery outcome. Ties on the count break by id so the
// ordering is stable. The detailed flag includes id and phone for the admin
// view; the public view carries only name, photo and the two numbers.
func (s *PostgresStorage) TopDeliveryPersons(ctx context.Context, detailed bool) ([]DeliveryPersonRank, error) {
	counts, err := s.parcels.CountsByDeliveryPerson(ctx, topDeliveryPersonsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank delivery persons: %w", err)
	}

	ranks := make([]DeliveryPersonRank, 0, len(counts))
	for _, count := range counts {
		rank := DeliveryPersonRank{TotalDelivery: count.Count}

		// A dangling assignee id keeps its slot with empty profile fields.
		if profile, err := s.lookupProfile(ctx, count.DeliveryPersonID); err != nil {
			return nil, err
		} else if profile != nil {
			rank.Name = profile.Name
			rank.Photo = profile.ImageURL
			if detailed {
				rank.ID = profile.ID
				rank.Phone = profile.PhoneNumber
			}
		}

		avg, err := s.reviews.Average(ctx, count.DeliveryPersonID)
		if err != nil {
			return nil, fmt.Errorf("failed to average reviews for %s: %w", count.DeliveryPersonID, err)
		}
		rank.AverageReview = avg

		ranks = append(ranks, rank)
	}
	return ranks, nil
}

// BookingsByDate buckets bookings per calendar day of their booking timestamp,
// oldest day first. Days without bookings produce no bucket.
func (s *PostgresStorage) BookingsByDate(ctx context.Context) ([]DateBucket, error) {
	counts, err := s.parcels.CountsByBookingDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket bookings by date: %w", err)
	}

	buckets := make([]DateBucket, 0, len(counts))
	for _, count := range counts {
		buckets = append(buckets, DateBucket{Date: count.Date, Count: count.Count})
	}
	return buckets, nil
}

func (s *PostgresStorage) lookupProfile(ctx context.Context, id string) (*repository.User, error) {
	if profile, found := s.profiles.Get(id); found {
		return profile, nil
	}

	profile, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up profile %s: %w", id, err)
	}
	s.profiles.Set(profile)
	return profile, nil
}
