package service

import (
	"context"

	"github.com/liris-lib/library-service/internal/model"
)

func (s *Service) AllUniquePublications(ctx context.Context) ([]model.UniquePublication, error) {
	return s.repo.AllUniquePublications(ctx)
}

func (s *Service) UserBorrowedPublications(ctx context.Context, email string, labID *int) ([]model.UserBorrowedPublication, error) {
	return s.repo.UserBorrowedPublications(ctx, email, labID)
}

func (s *Service) LabValue(ctx context.Context, labID int) (model.LabValue, error) {
	return s.repo.LabValue(ctx, labID)
}

func (s *Service) LostBooks(ctx context.Context) ([]model.LostBook, error) {
	return s.repo.LostBooks(ctx)
}
