package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/liris-lib/library-service/internal/errs"
	"github.com/liris-lib/library-service/internal/model"
	"github.com/liris-lib/library-service/pkg/auth"
)

func (s *Service) ListBorrowings(ctx context.Context, id auth.Identity) ([]model.Borrowing, error) {
	return s.repo.ListBorrowings(ctx, id.Email, id.IsAdmin())
}

func (s *Service) CanBorrow(ctx context.Context, email string, publicationID int) (model.CanBorrow, error) {
	return s.repo.CanBorrow(ctx, email, publicationID)
}

// CreateBorrowing runs the borrow workflow: the database-side eligibility
// veto first, then the locked copy-selection-and-insert transaction.
func (s *Service) CreateBorrowing(ctx context.Context, id auth.Identity, req model.CreateBorrowingRequest) (model.CreateBorrowingResponse, error) {
	verdict, err := s.repo.CanBorrow(ctx, id.Email, req.PublicationID)
	if err != nil {
		return model.CreateBorrowingResponse{}, err
	}
	if !verdict.CanBorrow {
		return model.CreateBorrowingResponse{}, &errs.BorrowVeto{Reason: verdict.Reason}
	}

	borrowingID, copyID, dueDate, err := s.repo.CreateBorrowing(ctx, id.Email, req.PublicationID, req.LabID)
	if err != nil {
		return model.CreateBorrowingResponse{}, err
	}

	s.log.Info("borrowing created",
		zap.String("email", id.Email),
		zap.Int("publication", req.PublicationID),
		zap.Int("lab", req.LabID),
		zap.Int("borrowing", borrowingID))

	s.publishBorrowingEvent(model.BorrowingEvent{
		EventID:       uuid.NewString(),
		Action:        model.EventBorrowed,
		BorrowingID:   borrowingID,
		CopyID:        copyID,
		PublicationID: req.PublicationID,
		LabID:         req.LabID,
		Email:         id.Email,
		At:            time.Now().UTC(),
	})

	return model.CreateBorrowingResponse{
		Message:     "Book borrowed successfully",
		BorrowingID: borrowingID,
		DueDate:     dueDate.Format(time.DateOnly),
	}, nil
}

// ReturnBorrowing closes an open loan on behalf of its borrower or an
// administrator.
func (s *Service) ReturnBorrowing(ctx context.Context, id auth.Identity, borrowingID int) error {
	rec, err := s.repo.GetOpenBorrowing(ctx, borrowingID)
	if err != nil {
		return err
	}
	if !id.IsAdmin() && rec.Email != id.Email {
		return errs.ErrForbidden
	}

	copyID, err := s.repo.CloseBorrowing(ctx, borrowingID)
	if err != nil {
		return err
	}

	s.log.Info("borrowing returned",
		zap.Int("borrowing", borrowingID),
		zap.String("by", id.Email))

	s.publishBorrowingEvent(model.BorrowingEvent{
		EventID:     uuid.NewString(),
		Action:      model.EventReturned,
		BorrowingID: borrowingID,
		CopyID:      copyID,
		Email:       rec.Email,
		At:          time.Now().UTC(),
	})
	return nil
}
