package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/liris-lib/library-service/internal/errs"
	"github.com/liris-lib/library-service/internal/model"
	"github.com/liris-lib/library-service/internal/service"
	"github.com/liris-lib/library-service/pkg/auth"

	repo_mocks "github.com/liris-lib/library-service/internal/repository/mocks"
)

var (
	bob = auth.Identity{Email: "bob@liris.fr", Name: "Bob", Role: auth.RoleUser}
	adm = auth.Identity{Email: "admin@liris.fr", Name: "Root", Role: auth.RoleAdmin}
)

func newTestService(t *testing.T) (*service.Service, *repo_mocks.MockRepository) {
	t.Helper()
	repo := repo_mocks.NewMockRepository(gomock.NewController(t))
	return service.NewService(repo, service.NewEnqueuer(nil), zap.NewNop()), repo
}

func TestService_CreateBorrowing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req := model.CreateBorrowingRequest{PublicationID: 3, LabID: 1}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		due := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().
			CanBorrow(ctx, bob.Email, req.PublicationID).
			Return(model.CanBorrow{CanBorrow: true, Reason: "OK"}, nil)
		repo.EXPECT().
			CreateBorrowing(ctx, bob.Email, req.PublicationID, req.LabID).
			Return(42, 7, due, nil)

		resp, err := svc.CreateBorrowing(ctx, bob, req)
		require.NoError(t, err)
		require.Equal(t, model.CreateBorrowingResponse{
			Message:     "Book borrowed successfully",
			BorrowingID: 42,
			DueDate:     "2026-09-13",
		}, resp)
	})

	t.Run("veto short-circuits creation", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		// CreateBorrowing must never be reached on a veto.
		repo.EXPECT().
			CanBorrow(ctx, bob.Email, req.PublicationID).
			Return(model.CanBorrow{CanBorrow: false, Reason: "User has no access to a lab holding this publication"}, nil)

		_, err := svc.CreateBorrowing(ctx, bob, req)
		var veto *errs.BorrowVeto
		require.ErrorAs(t, err, &veto)
		require.Equal(t, "User has no access to a lab holding this publication", veto.Reason)
	})

	t.Run("eligibility check error passthrough", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().
			CanBorrow(ctx, bob.Email, req.PublicationID).
			Return(model.CanBorrow{}, errors.New("db internal"))

		_, err := svc.CreateBorrowing(ctx, bob, req)
		require.EqualError(t, err, "db internal")
	})

	t.Run("no copy available passthrough", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().
			CanBorrow(ctx, bob.Email, req.PublicationID).
			Return(model.CanBorrow{CanBorrow: true, Reason: "OK"}, nil)
		repo.EXPECT().
			CreateBorrowing(ctx, bob.Email, req.PublicationID, req.LabID).
			Return(0, 0, time.Time{}, errs.ErrNoCopyAvailable)

		_, err := svc.CreateBorrowing(ctx, bob, req)
		require.ErrorIs(t, err, errs.ErrNoCopyAvailable)
	})
}

func TestService_ReturnBorrowing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	open := model.BorrowingRecord{IDBorrowing: 42, IDCopy: 7, Email: bob.Email}

	t.Run("owner closes own loan", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetOpenBorrowing(ctx, 42).Return(open, nil)
		repo.EXPECT().CloseBorrowing(ctx, 42).Return(7, nil)

		require.NoError(t, svc.ReturnBorrowing(ctx, bob, 42))
	})

	t.Run("admin closes another user's loan", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetOpenBorrowing(ctx, 42).Return(open, nil)
		repo.EXPECT().CloseBorrowing(ctx, 42).Return(7, nil)

		require.NoError(t, svc.ReturnBorrowing(ctx, adm, 42))
	})

	t.Run("non-owner non-admin forbidden", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		alice := auth.Identity{Email: "alice@liris.fr", Name: "Alice", Role: auth.RoleUser}
		// CloseBorrowing must never be reached for a stranger's loan.
		repo.EXPECT().GetOpenBorrowing(ctx, 42).Return(open, nil)

		require.ErrorIs(t, svc.ReturnBorrowing(ctx, alice, 42), errs.ErrForbidden)
	})

	t.Run("already returned passthrough", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().
			GetOpenBorrowing(ctx, 42).
			Return(model.BorrowingRecord{}, errs.ErrAlreadyReturned)

		require.ErrorIs(t, svc.ReturnBorrowing(ctx, bob, 42), errs.ErrAlreadyReturned)
	})
}

func TestService_ListBorrowings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("plain user sees own history only", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().
			ListBorrowings(ctx, bob.Email, false).
			Return([]model.Borrowing{}, nil)

		_, err := svc.ListBorrowings(ctx, bob)
		require.NoError(t, err)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().
			ListBorrowings(ctx, adm.Email, true).
			Return([]model.Borrowing{}, nil)

		_, err := svc.ListBorrowings(ctx, adm)
		require.NoError(t, err)
	})
}
