package handler

import (
	"context"
	"time"

	"github.com/liris-lib/library-service/internal/model"
	"github.com/liris-lib/library-service/pkg/auth"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=service_mocks

type LibraryService interface {
	Login(ctx context.Context, req model.LoginRequest) (model.SessionUser, error)
	CurrentUser(ctx context.Context, email string) (model.User, []model.Lab, error)
	ListUsers(ctx context.Context) ([]model.UserSummary, error)
	ListLabs(ctx context.Context) ([]model.LabSummary, error)

	ListPublications(ctx context.Context, filter model.PublicationFilter) (model.ListPublications, error)
	GetPublication(ctx context.Context, id int) (model.PublicationDetail, error)

	ListBorrowings(ctx context.Context, id auth.Identity) ([]model.Borrowing, error)
	CanBorrow(ctx context.Context, email string, publicationID int) (model.CanBorrow, error)
	CreateBorrowing(ctx context.Context, id auth.Identity, req model.CreateBorrowingRequest) (model.CreateBorrowingResponse, error)
	ReturnBorrowing(ctx context.Context, id auth.Identity, borrowingID int) error

	ListProposals(ctx context.Context, id auth.Identity) ([]model.Proposal, error)
	CreateProposal(ctx context.Context, id auth.Identity, req model.CreateProposalRequest) (int, time.Time, error)
	UpdateProposal(ctx context.Context, id auth.Identity, proposalID int, req model.UpdateProposalRequest) error

	AllUniquePublications(ctx context.Context) ([]model.UniquePublication, error)
	UserBorrowedPublications(ctx context.Context, email string, labID *int) ([]model.UserBorrowedPublication, error)
	LabValue(ctx context.Context, labID int) (model.LabValue, error)
	LostBooks(ctx context.Context) ([]model.LostBook, error)

	Statistics(ctx context.Context) (model.Statistics, error)
}
