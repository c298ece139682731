package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/liris-lib/library-service/internal/model"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock.go -package=repo_mocks

type Repository interface {
	GetActiveUser(ctx context.Context, email string) (model.User, error)
	GetUser(ctx context.Context, email string) (model.User, error)
	GetUserLabs(ctx context.Context, email string) ([]model.Lab, error)
	ListUsers(ctx context.Context) ([]model.UserSummary, error)
	ListLabs(ctx context.Context) ([]model.LabSummary, error)

	ListPublications(ctx context.Context, filter model.PublicationFilter) ([]model.Publication, int, error)
	GetPublication(ctx context.Context, id int) (model.PublicationDetail, error)

	ListBorrowings(ctx context.Context, email string, all bool) ([]model.Borrowing, error)
	CanBorrow(ctx context.Context, email string, publicationID int) (model.CanBorrow, error)
	CreateBorrowing(ctx context.Context, email string, publicationID, labID int) (int, int, time.Time, error)
	GetOpenBorrowing(ctx context.Context, id int) (model.BorrowingRecord, error)
	CloseBorrowing(ctx context.Context, id int) (int, error)

	ListProposals(ctx context.Context, email string, all bool) ([]model.Proposal, error)
	CreateProposal(ctx context.Context, email string, req model.CreateProposalRequest) (int, time.Time, error)
	UpdateProposal(ctx context.Context, id int, status model.ProposalStatus, reviewer string) error

	AllUniquePublications(ctx context.Context) ([]model.UniquePublication, error)
	UserBorrowedPublications(ctx context.Context, email string, labID *int) ([]model.UserBorrowedPublication, error)
	LabValue(ctx context.Context, labID int) (model.LabValue, error)
	LostBooks(ctx context.Context) ([]model.LostBook, error)
	Statistics(ctx context.Context) (model.Statistics, error)

	ListOverdue(ctx context.Context) ([]model.OverdueBorrowing, error)
	AddTestBorrowings(ctx context.Context, count int) (int, error)
	CountRows(ctx context.Context, table string, where sq.Sqlizer) (int, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	userTableName      = `library.library_user`
	labTableName       = `library.lab`
	accessTableName    = `library.user_access`
	pubTableName       = `library.publication`
	copyTableName      = `library.publication_copy`
	borrowingTableName = `library.borrowing`
	proposalTableName  = `library.proposed_publication`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// CountRows counts rows of a table under an optional condition. Used by
// the admin CLI statistics fan-out.
func (r *repository) CountRows(ctx context.Context, table string, where sq.Sqlizer) (int, error) {
	q := qb.Select("count(*)").From(table)
	if where != nil {
		q = q.Where(where)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
