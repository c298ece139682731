package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/liris-lib/library-service/internal/errs"
	"github.com/liris-lib/library-service/internal/model"
)

func (r *repository) ListProposals(ctx context.Context, email string, all bool) ([]model.Proposal, error) {
	q := `
	select
	    pp.id_proposal, pp.email, pp.title, pp.publication_type, pp.details,
	    pp.status, pp.date_proposal, pp.reviewed_by, pp.reviewed_at,
	    lu.name as submitted_by_name
	from library.proposed_publication pp
	left join library.library_user lu on pp.email = lu.email`

	args := make([]any, 0, 1)
	if !all {
		q += `
	where pp.email = $1`
		args = append(args, email)
	}
	q += `
	order by pp.date_proposal desc`

	proposals := make([]model.Proposal, 0)
	if err := r.db.SelectContext(ctx, &proposals, q, args...); err != nil {
		return nil, err
	}
	return proposals, nil
}

func (r *repository) CreateProposal(ctx context.Context, email string, req model.CreateProposalRequest) (int, time.Time, error) {
	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}
	details, err := json.Marshal(model.ProposalDetails{
		Authors:        req.Authors,
		Publisher:      req.Publisher,
		Year:           req.Year,
		EstimatedPrice: req.EstimatedPrice,
		Currency:       currency,
		Justification:  req.Justification,
	})
	if err != nil {
		return 0, time.Time{}, err
	}

	q := `
	insert into library.proposed_publication (email, title, publication_type, details, status)
	values ($1, $2, $3, $4, 'pending')
	returning id_proposal, date_proposal`

	var (
		id   int
		date time.Time
	)
	if err := r.db.QueryRowContext(ctx, q, email, req.Title, req.PublicationType, details).Scan(&id, &date); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return 0, time.Time{}, errs.ErrNotFound
		}
		r.log.Error("CreateProposal", zap.String("email", email), zap.Error(err))
		return 0, time.Time{}, err
	}
	return id, date, nil
}

func (r *repository) UpdateProposal(ctx context.Context, id int, status model.ProposalStatus, reviewer string) error {
	q := `
	update library.proposed_publication
	set status = $1,
	    reviewed_by = $2,
	    reviewed_at = current_timestamp
	where id_proposal = $3`

	res, err := r.db.ExecContext(ctx, q, status, reviewer, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
