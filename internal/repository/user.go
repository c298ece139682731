package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/liris-lib/library-service/internal/errs"
	"github.com/liris-lib/library-service/internal/model"
)

func (r *repository) GetActiveUser(ctx context.Context, email string) (model.User, error) {
	return r.getUser(ctx, email, true)
}

func (r *repository) GetUser(ctx context.Context, email string) (model.User, error) {
	return r.getUser(ctx, email, false)
}

func (r *repository) getUser(ctx context.Context, email string, onlyActive bool) (model.User, error) {
	q := qb.Select("email", "name", "active", "hashed_password").
		From(userTableName).
		Where(sq.Eq{"email": email})
	if onlyActive {
		q = q.Where(sq.Eq{"active": true})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) GetUserLabs(ctx context.Context, email string) ([]model.Lab, error) {
	q := `
	select l.id_lab, l.name
	from library.lab l
	join library.user_access ua on l.id_lab = ua.id_lab
	where ua.email = $1
	order by l.name`

	labs := make([]model.Lab, 0)
	if err := r.db.SelectContext(ctx, &labs, q, email); err != nil {
		return nil, err
	}
	return labs, nil
}

func (r *repository) ListUsers(ctx context.Context) ([]model.UserSummary, error) {
	q := `
	select
	    lu.email, lu.name, lu.active, lu.hashed_password,
	    count(distinct ua.id_lab) as lab_access_count,
	    count(distinct b.id_borrowing) filter (where b.return_date is null) as active_borrowings
	from library.library_user lu
	left join library.user_access ua on lu.email = ua.email
	left join library.borrowing b on lu.email = b.email
	group by lu.email
	order by lu.name`

	users := make([]model.UserSummary, 0)
	if err := r.db.SelectContext(ctx, &users, q); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) ListLabs(ctx context.Context) ([]model.LabSummary, error) {
	q := `
	select
	    l.id_lab, l.name,
	    count(distinct pc.id_copy) as total_copies,
	    count(distinct case when pc.status = 'on_rack' then pc.id_copy end) as available_copies
	from library.lab l
	left join library.publication_copy pc on l.id_lab = pc.id_lab
	group by l.id_lab
	order by l.name`

	labs := make([]model.LabSummary, 0)
	if err := r.db.SelectContext(ctx, &labs, q); err != nil {
		return nil, err
	}
	return labs, nil
}
