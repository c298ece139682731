package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/liris-lib/library-service/internal/errs"
	"github.com/liris-lib/library-service/internal/model"
)

const borrowDays = 14

// ListBorrowings returns the full history with borrower identity for
// admins, and the caller's own history without it otherwise.
func (r *repository) ListBorrowings(ctx context.Context, email string, all bool) ([]model.Borrowing, error) {
	const allQ = `
	select
	    b.id_borrowing,
	    b.borrow_date,
	    b.due_date,
	    b.return_date,
	    lu.email,
	    lu.name as user_name,
	    p.title,
	    l.name as lab_name
	from library.borrowing b
	join library.publication_copy pc on b.id_copy = pc.id_copy
	join library.publication p on pc.id_publication = p.id_publication
	join library.lab l on pc.id_lab = l.id_lab
	join library.library_user lu on b.email = lu.email
	order by b.borrow_date desc, b.id_borrowing desc`

	const ownQ = `
	select
	    b.id_borrowing,
	    b.borrow_date,
	    b.due_date,
	    b.return_date,
	    p.title,
	    l.name as lab_name
	from library.borrowing b
	join library.publication_copy pc on b.id_copy = pc.id_copy
	join library.publication p on pc.id_publication = p.id_publication
	join library.lab l on pc.id_lab = l.id_lab
	where b.email = $1
	order by b.borrow_date desc, b.id_borrowing desc`

	items := make([]model.Borrowing, 0)
	if all {
		if err := r.db.SelectContext(ctx, &items, allQ); err != nil {
			return nil, err
		}
		return items, nil
	}
	if err := r.db.SelectContext(ctx, &items, ownQ, email); err != nil {
		return nil, err
	}
	return items, nil
}

// CanBorrow invokes the eligibility function owned by the database.
func (r *repository) CanBorrow(ctx context.Context, email string, publicationID int) (model.CanBorrow, error) {
	q := `select * from library.can_user_borrow_publication($1, $2)`

	var res model.CanBorrow
	if err := r.db.GetContext(ctx, &res, q, email, publicationID); err != nil {
		return model.CanBorrow{}, err
	}
	return res, nil
}

// CreateBorrowing picks an on_rack copy of the publication in the lab,
// opens the borrowing and flips the copy to issued_to in one transaction.
// The row lock on the copy serializes concurrent requests for the last
// available copy; the partial unique index on open borrowings backstops it.
func (r *repository) CreateBorrowing(ctx context.Context, email string, publicationID, labID int) (int, int, time.Time, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, 0, time.Time{}, errors.Wrap(err, "begin")
	}
	defer tx.Rollback() //nolint:errcheck

	var copyID int
	selectCopy := `
	select id_copy
	from library.publication_copy
	where id_publication = $1 and id_lab = $2 and status = 'on_rack'
	limit 1
	for update skip locked`
	if err := tx.QueryRowContext(ctx, selectCopy, publicationID, labID).Scan(&copyID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, time.Time{}, errs.ErrNoCopyAvailable
		}
		return 0, 0, time.Time{}, err
	}

	var (
		borrowingID int
		dueDate     time.Time
	)
	insert := `
	insert into library.borrowing (id_copy, email, borrow_date, due_date)
	values ($1, $2, current_date, current_date + $3::int)
	returning id_borrowing, due_date`
	if err := tx.QueryRowContext(ctx, insert, copyID, email, borrowDays).Scan(&borrowingID, &dueDate); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return 0, 0, time.Time{}, errs.ErrNoCopyAvailable
			case pgerrcode.ForeignKeyViolation:
				return 0, 0, time.Time{}, errs.ErrNotFound
			}
		}
		r.log.Error("CreateBorrowing insert", zap.Int("copy", copyID), zap.Error(err))
		return 0, 0, time.Time{}, err
	}

	issue := `update library.publication_copy set status = 'issued_to' where id_copy = $1`
	if _, err := tx.ExecContext(ctx, issue, copyID); err != nil {
		return 0, 0, time.Time{}, err
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, time.Time{}, errors.Wrap(err, "commit")
	}
	return borrowingID, copyID, dueDate, nil
}

func (r *repository) GetOpenBorrowing(ctx context.Context, id int) (model.BorrowingRecord, error) {
	q := `
	select id_borrowing, id_copy, email, borrow_date, due_date, return_date
	from library.borrowing
	where id_borrowing = $1 and return_date is null`

	var rec model.BorrowingRecord
	if err := r.db.GetContext(ctx, &rec, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowingRecord{}, errs.ErrAlreadyReturned
		}
		return model.BorrowingRecord{}, err
	}
	return rec, nil
}

// CloseBorrowing sets the return date and frees the copy. The update is
// conditional on the borrowing still being open, so a second return
// reports not-found instead of silently rewriting the date.
func (r *repository) CloseBorrowing(ctx context.Context, id int) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "begin")
	}
	defer tx.Rollback() //nolint:errcheck

	var copyID int
	closeQ := `
	update library.borrowing
	set return_date = current_date
	where id_borrowing = $1 and return_date is null
	returning id_copy`
	if err := tx.QueryRowContext(ctx, closeQ, id).Scan(&copyID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.ErrAlreadyReturned
		}
		return 0, err
	}

	free := `update library.publication_copy set status = 'on_rack' where id_copy = $1 and status = 'issued_to'`
	if _, err := tx.ExecContext(ctx, free, copyID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit")
	}
	return copyID, nil
}

func (r *repository) ListOverdue(ctx context.Context) ([]model.OverdueBorrowing, error) {
	q := `
	select
	    b.id_borrowing,
	    lu.email,
	    lu.name,
	    p.title,
	    b.due_date,
	    current_date - b.due_date as days_overdue
	from library.borrowing b
	join library.publication_copy pc on b.id_copy = pc.id_copy
	join library.publication p on pc.id_publication = p.id_publication
	join library.library_user lu on b.email = lu.email
	where b.return_date is null and b.due_date < current_date
	order by days_overdue desc`

	items := make([]model.OverdueBorrowing, 0)
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

// AddTestBorrowings opens synthetic borrowings over random available
// copies for users with access to the owning lab.
func (r *repository) AddTestBorrowings(ctx context.Context, count int) (int, error) {
	q := `
	select pc.id_copy, lu.email
	from library.publication_copy pc
	join library.user_access ua on pc.id_lab = ua.id_lab
	join library.library_user lu on ua.email = lu.email
	where pc.status = 'on_rack'
	order by random()
	limit $1`

	type pick struct {
		IDCopy int    `db:"id_copy"`
		Email  string `db:"email"`
	}
	picks := make([]pick, 0, count)
	if err := r.db.SelectContext(ctx, &picks, q, count); err != nil {
		return 0, err
	}

	added := 0
	for _, p := range picks {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return added, errors.Wrap(err, "begin")
		}
		insert := `
		insert into library.borrowing (id_copy, email, borrow_date, due_date)
		values ($1, $2, current_date, current_date + $3::int)`
		if _, err := tx.ExecContext(ctx, insert, p.IDCopy, p.Email, borrowDays); err != nil {
			_ = tx.Rollback()
			r.log.Warn("AddTestBorrowings skip", zap.Int("copy", p.IDCopy), zap.Error(err))
			continue
		}
		issue := `update library.publication_copy set status = 'issued_to' where id_copy = $1`
		if _, err := tx.ExecContext(ctx, issue, p.IDCopy); err != nil {
			_ = tx.Rollback()
			continue
		}
		if err := tx.Commit(); err != nil {
			return added, errors.Wrap(err, "commit")
		}
		added++
	}
	return added, nil
}
