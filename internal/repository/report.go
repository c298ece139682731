package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/liris-lib/library-service/internal/errs"
	"github.com/liris-lib/library-service/internal/model"
)

func (r *repository) AllUniquePublications(ctx context.Context) ([]model.UniquePublication, error) {
	q := `select * from library.all_unique_publications`

	items := make([]model.UniquePublication, 0)
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) UserBorrowedPublications(ctx context.Context, email string, labID *int) ([]model.UserBorrowedPublication, error) {
	items := make([]model.UserBorrowedPublication, 0)
	if labID != nil {
		q := `select * from library.get_user_borrowed_publications($1, $2)`
		if err := r.db.SelectContext(ctx, &items, q, email, *labID); err != nil {
			return nil, err
		}
		return items, nil
	}
	q := `select * from library.get_user_borrowed_publications($1)`
	if err := r.db.SelectContext(ctx, &items, q, email); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) LabValue(ctx context.Context, labID int) (model.LabValue, error) {
	q := `select * from library.get_lab_total_value_in_euro($1)`

	var value model.LabValue
	if err := r.db.GetContext(ctx, &value, q, labID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.LabValue{}, errs.ErrNotFound
		}
		return model.LabValue{}, err
	}
	return value, nil
}

func (r *repository) LostBooks(ctx context.Context) ([]model.LostBook, error) {
	q := `select * from library.lost_books_report`

	items := make([]model.LostBook, 0)
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Statistics(ctx context.Context) (model.Statistics, error) {
	q := `select * from library.library_statistics`

	var stats model.Statistics
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return model.Statistics{}, err
	}
	return stats, nil
}
