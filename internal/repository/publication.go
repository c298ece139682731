package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/liris-lib/library-service/internal/errs"
	"github.com/liris-lib/library-service/internal/model"
)

func (r *repository) ListPublications(ctx context.Context, filter model.PublicationFilter) ([]model.Publication, int, error) {
	q := qb.Select(
		"p.id_publication",
		"p.title",
		"p.year_publication",
		"p.publication_type",
		"p.edition",
		"pub.name as publisher_name",
		"string_agg(distinct a.name, ', ') as authors",
	).
		From(pubTableName + " p").
		LeftJoin("library.publisher pub on p.id_publisher = pub.id_publisher").
		LeftJoin("library.publication_author pa on p.id_publication = pa.id_publication").
		LeftJoin("library.author a on pa.id_author = a.id_author").
		LeftJoin(copyTableName + " pc on p.id_publication = pc.id_publication")

	q = applyPublicationFilter(q, filter).
		GroupBy("p.id_publication", "p.title", "p.year_publication", "p.publication_type", "p.edition", "pub.name").
		OrderBy("p.title").
		Limit(uint64(filter.PerPage)).
		Offset(uint64((filter.Page - 1) * filter.PerPage))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, 0, err
	}
	r.log.Debug("ListPublications", zap.String("query", query), zap.Any("args", args))

	pubs := make([]model.Publication, 0)
	if err := r.db.SelectContext(ctx, &pubs, query, args...); err != nil {
		return nil, 0, err
	}

	cq := applyPublicationFilter(
		qb.Select("count(distinct p.id_publication)").
			From(pubTableName+" p").
			LeftJoin(copyTableName+" pc on p.id_publication = pc.id_publication"),
		filter,
	)
	countQuery, countArgs, err := cq.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return pubs, total, nil
}

func applyPublicationFilter(q sq.SelectBuilder, filter model.PublicationFilter) sq.SelectBuilder {
	if filter.Search != "" {
		q = q.Where("lower(p.title) like lower(?)", "%"+filter.Search+"%")
	}
	if filter.Type != "" {
		q = q.Where(sq.Eq{"p.publication_type": filter.Type})
	}
	if filter.LabID != nil {
		q = q.Where(sq.Eq{"pc.id_lab": *filter.LabID})
	}
	if filter.Available {
		q = q.Where(sq.Eq{"pc.status": model.CopyOnRack})
	}
	return q
}

func (r *repository) GetPublication(ctx context.Context, id int) (model.PublicationDetail, error) {
	q := `
	select
	    p.id_publication, p.title, p.year_publication, p.publication_type, p.edition,
	    pub.name as publisher_name,
	    rb.isbn,
	    per.volume_number,
	    ir.identification_number,
	    ir.report_type
	from library.publication p
	left join library.publisher pub on p.id_publisher = pub.id_publisher
	left join library.regular_book rb on p.id_publication = rb.id_publication
	left join library.periodic per on p.id_publication = per.id_publication
	left join library.internal_report ir on p.id_publication = ir.id_publication
	where p.id_publication = $1`

	var pub model.PublicationDetail
	if err := r.db.GetContext(ctx, &pub, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.PublicationDetail{}, errs.ErrNotFound
		}
		return model.PublicationDetail{}, err
	}

	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		q := `
		select a.name, a.email
		from library.author a
		join library.publication_author pa on a.id_author = pa.id_author
		where pa.id_publication = $1
		order by pa.author_order`
		pub.Authors = make([]model.Author, 0)
		return r.db.SelectContext(gctx, &pub.Authors, q, id)
	})
	gg.Go(func() error {
		q := `
		select c.name
		from library.category c
		join library.book_category bc on c.id_category = bc.id_category
		where bc.id_publication = $1`
		pub.Categories = make([]string, 0)
		return r.db.SelectContext(gctx, &pub.Categories, q, id)
	})
	gg.Go(func() error {
		q := `
		select k.word
		from library.keyword k
		join library.publication_keyword pk on k.id_keyword = pk.id_keyword
		where pk.id_publication = $1`
		pub.Keywords = make([]string, 0)
		return r.db.SelectContext(gctx, &pub.Keywords, q, id)
	})
	gg.Go(func() error {
		q := `
		select
		    pc.id_copy,
		    l.name as lab_name,
		    pc.status,
		    pc.purchase_price,
		    pc.currency,
		    b.name as bookshop_name
		from library.publication_copy pc
		join library.lab l on pc.id_lab = l.id_lab
		left join library.bookshop b on pc.id_bookshop = b.id_bookshop
		where pc.id_publication = $1
		order by pc.id_copy`
		pub.Copies = make([]model.CopyDetail, 0)
		return r.db.SelectContext(gctx, &pub.Copies, q, id)
	})
	if err := gg.Wait(); err != nil {
		return model.PublicationDetail{}, err
	}

	return pub, nil
}
