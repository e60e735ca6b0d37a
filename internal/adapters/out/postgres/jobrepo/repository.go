package jobrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobly/internal/adapters/out/postgres"
	"jobly/internal/core/domain/model/job"
	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/pkg/errs"
	"jobly/internal/pkg/sqlpatch"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	returning = `id, title, salary, equity::text AS equity, company_handle`

	uniqueViolation = "23505"
)

// Repository implements ports.JobRepository.
type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) *Repository {
	return &Repository{db: db}
}

// Create rejects a posting whose title, salary, equity and company all match
// an existing one, NULLs included. The jobs_posting_key constraint backs the
// check up against concurrent inserts.
func (r *Repository) Create(ctx context.Context, j *job.Job) (*job.Job, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}
	row := fromDomain(j)

	var created jobRow
	err := postgres.InTx(ctx, r.db, func(tx pgx.Tx) error {
		var existing int64
		err := tx.QueryRow(ctx, `
			SELECT id
			FROM jobs
			WHERE title = $1
			  AND salary IS NOT DISTINCT FROM $2
			  AND equity IS NOT DISTINCT FROM $3
			  AND company_handle = $4`,
			row.Title, row.Salary, row.Equity, row.CompanyHandle,
		).Scan(&existing)
		switch {
		case err == nil:
			return errs.NewObjectAlreadyExistsError("job", row.duplicateKey())
		case !errors.Is(err, pgx.ErrNoRows):
			return err
		}

		rows, err := tx.Query(ctx, `
			INSERT INTO jobs (title, salary, equity, company_handle)
			VALUES ($1, $2, $3, $4)
			RETURNING `+returning,
			row.Title, row.Salary, row.Equity, row.CompanyHandle,
		)
		if err != nil {
			return err
		}
		created, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[jobRow])
		return err
	})
	if err != nil {
		return nil, classify("create job", err, row)
	}

	return toDomain(created)
}

// FindAll filters on a case-insensitive title substring, a salary floor and
// strictly positive equity, all optional and AND-ed, ordered by title.
func (r *Repository) FindAll(ctx context.Context, filter job.Filter) ([]*job.Job, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if filter.Title != "" {
		args = append(args, "%"+filter.Title+"%")
		where = append(where, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if filter.MinSalary != nil {
		args = append(args, *filter.MinSalary)
		where = append(where, fmt.Sprintf("salary >= $%d", len(args)))
	}
	if filter.HasEquity {
		where = append(where, "equity > 0")
	}

	query := `SELECT ` + returning + ` FROM jobs`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY title, id`

	return r.list(ctx, "find jobs", query, args...)
}

func (r *Repository) Get(ctx context.Context, id job.ID) (*job.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+returning+` FROM jobs WHERE id = $1`, int64(id))
	if err != nil {
		return nil, errs.NewStoreError("get job", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[jobRow])
	if err != nil {
		return nil, classifyByID("get job", err, id)
	}
	return toDomain(row)
}

// Update sets only the fields present in patch. An empty patch fails with
// errs.ErrEmptyUpdate before the store is touched.
func (r *Repository) Update(ctx context.Context, id job.ID, patch job.Patch) (*job.Job, error) {
	clause, err := sqlpatch.Build(patchFields(patch), sqlpatch.Identity)
	if err != nil {
		return nil, err
	}

	query := `UPDATE jobs SET ` + clause.Assignments +
		` WHERE id = ` + clause.NextPlaceholder() +
		` RETURNING ` + returning

	rows, err := r.db.Query(ctx, query, clause.Args(int64(id))...)
	if err != nil {
		return nil, errs.NewStoreError("update job", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[jobRow])
	if err != nil {
		return nil, classifyByID("update job", err, id)
	}
	return toDomain(row)
}

func (r *Repository) Delete(ctx context.Context, id job.ID) error {
	var deleted int64
	err := r.db.QueryRow(ctx, `DELETE FROM jobs WHERE id = $1 RETURNING id`, int64(id)).Scan(&deleted)
	if err != nil {
		return classifyByID("delete job", err, id)
	}
	return nil
}

func (r *Repository) ListByCompany(ctx context.Context, handle kernel.Handle) ([]*job.Job, error) {
	if err := handle.Validate(); err != nil {
		return nil, err
	}
	return r.list(ctx, "list company jobs",
		`SELECT `+returning+` FROM jobs WHERE company_handle = $1 ORDER BY id`,
		handle.String(),
	)
}

func (r *Repository) list(ctx context.Context, op, query string, args ...any) ([]*job.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errs.NewStoreError(op, err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[jobRow])
	if err != nil {
		return nil, errs.NewStoreError(op, err)
	}
	return toDomainList(found)
}

// classify keeps errs kinds as they are and turns a unique violation into a
// duplicate. Anything else is a store failure.
func classify(op string, err error, row jobRow) error {
	var existsErr *errs.ObjectAlreadyExistsError
	if errors.As(err, &existsErr) {
		return existsErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewObjectAlreadyExistsErrorWithCause("job", row.duplicateKey(), err)
	}

	return errs.NewStoreError(op, err)
}

func classifyByID(op string, err error, id job.ID) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewObjectNotFoundError("id", int64(id))
	}
	return errs.NewStoreError(op, err)
}
