package campsite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	repoer interface {
		Create(ctx context.Context, in CampsiteIn) (*Campsite, error)
		GetByID(ctx context.Context, id int64) (*Campsite, error)
		List(ctx context.Context, query ListQuery) ([]Campsite, error)
		Update(ctx context.Context, id int64, in CampsiteIn) (*Campsite, error)
		Delete(ctx context.Context, id int64) error
	}

	repo struct {
		pool *pgxpool.Pool
	}
)

func NewRepo(pool *pgxpool.Pool) repoer {
	return &repo{pool: pool}
}

const campsiteColumns = "id, name, description, location, prefecture, price_min, price_max, pet_friendly, tags"

// scanCampsite reads one row and splits the stored tags string back into a slice.
func scanCampsite(row pgx.Row) (*Campsite, error) {
	var (
		c    Campsite
		tags string
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Location,
		&c.Prefecture,
		&c.PriceMin,
		&c.PriceMax,
		&c.PetFriendly,
		&tags,
	)
	if err != nil {
		return nil, err
	}
	c.Tags = splitTags(tags)
	return &c, nil
}

func (r *repo) Create(ctx context.Context, in CampsiteIn) (*Campsite, error) {
	stmt := fmt.Sprintf(`
	INSERT INTO campsites (
		name, description, location, prefecture, price_min, price_max, pet_friendly, tags
	)
	VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8
	)
	RETURNING %s`, campsiteColumns)

	row := r.pool.QueryRow(
		ctx,
		stmt,
		in.Name,
		in.Description,
		in.Location,
		in.Prefecture,
		in.PriceMin,
		in.PriceMax,
		in.PetFriendly,
		joinTags(in.Tags),
	)
	return scanCampsite(row)
}

func (r *repo) GetByID(ctx context.Context, id int64) (*Campsite, error) {
	stmt := fmt.Sprintf(`
	SELECT %s
	FROM campsites
	WHERE id = $1`, campsiteColumns)

	c, err := scanCampsite(r.pool.QueryRow(ctx, stmt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCampsiteNotFound
		}
		return nil, err
	}
	return c, nil
}

// List retrieves listings matching the optional filters. Filters are
// conjunctive: keyword is a case-sensitive substring match on name,
// prefecture is an exact match, pet_friendly an exact boolean match.
// Results come back in insertion order.
func (r *repo) List(ctx context.Context, query ListQuery) ([]Campsite, error) {
	// Build dynamic WHERE clause from the provided filters
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if query.Keyword != "" {
		conditions = append(conditions, fmt.Sprintf("name LIKE '%%' || $%d || '%%'", argIndex))
		args = append(args, query.Keyword)
		argIndex++
	}
	if query.Prefecture != "" {
		conditions = append(conditions, fmt.Sprintf("prefecture = $%d", argIndex))
		args = append(args, query.Prefecture)
		argIndex++
	}
	if query.PetFriendly != nil {
		conditions = append(conditions, fmt.Sprintf("pet_friendly = $%d", argIndex))
		args = append(args, *query.PetFriendly)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	stmt := fmt.Sprintf(`
	SELECT %s
	FROM campsites
	%s
	ORDER BY id`, campsiteColumns, whereClause)

	rows, err := r.pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campsites := []Campsite{}
	for rows.Next() {
		c, err := scanCampsite(rows)
		if err != nil {
			return nil, err
		}
		campsites = append(campsites, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return campsites, nil
}

// Update replaces the whole record; every column is overwritten from the input.
func (r *repo) Update(ctx context.Context, id int64, in CampsiteIn) (*Campsite, error) {
	stmt := fmt.Sprintf(`
	UPDATE campsites
	SET name = $2,
		description = $3,
		location = $4,
		prefecture = $5,
		price_min = $6,
		price_max = $7,
		pet_friendly = $8,
		tags = $9
	WHERE id = $1
	RETURNING %s`, campsiteColumns)

	row := r.pool.QueryRow(
		ctx,
		stmt,
		id,
		in.Name,
		in.Description,
		in.Location,
		in.Prefecture,
		in.PriceMin,
		in.PriceMax,
		in.PetFriendly,
		joinTags(in.Tags),
	)

	c, err := scanCampsite(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCampsiteNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	stmt := `DELETE FROM campsites WHERE id = $1`

	result, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrCampsiteNotFound
	}

	return nil
}
