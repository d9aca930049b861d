package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// ReferenceRepository implements port.ReferenceRepository over the
// clients and campaigns tables.
type ReferenceRepository struct {
	pool *pgxpool.Pool
}

// NewReferenceRepository returns a new repository instance.
func NewReferenceRepository(pool *pgxpool.Pool) *ReferenceRepository {
	return &ReferenceRepository{pool: pool}
}

func (r *ReferenceRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, logo, industry, status FROM clients ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanClient)
}

// GetClient returns a client by id.
func (r *ReferenceRepository) GetClient(ctx context.Context, id string) (domain.Client, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, logo, industry, status FROM clients WHERE id = $1`, id)
	if err != nil {
		return domain.Client{}, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanClient)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Client{}, port.ErrNotFound
	}
	return c, err
}

func (r *ReferenceRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, client_id, name, platform, status, budget FROM campaigns ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// GetCampaign returns a campaign by id.
func (r *ReferenceRepository) GetCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, client_id, name, platform, status, budget FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, port.ErrNotFound
	}
	return c, err
}

// UpdateCampaign applies the non-nil fields of upd.
func (r *ReferenceRepository) UpdateCampaign(ctx context.Context, id string, upd domain.CampaignUpdate) (domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        UPDATE campaigns SET
            name       = COALESCE($2, name),
            platform   = COALESCE($3, platform),
            status     = COALESCE($4, status),
            budget     = COALESCE($5, budget),
            updated_at = now()
        WHERE id = $1
        RETURNING id, client_id, name, platform, status, budget`,
		id, upd.Name, upd.Platform, upd.Status, upd.Budget)
	if err != nil {
		return domain.Campaign{}, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, port.ErrNotFound
	}
	return c, err
}

// Import inserts clients and campaigns that do not exist yet, in one
// transaction. Existing rows are left untouched.
func (r *ReferenceRepository) Import(ctx context.Context, clients []domain.Client, campaigns []domain.Campaign) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	for _, c := range clients {
		_, err = tx.Exec(ctx, `INSERT INTO clients (id, name, logo, industry, status)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`, c.ID, c.Name, c.Logo, c.Industry, c.Status)
		if err != nil {
			return err
		}
	}
	for _, c := range campaigns {
		_, err = tx.Exec(ctx, `INSERT INTO campaigns (id, client_id, name, platform, status, budget)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`, c.ID, c.ClientID, c.Name, c.Platform, c.Status, c.Budget)
		if err != nil {
			return err
		}
	}
	return nil
}

func scanClient(row pgx.CollectableRow) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Name, &c.Logo, &c.Industry, &c.Status)
	return c, err
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.ClientID, &c.Name, &c.Platform, &c.Status, &c.Budget)
	return c, err
}
