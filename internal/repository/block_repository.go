package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Justcode790/UniSeat-backend/internal/models"
)

const blockColumns = `id, name, location, total_floors, created_at, updated_at`

// BlockRepository manages persistence for campus blocks.
type BlockRepository struct {
	db *sqlx.DB
}

// NewBlockRepository constructs a BlockRepository.
func NewBlockRepository(db *sqlx.DB) *BlockRepository {
	return &BlockRepository{db: db}
}

// List returns every block ordered by name.
func (r *BlockRepository) List(ctx context.Context) ([]models.Block, error) {
	query := `SELECT ` + blockColumns + ` FROM blocks ORDER BY name ASC, id ASC`
	var blocks []models.Block
	if err := r.db.SelectContext(ctx, &blocks, query); err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	return blocks, nil
}

// FindByID fetches a block by ID.
func (r *BlockRepository) FindByID(ctx context.Context, id string) (*models.Block, error) {
	query := `SELECT ` + blockColumns + ` FROM blocks WHERE id = $1`
	var block models.Block
	if err := r.db.GetContext(ctx, &block, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find block: %w", err)
	}
	return &block, nil
}

// Create inserts a new block.
func (r *BlockRepository) Create(ctx context.Context, block *models.Block) error {
	if block.ID == "" {
		block.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if block.CreatedAt.IsZero() {
		block.CreatedAt = now
	}
	block.UpdatedAt = now
	const query = `INSERT INTO blocks (id, name, location, total_floors, created_at, updated_at)
        VALUES (:id, :name, :location, :total_floors, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, block); err != nil {
		return fmt.Errorf("create block: %w", err)
	}
	return nil
}

// Update modifies an existing block.
func (r *BlockRepository) Update(ctx context.Context, block *models.Block) error {
	block.UpdatedAt = time.Now().UTC()
	const query = `UPDATE blocks SET name = :name, location = :location, total_floors = :total_floors, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, block); err != nil {
		return fmt.Errorf("update block: %w", err)
	}
	return nil
}

// Delete removes a block and, through cascading keys, its floors and classrooms.
// Blocks referenced by a stored seat plan yield ErrReferenced.
func (r *BlockRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "blocks", id)
}

func deleteByID(ctx context.Context, db *sqlx.DB, table, id string) error {
	res, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		if translated := translate(err); translated == ErrReferenced {
			return translated
		}
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
