package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"notequiz/internal/domain"
	"notequiz/internal/repository/models"
	"notequiz/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxNoteSetRepository implements domain.NoteSetRepository using sqlx.
type sqlxNoteSetRepository struct {
	db *sqlx.DB
}

// NewSQLXNoteSetRepository creates a new instance of sqlxNoteSetRepository.
func NewSQLXNoteSetRepository(db *sqlx.DB) domain.NoteSetRepository {
	return &sqlxNoteSetRepository{db: db}
}

func toDomainNoteSet(m *models.NoteSet) *domain.NoteSet {
	if m == nil {
		return nil
	}
	return &domain.NoteSet{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description.String,
		UserID:      m.UserID.String,
		CreatedAt:   m.CreatedAt,
	}
}

// CreateNoteSet inserts a new note set.
func (r *sqlxNoteSetRepository) CreateNoteSet(ctx context.Context, noteSet *domain.NoteSet) error {
	if noteSet.ID == "" {
		noteSet.ID = util.NewULID()
	}
	if noteSet.CreatedAt.IsZero() {
		noteSet.CreatedAt = time.Now()
	}

	query := `INSERT INTO note_sets (ID, NAME, DESCRIPTION, USER_ID, CREATED_AT)
	          VALUES (:1, :2, :3, :4, :5)`

	_, err := r.db.ExecContext(ctx, query,
		noteSet.ID,
		noteSet.Name,
		util.StringToNullString(noteSet.Description),
		util.StringToNullString(noteSet.UserID),
		noteSet.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create note set: %w", err)
	}
	return nil
}

// GetNoteSetByID retrieves a note set by ID. Returns (nil, nil) when absent.
func (r *sqlxNoteSetRepository) GetNoteSetByID(ctx context.Context, id string) (*domain.NoteSet, error) {
	query := `SELECT ID, NAME, DESCRIPTION, USER_ID, CREATED_AT, DELETED_AT
	          FROM note_sets WHERE ID = :1 AND DELETED_AT IS NULL`

	var row models.NoteSet
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get note set %s: %w", id, err)
	}
	return toDomainNoteSet(&row), nil
}
