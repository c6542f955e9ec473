package repository

import (
	"blogly/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type tagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) TagRepository {
	return &tagRepository{db: db}
}

// Create не проверяет имя заранее: дубликат или NULL
// упадёт на ограничении в БД
func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	query := `
		INSERT INTO tags (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.GetContext(ctx, &tag.ID, query, tag.Name)
	if err != nil {
		return fmt.Errorf("ошибка при создании тега: %w", err)
	}

	return nil
}

func (r *tagRepository) GetByID(ctx context.Context, tagID int64) (*models.Tag, error) {
	var tag models.Tag

	query := `SELECT * FROM tags WHERE id = $1`

	err := r.db.GetContext(ctx, &tag, query, tagID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("тег с ID %d: %w", tagID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении тега: %w", err)
	}

	return &tag, nil
}

func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag

	query := `SELECT * FROM tags ORDER BY id`

	err := r.db.SelectContext(ctx, &tags, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка тегов: %w", err)
	}

	return tags, nil
}

func (r *tagRepository) GetPostsByTagID(ctx context.Context, tagID int64) ([]models.Post, error) {
	var posts []models.Post

	query := `
		SELECT p.* FROM posts p
		JOIN posttags pt ON pt.post_id = p.id
		WHERE pt.tag_id = $1
		ORDER BY p.id
	`

	err := r.db.SelectContext(ctx, &posts, query, tagID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов тега: %w", err)
	}

	return posts, nil
}

func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	query := `
		UPDATE tags
		SET name = :name
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, tag)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении тега: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("тег с ID %d: %w", tag.ID, ErrNotFound)
	}

	return nil
}

func (r *tagRepository) Delete(ctx context.Context, tagID int64) error {
	query := `DELETE FROM tags WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, tagID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении тега: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("тег с ID %d: %w", tagID, ErrNotFound)
	}

	return nil
}
