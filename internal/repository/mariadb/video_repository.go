package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/videovault/videos-ms-go/internal/db"
	"github.com/videovault/videos-ms-go/internal/model"
	"github.com/videovault/videos-ms-go/internal/port"
)

type VideoRepository struct {
	db *sql.DB
}

// compile-time check: *VideoRepository must satisfy port.VideoRepository
var _ port.VideoRepository = (*VideoRepository)(nil)

func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	log.Printf("creating database record for video #%s, object %q...", video.ID, video.PublicID)

	const query = `
      INSERT INTO videos
        (id, title, description, public_id, url, original_size, compressed_size, duration, user_id, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		video.ID, video.Title, video.Description,
		video.PublicID, video.URL,
		video.OriginalSize, video.CompressedSize, video.Duration,
		video.UserID, video.CreatedAt, video.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, ID db.UUID) (*model.Video, error) {
	log.Printf("fetching video #%s from the database...", ID)

	const query = `
      SELECT id, title, description, public_id, url, original_size, compressed_size, duration, user_id, created_at, updated_at
      FROM videos
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, ID)
	var video model.Video
	if err := row.Scan(
		&video.ID, &video.Title, &video.Description,
		&video.PublicID, &video.URL,
		&video.OriginalSize, &video.CompressedSize, &video.Duration,
		&video.UserID, &video.CreatedAt, &video.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &video, nil
}

func (r *VideoRepository) List(ctx context.Context) ([]model.Video, error) {
	log.Printf("listing videos from the database...")

	const query = `
      SELECT id, title, description, public_id, url, original_size, compressed_size, duration, user_id, created_at, updated_at
      FROM videos
      ORDER BY created_at DESC
    `
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var videos []model.Video
	for rows.Next() {
		var video model.Video
		if err := rows.Scan(
			&video.ID, &video.Title, &video.Description,
			&video.PublicID, &video.URL,
			&video.OriginalSize, &video.CompressedSize, &video.Duration,
			&video.UserID, &video.CreatedAt, &video.UpdatedAt,
		); err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return videos, nil
}

func (r *VideoRepository) Delete(ctx context.Context, ID db.UUID) error {
	log.Printf("deleting video #%s from the database...", ID)

	const query = `DELETE FROM videos WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, ID)
	if err != nil {
		return err
	}
	// delete-by-id is atomic at the store: a concurrent delete of the same id
	// simply finds no row here
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}

	return nil
}
