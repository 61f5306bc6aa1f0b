package db

import "database/sql"

// MigrateUp creates the schema if it does not exist. The comment foreign key
// is the storage-level backstop for referential integrity; the service layer
// performs its own existence check for a clean domain error.
func MigrateUp(database *sql.DB) error {
	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS article (
    id    BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    text  TEXT NOT NULL
)`); err != nil {
		return err
	}

	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS comment (
    id         BIGSERIAL PRIMARY KEY,
    text       TEXT NOT NULL,
    score      INTEGER NOT NULL CHECK (score BETWEEN 0 AND 5),
    article_id BIGINT NOT NULL REFERENCES article(id) ON DELETE CASCADE
)`); err != nil {
		return err
	}

	// Comments are always fetched by owning article.
	_, err := database.Exec(
		`CREATE INDEX IF NOT EXISTS idx_comment_article_id ON comment(article_id)`)
	return err
}
