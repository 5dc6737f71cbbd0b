// internal/content/model.go
//
// Content table row models.
//
// Context
// -------
// The reference host keeps its content in four small tables.  The structs
// below mirror one row each and carry no behaviour; they are pure data
// models for sqlx scans.
//
// Schema reference
//
//	CREATE TABLE post (
//	    id            INT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    post_type     VARCHAR(32)   NOT NULL DEFAULT 'post',
//	    slug          VARCHAR(200)  NOT NULL,
//	    author        VARCHAR(250)  NOT NULL DEFAULT '',
//	    comment_count INT UNSIGNED  NOT NULL DEFAULT 0,
//	    published_at  TIMESTAMP     NOT NULL,
//	    deleted_at    TIMESTAMP NULL,
//	    UNIQUE KEY (post_type, slug)
//	);
//
//	CREATE TABLE taxonomy (
//	    name       VARCHAR(32) NOT NULL,
//	    post_type  VARCHAR(32) NOT NULL,
//	    position   INT         NOT NULL DEFAULT 0,
//	    PRIMARY KEY (name, post_type)
//	);
//
//	CREATE TABLE term (
//	    id        INT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    taxonomy  VARCHAR(32)  NOT NULL,
//	    slug      VARCHAR(200) NOT NULL,
//	    name      VARCHAR(200) NOT NULL
//	);
//
//	CREATE TABLE post_term (
//	    post_id   INT UNSIGNED NOT NULL,
//	    term_id   INT UNSIGNED NOT NULL,
//	    position  INT          NOT NULL DEFAULT 0,
//	    PRIMARY KEY (post_id, term_id)
//	);
//
// Notes
// -----
// • `DeletedAt` is nullable; deleted rows are filtered at SQL level.
// • Oxford commas, two spaces after periods.
package content

import "time"

// Post mirrors one row in the `post` table.
type Post struct {
	ID           uint64     `db:"id"`
	Type         string     `db:"post_type"`
	Slug         string     `db:"slug"`
	Author       string     `db:"author"`
	CommentCount int        `db:"comment_count"`
	PublishedAt  time.Time  `db:"published_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

// Term mirrors one row in the `term` table.  Only Slug is read by the
// analytics core.
type Term struct {
	ID       uint64 `db:"id"`
	Taxonomy string `db:"taxonomy"`
	Slug     string `db:"slug"`
	Name     string `db:"name"`
}
