package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/jdkim-dev/boardgo/internal/models"
)

// SeedBoards populates the board with starter posts.
// Idempotent: skips if any post already exists.
func SeedBoards(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Board{}).Where("is_deleted = ?", false).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info().Msg("seed data already exists, skipping")
		return nil
	}

	boards := []models.Board{
		{Title: "Getting started with the board", Content: "Welcome! This post walks through creating an account with Google sign-in and writing your first post.", Writer: "admin", Tag: "intro"},
		{Title: "ORM mapping basics", Content: "Notes on mapping structs to relational tables, and where the object model and the schema disagree.", Writer: "user1", Tag: "orm"},
		{Title: "REST API design principles", Content: "A short list of conventions that keep an HTTP API predictable: nouns for resources, status codes over error strings, pagination envelopes.", Writer: "admin", Tag: "api"},
		{Title: "Tuning slow queries", Content: "Indexes, query plans and when denormalization pays off. Collected from a week of profiling the reply listing.", Writer: "user2", Tag: "db"},
		{Title: "Branching strategies compared", Content: "Trunk-based versus long-lived feature branches, and what our release cadence actually needs.", Writer: "user1", Tag: "git"},
		{Title: "Container deployment notes", Content: "Building a small image for this service and keeping dev and prod environments consistent.", Writer: "admin", Tag: "docker"},
		{Title: "Iterators and streams", Content: "Patterns for processing collections lazily without loading everything into memory at once.", Writer: "user3", Tag: "lang"},
		{Title: "Writing useful tests", Content: "Unit tests that document behavior beat tests that chase coverage. Examples from the token codec suite.", Writer: "user2", Tag: "test"},
		{Title: "Session security checklist", Content: "Cookie flags, token expiry, and what actually stops a replayed credential.", Writer: "admin", Tag: "security"},
		{Title: "Connecting a frontend", Content: "Wiring a browser client to the JSON API: auth header versus cookie, CORS, and error handling.", Writer: "user1", Tag: "frontend"},
	}

	if err := db.Create(&boards).Error; err != nil {
		return err
	}

	log.Info().Int("count", len(boards)).Msg("seeded board posts")
	return nil
}
