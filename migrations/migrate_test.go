// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the DB itself, no expectations needed

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

// The likes table is born in 00002 next to articles; a later migration may
// only alter it. A second CREATE TABLE IF NOT EXISTS would silently skip,
// leaving the (article_id, user_id) unique key missing.
func TestMigrations_LikesUniqueKeyIsAltered(t *testing.T) {
	data, err := embedMigrations.ReadFile("00006_add_likes_unique_key.sql")
	if err != nil {
		t.Fatalf("likes unique key migration missing: %v", err)
	}

	sqlText := string(data)
	if strings.Contains(sqlText, "CREATE TABLE") {
		t.Fatal("00006 must alter the existing likes table, not re-create it")
	}
	if !strings.Contains(sqlText, "ADD CONSTRAINT likes_article_user_key UNIQUE (article_id, user_id)") {
		t.Fatal("00006 must add the (article_id, user_id) unique key")
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}
