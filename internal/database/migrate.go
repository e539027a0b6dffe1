package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/talentflow/recruiting-crm/internal/utils"
)

// schema holds the CREATE TABLE statements for every entity, ordered so
// that referenced tables exist before their dependents.  All statements
// are idempotent.  Foreign keys use RESTRICT so that deleting a client,
// recruiter or vacancy that is still referenced by an application fails
// at the store level as well as in the repository checks.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(190) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_clients_name (name)
	)`,
	`CREATE TABLE IF NOT EXISTS recruiters (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(190) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_recruiters_name (name)
	)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		full_name VARCHAR(190) NOT NULL,
		phone VARCHAR(64) NULL,
		email VARCHAR(190) NULL,
		notes TEXT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS vacancies (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		client_id BIGINT UNSIGNED NOT NULL,
		title VARCHAR(190) NOT NULL,
		fee_amount DOUBLE NOT NULL DEFAULT 0,
		city VARCHAR(120) NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_vacancies_client FOREIGN KEY (client_id)
			REFERENCES clients (id) ON DELETE RESTRICT
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		candidate_id BIGINT UNSIGNED NOT NULL,
		vacancy_id BIGINT UNSIGNED NOT NULL,
		recruiter_id BIGINT UNSIGNED NOT NULL,
		date_contacted DATE NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'new',
		rejection_date DATE NULL,
		start_date DATE NULL,
		paid TINYINT(1) NOT NULL DEFAULT 0,
		paid_date DATE NULL,
		payment_amount DOUBLE NOT NULL DEFAULT 0,
		is_replacement TINYINT(1) NOT NULL DEFAULT 0,
		replacement_of_id BIGINT UNSIGNED NULL,
		replacement_note TEXT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_applications_candidate FOREIGN KEY (candidate_id)
			REFERENCES candidates (id) ON DELETE RESTRICT,
		CONSTRAINT fk_applications_vacancy FOREIGN KEY (vacancy_id)
			REFERENCES vacancies (id) ON DELETE RESTRICT,
		CONSTRAINT fk_applications_recruiter FOREIGN KEY (recruiter_id)
			REFERENCES recruiters (id) ON DELETE RESTRICT,
		CONSTRAINT fk_applications_replacement FOREIGN KEY (replacement_of_id)
			REFERENCES applications (id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		application_id BIGINT UNSIGNED NOT NULL,
		paid_date DATE NOT NULL,
		amount DOUBLE NOT NULL,
		note VARCHAR(255) NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_payments_application FOREIGN KEY (application_id)
			REFERENCES applications (id) ON DELETE RESTRICT,
		KEY idx_payments_paid_date (paid_date)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(190) NOT NULL,
		password_hash VARCHAR(100) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'user',
		recruiter_id BIGINT UNSIGNED NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_username (username),
		CONSTRAINT fk_users_recruiter FOREIGN KEY (recruiter_id)
			REFERENCES recruiters (id) ON DELETE RESTRICT
	)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		revoked_at TIMESTAMP NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_refresh_tokens_hash (token_hash),
		CONSTRAINT fk_refresh_tokens_user FOREIGN KEY (user_id)
			REFERENCES users (id) ON DELETE CASCADE
	)`,
}

// Migrate creates all tables if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// SeedDemoData inserts a handful of demo rows when the store is empty:
// three clients, two recruiters, and one admin plus one regular user.
// It is a no-op when any client already exists, so restarting the server
// never duplicates data.  Intended for dev environments only.
func SeedDemoData(ctx context.Context, db *sql.DB, bcryptCost int) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range []string{"Client A", "Client B", "Client C"} {
		if _, err := db.ExecContext(ctx, `INSERT INTO clients (name) VALUES (?)`, name); err != nil {
			return err
		}
	}

	res, err := db.ExecContext(ctx, `INSERT INTO recruiters (name) VALUES (?)`, "Kim")
	if err != nil {
		return err
	}
	kimID, _ := res.LastInsertId()
	res, err = db.ExecContext(ctx, `INSERT INTO recruiters (name) VALUES (?)`, "Julia")
	if err != nil {
		return err
	}
	juliaID, _ := res.LastInsertId()
	_ = kimID // the admin account is deliberately not bound to a recruiter

	adminHash, err := utils.HashPassword("change-me-admin", bcryptCost)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, role) VALUES (?,?,?)`,
		"admin", adminHash, "admin"); err != nil {
		return err
	}

	userHash, err := utils.HashPassword("change-me-user", bcryptCost)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, role, recruiter_id) VALUES (?,?,?,?)`,
		"julia", userHash, "user", juliaID); err != nil {
		return err
	}

	log.Println("seeded demo clients, recruiters and users")
	return nil
}
