package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors package allows sentinel error definitions
	"strings"      // strings is used to classify MySQL error codes

	"github.com/talentflow/recruiting-crm/internal/model"
)

// ErrClientNotFound is returned when a client lookup fails.
var ErrClientNotFound = errors.New("client not found")

// ClientRepo provides CRUD operations for clients.  Clients own
// vacancies; a client with at least one vacancy cannot be deleted.
type ClientRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewClientRepo constructs a ClientRepo with the given DB handle.
func NewClientRepo(db *sql.DB) *ClientRepo { return &ClientRepo{db: db} }

// Create inserts a new client and populates the generated ID and
// created_at on the passed model.  A duplicate name yields ErrNameExists.
func (r *ClientRepo) Create(ctx context.Context, c *model.Client) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO clients (name) VALUES (?)`, c.Name)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrNameExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		`SELECT created_at FROM clients WHERE id = ?`, c.ID).Scan(&c.CreatedAt)
}

// GetByID returns a single client or ErrClientNotFound.
func (r *ClientRepo) GetByID(ctx context.Context, id uint64) (*model.Client, error) {
	var c model.Client
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM clients WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns all clients ordered by name.
func (r *ClientRepo) List(ctx context.Context) ([]model.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM clients ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Client, 0)
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateName renames a client.  It returns ErrClientNotFound when the id
// does not exist and ErrNameExists when the new name is already taken.
func (r *ClientRepo) UpdateName(ctx context.Context, id uint64, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE clients SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrNameExists
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either the id is missing or the name was unchanged; disambiguate.
		if _, gerr := r.GetByID(ctx, id); gerr != nil {
			return gerr
		}
	}
	return nil
}

// Delete removes a client by id.  A client referenced by any vacancy is
// protected: the delete is rejected with ErrConflict and the row is
// left intact.
func (r *ClientRepo) Delete(ctx context.Context, id uint64) error {
	var refs int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM vacancies WHERE client_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		// The FK may still fire if a vacancy was created between the
		// check and the delete.
		if strings.Contains(err.Error(), "1451") {
			return ErrConflict
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrClientNotFound
	}
	return nil
}
