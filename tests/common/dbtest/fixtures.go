//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both the pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestContact inserts a CRM contact the way the back office would.
func CreateTestContact(t *testing.T, db DBLike, c contract.Contact) uuid.UUID {
	t.Helper()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO contacts (id, name, email, street, postal_code, city) VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)",
		c.ID, c.Name, c.Email, c.Address.Street, c.Address.PostalCode, c.Address.City)
	require.NoError(t, err)

	return c.ID
}

// CreateTestVehicle inserts an inventory vehicle and, when present, its customer.
func CreateTestVehicle(t *testing.T, db DBLike, v contract.VehicleSnapshot) uuid.UUID {
	t.Helper()

	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	var customerID *uuid.UUID
	if v.Customer != nil {
		id := CreateTestContact(t, db, *v.Customer)
		customerID = &id
	}

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO vehicles (id, vin, license_plate, brand, model, color, year, mileage, selling_price, customer_id)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, 0), NULLIF($8, 0), $9, $10)`,
		v.ID, v.VIN, v.LicensePlate, v.Brand, v.Model, v.Color, int32(v.Year), v.Mileage, v.SellingPrice, customerID)
	require.NoError(t, err)

	return v.ID
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	err := db.QueryRow(context.Background(), query, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts reference data the migration seeds, which TRUNCATE removes
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	t := notification.DefaultSignatureRequest()
	_, err := pool.Exec(ctx, `
		INSERT INTO email_templates (key, name, subject, body) VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO NOTHING;
	`, t.Key(), t.Name(), t.Subject(), t.Body())
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
