package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer starts a throwaway Postgres with the portal
// schema and returns a connected client plus a teardown func.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS authorized_users (
		phone VARCHAR(20) PRIMARY KEY
	);

	CREATE TABLE IF NOT EXISTS otp_codes (
		username VARCHAR(20) PRIMARY KEY,
		otp VARCHAR(6) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		expiry_time TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		state TEXT NOT NULL DEFAULT '',
		service_type TEXT NOT NULL DEFAULT '',
		plan TEXT NOT NULL DEFAULT '',
		additional_resources TEXT NOT NULL DEFAULT '',
		total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		discount DOUBLE PRECISION NOT NULL DEFAULT 0,
		pi_date TEXT NOT NULL DEFAULT '',
		invoice_date TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		gstin TEXT NOT NULL DEFAULT '',
		num_vms INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS vm_details (
		id BIGSERIAL PRIMARY KEY,
		hostname TEXT NOT NULL,
		core TEXT NOT NULL DEFAULT '',
		ram TEXT NOT NULL DEFAULT '',
		storage TEXT NOT NULL DEFAULT '',
		tariff_plan TEXT NOT NULL DEFAULT '',
		os TEXT NOT NULL DEFAULT '',
		private_ip TEXT NOT NULL DEFAULT '',
		public_ip TEXT NOT NULL DEFAULT '',
		password TEXT NOT NULL DEFAULT '',
		website_name TEXT NOT NULL DEFAULT '',
		contact_no TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS web_hosting_users (
		id BIGSERIAL PRIMARY KEY,
		user_name TEXT NOT NULL,
		hosting_type TEXT NOT NULL DEFAULT '',
		tariff_plan TEXT NOT NULL DEFAULT '',
		yearly_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		activation_date TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		contact_person TEXT NOT NULL DEFAULT ''
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}
