package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-rfid-launcher/internal/migrations"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/models"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, migrations.Up(ctx, db.DB))

	teardown := func() {
		db.Close()
		container.Terminate(ctx)
	}

	return db, teardown
}

func TestRFIDUserRepository_Postgres(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewRFIDUserReadRepository(db, nil)
	writeRepo := NewRFIDUserWriteRepository(db, nil)

	version, err := migrations.Version(ctx, db.DB)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	ana := models.RFIDUser{UID: "AB-12", Name: "Ana", ResourceLink: "https://open.spotify.com/track/abc123?x=1"}
	bia := models.RFIDUser{UID: "CD-34", Name: "Bia", ResourceLink: "https://open.spotify.com/playlist/p1"}

	t.Run("Insert", func(t *testing.T) {
		created, err := writeRepo.Insert(ctx, ana)
		require.NoError(t, err)
		assert.Equal(t, "AB-12", created.UID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)

		time.Sleep(10 * time.Millisecond)
		_, err = writeRepo.Insert(ctx, bia)
		require.NoError(t, err)
	})

	t.Run("InsertDuplicate", func(t *testing.T) {
		_, err := writeRepo.Insert(ctx, ana)
		assert.ErrorIs(t, err, models.ErrUserAlreadyExists)
	})

	t.Run("InsertBlankName", func(t *testing.T) {
		_, err := writeRepo.Insert(ctx, models.RFIDUser{UID: "EF-56", Name: "  ", ResourceLink: "x"})
		assert.True(t, models.IsValidationError(err), "got %v", err)
	})

	t.Run("FindByUID", func(t *testing.T) {
		user, err := readRepo.FindByUID(ctx, "AB-12")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Ana", user.Name)

		missing, err := readRepo.FindByUID(ctx, "AB12")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("ListAllNewestFirst", func(t *testing.T) {
		users, err := readRepo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "CD-34", users[0].UID)
		assert.Equal(t, "AB-12", users[1].UID)
	})

	t.Run("UpdateOneField", func(t *testing.T) {
		name := "Ana Maria"
		updated, err := writeRepo.Update(ctx, "AB-12", models.RFIDUserPatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", updated.Name)
		assert.Equal(t, ana.ResourceLink, updated.ResourceLink)
		assert.True(t, !updated.UpdatedAt.Before(updated.CreatedAt))
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		name := "Nobody"
		_, err := writeRepo.Update(ctx, "ZZ-99", models.RFIDUserPatch{Name: &name})
		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, writeRepo.Delete(ctx, "AB-12"))
		assert.ErrorIs(t, writeRepo.Delete(ctx, "AB-12"), models.ErrUserNotFound)

		user, err := readRepo.FindByUID(ctx, "AB-12")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}
