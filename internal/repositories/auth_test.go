package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizedUserReadRepository_Exists(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	_, err := db.Exec(`INSERT INTO authorized_users (phone) VALUES ($1)`, "9876543210")
	assert.NoError(t, err)

	repo := NewAuthorizedUserReadRepository(db)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "9876543210")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "1112223334")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestOTPRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewOTPWriteRepository(db)
	readRepo := NewOTPReadRepository(db)
	ctx := context.Background()

	t.Run("save and fetch valid code", func(t *testing.T) {
		err := writeRepo.Save(ctx, "9876543210", "123456", 30)
		assert.NoError(t, err)

		code, err := readRepo.GetValid(ctx, "9876543210", "123456")
		assert.NoError(t, err)
		assert.NotNil(t, code)
		assert.Equal(t, "9876543210", code.Username)
		assert.Equal(t, "123456", code.OTP)
	})

	t.Run("wrong code returns nil", func(t *testing.T) {
		code, err := readRepo.GetValid(ctx, "9876543210", "000000")
		assert.NoError(t, err)
		assert.Nil(t, code)
	})

	t.Run("reissue overwrites previous code", func(t *testing.T) {
		err := writeRepo.Save(ctx, "9876543210", "654321", 30)
		assert.NoError(t, err)

		// Only one row per phone; the old code is gone.
		var count int
		err = db.Get(&count, `SELECT COUNT(*) FROM otp_codes WHERE username=$1`, "9876543210")
		assert.NoError(t, err)
		assert.Equal(t, 1, count)

		code, err := readRepo.GetValid(ctx, "9876543210", "123456")
		assert.NoError(t, err)
		assert.Nil(t, code)

		code, err = readRepo.GetValid(ctx, "9876543210", "654321")
		assert.NoError(t, err)
		assert.NotNil(t, code)
	})

	t.Run("expired code returns nil", func(t *testing.T) {
		err := writeRepo.Save(ctx, "9876543210", "111111", -1)
		assert.NoError(t, err)

		code, err := readRepo.GetValid(ctx, "9876543210", "111111")
		assert.NoError(t, err)
		assert.Nil(t, code)
	})
}
