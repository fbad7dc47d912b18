package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
)

func TestWebHostingRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewWebHostingWriteRepository(db)
	readRepo := NewWebHostingReadRepository(db)
	ctx := context.Background()

	first := models.WebHostingUserDB{
		UserName:       "example.org",
		HostingType:    "Shared",
		TariffPlan:     "Silver",
		YearlyAmount:   5000,
		ActivationDate: "2025-04-01",
		Email:          "admin@example.org",
		ContactPerson:  "Ravi",
	}
	second := first
	second.UserName = "example.net"

	firstID, err := writeRepo.Save(ctx, first)
	assert.NoError(t, err)
	assert.Greater(t, firstID, int64(0))

	secondID, err := writeRepo.Save(ctx, second)
	assert.NoError(t, err)
	assert.Greater(t, secondID, firstID)

	users, err := readRepo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	// Newest first.
	assert.Equal(t, "example.net", users[0].UserName)
	assert.Equal(t, "example.org", users[1].UserName)
	assert.Equal(t, 5000.0, users[1].YearlyAmount)
}
