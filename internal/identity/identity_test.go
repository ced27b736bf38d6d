package identity

import (
	"testing"

	"recipe_api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Token{}, &domain.Tag{}, &domain.Ingredient{}, &domain.Recipe{}))
	return db
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	db := setupTestDB(t)

	user, err := CreateUser(db, "Test.User@GMAIL.Com", "testpass", "Test Name")
	require.NoError(t, err)
	assert.Equal(t, "test.user@gmail.com", user.Email)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsStaff)
	assert.False(t, user.IsSuperuser)

	// The stored row matches the normalized form
	var stored domain.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "test.user@gmail.com", stored.Email)
}

func TestCreateUserHashesPassword(t *testing.T) {
	db := setupTestDB(t)

	user, err := CreateUser(db, "test@example.com", "testpass", "")
	require.NoError(t, err)
	assert.NotEqual(t, "testpass", user.Password) // Never stored in clear
	assert.NotNil(t, VerifyCredentials(db, "test@example.com", "testpass"))
}

func TestCreateUserRequiresEmail(t *testing.T) {
	db := setupTestDB(t)

	for _, email := range []string{"", "   "} {
		_, err := CreateUser(db, email, "testpass", "")
		assert.ErrorIs(t, err, ErrEmailRequired)
	}

	// Nothing persisted on failure
	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)

	_, err := CreateUser(db, "test@example.com", "testpass", "")
	require.NoError(t, err)
	_, err = CreateUser(db, "Test@Example.com", "otherpass", "")
	assert.Error(t, err) // Unique index on the normalized email
}

func TestCreateSuperuser(t *testing.T) {
	db := setupTestDB(t)

	user, err := CreateSuperuser(db, "admin@example.com", "adminpass")
	require.NoError(t, err)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)
	assert.True(t, user.IsActive)

	// Flags are persisted, not just set on the returned struct
	var stored domain.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, stored.IsStaff)
	assert.True(t, stored.IsSuperuser)
}

func TestVerifyCredentials(t *testing.T) {
	db := setupTestDB(t)

	user, err := CreateUser(db, "test@example.com", "testpass", "")
	require.NoError(t, err)

	got := VerifyCredentials(db, "test@example.com", "testpass")
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)

	// Lookup uses the normalized email
	assert.NotNil(t, VerifyCredentials(db, "TEST@EXAMPLE.COM", "testpass"))

	assert.Nil(t, VerifyCredentials(db, "test@example.com", "wrongpass"))
	assert.Nil(t, VerifyCredentials(db, "unknown@example.com", "testpass"))
}

func TestVerifyCredentialsInactiveUser(t *testing.T) {
	db := setupTestDB(t)

	user, err := CreateUser(db, "test@example.com", "testpass", "")
	require.NoError(t, err)
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	assert.Nil(t, VerifyCredentials(db, "test@example.com", "testpass"))
}
