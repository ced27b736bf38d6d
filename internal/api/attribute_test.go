package api

import (
	"net/http"
	"testing"

	"recipe_api/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsRequireAuthentication(t *testing.T) {
	r, _ := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, performJSON(r, http.MethodGet, "/recipe/tags/", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, performJSON(r, http.MethodGet, "/recipe/ingredient/", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, performJSON(r, http.MethodPost, "/recipe/tags/", "", gin.H{"name": "Vegan"}).Code)
}

func TestTagsRejectUnknownToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performJSON(r, http.MethodGet, "/recipe/tags/", "0000000000000000000000000000000000000000", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListTagsScopedToCallerAndOrdered(t *testing.T) {
	r, db := newTestRouter(t)
	user, token := createTestUser(t, db, "testemail@gmail.com")
	other, _ := createTestUser(t, db, "other@gmail.com")

	require.NoError(t, db.Create(&domain.Tag{Name: "Dessert", UserID: user.ID}).Error)
	require.NoError(t, db.Create(&domain.Tag{Name: "Vegan", UserID: user.ID}).Error)
	require.NoError(t, db.Create(&domain.Tag{Name: "Zesty", UserID: other.ID}).Error) // Must not leak

	w := performJSON(r, http.MethodGet, "/recipe/tags/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tags []domain.Tag
	decodeJSON(t, w, &tags)
	require.Len(t, tags, 2)
	// Name descending
	assert.Equal(t, "Vegan", tags[0].Name)
	assert.Equal(t, "Dessert", tags[1].Name)
}

func TestListIngredientsScopedToCaller(t *testing.T) {
	r, db := newTestRouter(t)
	user, token := createTestUser(t, db, "testemail@gmail.com")
	other, _ := createTestUser(t, db, "other@gmail.com")

	require.NoError(t, db.Create(&domain.Ingredient{Name: "Salt", UserID: user.ID}).Error)
	require.NoError(t, db.Create(&domain.Ingredient{Name: "Sugar", UserID: other.ID}).Error)

	w := performJSON(r, http.MethodGet, "/recipe/ingredient/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ingredients []domain.Ingredient
	decodeJSON(t, w, &ingredients)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "Salt", ingredients[0].Name)
}

func TestListTagsEmpty(t *testing.T) {
	r, db := newTestRouter(t)
	_, token := createTestUser(t, db, "testemail@gmail.com")

	w := performJSON(r, http.MethodGet, "/recipe/tags/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String()) // Empty list, not null
}

func TestCreateTagSetsOwnerToCaller(t *testing.T) {
	r, db := newTestRouter(t)
	user, token := createTestUser(t, db, "testemail@gmail.com")
	other, _ := createTestUser(t, db, "other@gmail.com")

	// A user_id in the payload is ignored; the owner is always the caller
	payload := gin.H{"name": "Spicy", "user_id": other.ID}
	w := performJSON(r, http.MethodPost, "/recipe/tags/", token, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var stored domain.Tag
	require.NoError(t, db.Where("name = ?", "Spicy").First(&stored).Error)
	assert.Equal(t, user.ID, stored.UserID)
}

func TestCreateIngredient(t *testing.T) {
	r, db := newTestRouter(t)
	user, token := createTestUser(t, db, "testemail@gmail.com")

	w := performJSON(r, http.MethodPost, "/recipe/ingredient/", token, gin.H{"name": "Cucumber"})
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	decodeJSON(t, w, &body)
	assert.Equal(t, "Cucumber", body["name"])
	assert.NotZero(t, body["id"])

	var stored domain.Ingredient
	require.NoError(t, db.Where("name = ?", "Cucumber").First(&stored).Error)
	assert.Equal(t, user.ID, stored.UserID)
}

func TestCreateTagBlankName(t *testing.T) {
	r, db := newTestRouter(t)
	_, token := createTestUser(t, db, "testemail@gmail.com")

	for _, payload := range []gin.H{{"name": ""}, {"name": "   "}, {}} {
		w := performJSON(r, http.MethodPost, "/recipe/tags/", token, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	// Nothing persisted on failure
	var count int64
	require.NoError(t, db.Model(&domain.Tag{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateDuplicateTagNamesAllowed(t *testing.T) {
	r, db := newTestRouter(t)
	_, token := createTestUser(t, db, "testemail@gmail.com")

	for i := 0; i < 2; i++ {
		w := performJSON(r, http.MethodPost, "/recipe/tags/", token, gin.H{"name": "Comfort Food"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var count int64
	require.NoError(t, db.Model(&domain.Tag{}).Where("name = ?", "Comfort Food").Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
