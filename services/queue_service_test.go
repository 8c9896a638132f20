package services_test

import (
	"testing"

	"campusmatch_server/models"
	"campusmatch_server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() models.Profile {
	return models.Profile{
		ID:          "u1",
		AnonymousID: "NightOwl",
		Gender:      models.GenderMale,
		Branch:      "Computer Science",
		Year:        "3rd",
	}
}

func TestBuildQueueFiltersGenderAndSelf(t *testing.T) {
	user := testUser()
	catalog := services.DemoCatalog()
	// Plant the user themselves in the catalog with an eligible gender
	catalog = append(catalog, models.MatchCandidate{
		Profile: models.Profile{ID: "u1", AnonymousID: "NightOwl", Gender: models.GenderFemale},
	})

	queue := services.BuildQueue(user, catalog, nil, nil)

	require.NotEmpty(t, queue)
	for _, candidate := range queue {
		assert.NotEqual(t, user.ID, candidate.ID, "queue must exclude the user")
		assert.Equal(t, models.GenderFemale, candidate.Gender, "queue must only hold the complementary gender")
	}
}

func TestBuildQueueExcludesExistingMatches(t *testing.T) {
	user := testUser()
	catalog := services.DemoCatalog()

	existing := []models.Match{{MatchID: "c1"}}
	queue := services.BuildQueue(user, catalog, existing, nil)

	for _, candidate := range queue {
		assert.NotEqual(t, "c1", candidate.ID)
	}
}

func TestBuildQueueStableOrderAndPurity(t *testing.T) {
	user := testUser()
	catalog := services.DemoCatalog()

	first := services.BuildQueue(user, catalog, nil, nil)
	second := services.BuildQueue(user, catalog, nil, nil)

	assert.Equal(t, first, second, "repeated builds over the same inputs must agree")

	// Catalog order is preserved
	var ids []string
	for _, c := range first {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c1", "c2"}, ids)
}

func TestBuildQueueCustomPredicate(t *testing.T) {
	user := testUser()
	catalog := services.DemoCatalog()

	verifiedOnly := func(_ models.Profile, c models.MatchCandidate) bool { return c.IsVerified }
	queue := services.BuildQueue(user, catalog, nil, verifiedOnly)

	require.NotEmpty(t, queue)
	for _, candidate := range queue {
		assert.True(t, candidate.IsVerified)
	}
}

func TestMatchQueueNextAndReset(t *testing.T) {
	queue := services.NewMatchQueue(services.BuildQueue(testUser(), services.DemoCatalog(), nil, nil))
	require.Equal(t, 2, queue.Len())

	first, ok := queue.Next()
	require.True(t, ok)
	assert.Equal(t, "c1", first.ID)

	second, ok := queue.Next()
	require.True(t, ok)
	assert.Equal(t, "c2", second.ID)

	_, ok = queue.Next()
	assert.False(t, ok, "queue is finite and bounded by the catalog")

	queue.Reset()
	again, ok := queue.Next()
	require.True(t, ok)
	assert.Equal(t, "c1", again.ID, "reset restarts at position 0 over the same set")
}
