package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MJE43/decorum-scenario-go/internal/scenario"
)

func testScenario(t *testing.T, numPlayers int) scenario.Scenario {
	t.Helper()
	seed := uint32(42)
	return scenario.GenerateScenario(scenario.GenerateConfig{
		NumPlayers: numPlayers,
		Difficulty: scenario.Medium,
		Seed:       &seed,
	})
}

func TestCreateAndGet(t *testing.T) {
	store := New(time.Hour)
	sc := testScenario(t, 3)

	sess := store.Create(sc)
	require.NotEmpty(t, sess.Token)

	got, err := store.Get(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sc.NumPlayers, got.Scenario.NumPlayers)
	assert.Len(t, got.Shared, 3)

	_, err = store.Get("no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTokensAreUnique(t *testing.T) {
	store := New(time.Hour)
	sc := testScenario(t, 2)
	a := store.Create(sc)
	b := store.Create(sc)
	assert.NotEqual(t, a.Token, b.Token)
	assert.Equal(t, 2, store.Len())
}

func TestExpiry(t *testing.T) {
	store := New(time.Minute)
	now := time.Unix(1000, 0)
	store.now = func() time.Time { return now }

	sess := store.Create(testScenario(t, 2))

	_, err := store.Get(sess.Token)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = store.Get(sess.Token)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestShareAndPlayerView(t *testing.T) {
	store := New(time.Hour)
	sess := store.Create(testScenario(t, 3))

	// Nothing is shared at first.
	view, err := store.PlayerView(sess.Token, 2)
	require.NoError(t, err)
	assert.Empty(t, view.SharedRules)
	assert.Equal(t, 2, view.Player.ID)
	assert.NotEmpty(t, view.Player.Constraints)

	// Player 1 reveals their first rule; players 2 and 3 see it, player 1
	// does not see their own share echoed back.
	shared, err := store.Share(sess.Token, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, shared.PlayerID)
	assert.Equal(t, sess.Scenario.Players[0].Constraints[0].Text, shared.Text)

	view2, err := store.PlayerView(sess.Token, 2)
	require.NoError(t, err)
	require.Len(t, view2.SharedRules, 1)
	assert.Equal(t, shared, view2.SharedRules[0])

	view1, err := store.PlayerView(sess.Token, 1)
	require.NoError(t, err)
	assert.Empty(t, view1.SharedRules)
}

func TestShareValidation(t *testing.T) {
	store := New(time.Hour)
	sess := store.Create(testScenario(t, 2))

	_, err := store.Share(sess.Token, 5, 0)
	assert.Error(t, err)
	_, err = store.Share(sess.Token, 1, 99)
	assert.Error(t, err)
	_, err = store.Share("bogus", 1, 0)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.PlayerView(sess.Token, 0)
	assert.Error(t, err)
}
