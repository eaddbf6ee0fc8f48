package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/rescuemap/internal/logging"
	"github.com/dmitrijs2005/rescuemap/internal/models"
)

// fakeRepo is an in-memory sessionrecord.Repository.
type fakeRepo struct {
	data   map[string][]byte
	getErr error
	setErr error
	delErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{data: map[string][]byte{}}
}

func (f *fakeRepo) Get(_ context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.data[key], nil
}

func (f *fakeRepo) Set(_ context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, key string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.data, key)
	return nil
}

func (f *fakeRepo) Clear(_ context.Context) error {
	f.data = map[string][]byte{}
	return nil
}

func newStore(repo *fakeRepo) *Store {
	return NewStore(repo, logging.NewDefault("error"))
}

func TestNewStore_InitialState(t *testing.T) {
	s := newStore(newFakeRepo())
	state := s.State()

	assert.True(t, state.IsLoading)
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
}

func TestRestore_NoRecord_ResolvesUnauthenticated(t *testing.T) {
	s := newStore(newFakeRepo())

	require.NoError(t, s.Restore(context.Background()))

	state := s.State()
	assert.False(t, state.IsLoading)
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
}

func TestRestore_ValidRecord_ResolvesAuthenticated(t *testing.T) {
	repo := newFakeRepo()
	repo.data["rescueUser"] = []byte(`{"id":"1","email":"admin@rescue.com","name":"Admin"}`)
	s := newStore(repo)

	require.NoError(t, s.Restore(context.Background()))

	state := s.State()
	assert.False(t, state.IsLoading)
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "admin@rescue.com", state.User.Email)
}

func TestRestore_MalformedRecord_PurgesAndResolvesUnauthenticated(t *testing.T) {
	malformed := [][]byte{
		[]byte(`not json`),
		[]byte(`{`),
		[]byte(`42`),
		[]byte(`"just a string"`),
	}

	for _, value := range malformed {
		repo := newFakeRepo()
		repo.data["rescueUser"] = value
		s := newStore(repo)

		// Fails soft: no error reaches the caller.
		require.NoError(t, s.Restore(context.Background()))

		state := s.State()
		assert.False(t, state.IsLoading)
		assert.False(t, state.IsAuthenticated)
		assert.Nil(t, state.User)
		_, present := repo.data["rescueUser"]
		assert.False(t, present, "malformed record must be purged: %s", value)
	}
}

func TestRestore_StorageError_StillFinishesLoading(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("disk gone")
	s := newStore(repo)

	err := s.Restore(context.Background())
	require.Error(t, err)

	state := s.State()
	assert.False(t, state.IsLoading)
	assert.False(t, state.IsAuthenticated)
}

func TestRestore_SecondCallIsNoop(t *testing.T) {
	repo := newFakeRepo()
	s := newStore(repo)

	require.NoError(t, s.Restore(context.Background()))

	// A record appearing later must not resurrect the session.
	repo.data["rescueUser"] = []byte(`{"id":"1","email":"a@x.com","name":"A"}`)
	require.NoError(t, s.Restore(context.Background()))
	assert.False(t, s.State().IsAuthenticated)
}

func TestLogin_PersistsAndAuthenticates(t *testing.T) {
	repo := newFakeRepo()
	s := newStore(repo)
	require.NoError(t, s.Restore(context.Background()))

	user := &models.User{ID: "1", Email: "admin@rescue.com", Name: "Admin"}
	require.NoError(t, s.Login(context.Background(), user))

	state := s.State()
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, user, state.User)
	assert.JSONEq(t,
		`{"id":"1","email":"admin@rescue.com","name":"Admin"}`,
		string(repo.data["rescueUser"]))
}

func TestLogin_StorageFailure_LeavesStateUnchanged(t *testing.T) {
	repo := newFakeRepo()
	repo.setErr = errors.New("disk full")
	s := newStore(repo)
	require.NoError(t, s.Restore(context.Background()))

	err := s.Login(context.Background(), &models.User{ID: "1", Email: "a@x.com"})
	require.Error(t, err)
	assert.False(t, s.State().IsAuthenticated)
}

func TestLogout_ClearsRecordAndState(t *testing.T) {
	repo := newFakeRepo()
	s := newStore(repo)
	require.NoError(t, s.Restore(context.Background()))
	require.NoError(t, s.Login(context.Background(), &models.User{ID: "1", Email: "a@x.com"}))

	require.NoError(t, s.Logout(context.Background()))

	state := s.State()
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	_, present := repo.data["rescueUser"]
	assert.False(t, present)
}

func TestSubscribe_NotifiedOnEveryChange(t *testing.T) {
	s := newStore(newFakeRepo())

	var seen []State
	s.Subscribe(func(st State) { seen = append(seen, st) })

	ctx := context.Background()
	require.NoError(t, s.Restore(ctx))
	require.NoError(t, s.Login(ctx, &models.User{ID: "1", Email: "a@x.com"}))
	require.NoError(t, s.Logout(ctx))

	require.Len(t, seen, 3)
	assert.False(t, seen[0].IsAuthenticated)
	assert.True(t, seen[1].IsAuthenticated)
	assert.False(t, seen[2].IsAuthenticated)
	for _, st := range seen {
		assert.False(t, st.IsLoading)
	}
}
