package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/rescuemap/internal/feedback"
	"github.com/dmitrijs2005/rescuemap/internal/logging"
	"github.com/dmitrijs2005/rescuemap/internal/models"
	"github.com/dmitrijs2005/rescuemap/internal/rescue"
)

type fakeAPI struct {
	locations   []models.RescueLocation
	fetchErr    error
	deleteErr   error
	deleteCalls []string
}

func (f *fakeAPI) FetchLocations(context.Context) ([]models.RescueLocation, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.locations, nil
}

func (f *fakeAPI) DeleteLocation(_ context.Context, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

func newViewApp(t *testing.T, client *fakeAPI) *App {
	t.Helper()
	a, _ := newTestApp(t, nil)
	log := logging.NewDefault("error")
	a.rescue = rescue.NewService(client, log)
	a.feedback = feedback.NewService(nil, log, 0)
	return a
}

func sampleLocations() []models.RescueLocation {
	return []models.RescueLocation{
		{ID: "1", Priority: models.PriorityHigh, Message: "trapped", Address: "123 Hanoi St", CreatedAt: time.Now()},
		{ID: "2", Priority: models.PriorityLow, Message: "supplies", Address: "789 Long Bien St", CreatedAt: time.Now()},
	}
}

func TestMap_FilterArgUpdatesWorkingSet(t *testing.T) {
	client := &fakeAPI{locations: sampleLocations()}
	a := newViewApp(t, client)
	ctx := context.Background()

	require.NoError(t, a.Map(ctx, []string{"high"}))

	got := a.rescue.Locations()
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, models.FilterHigh, a.filter)
}

func TestMap_BadFilterArg_KeepsCurrentFilter(t *testing.T) {
	client := &fakeAPI{locations: sampleLocations()}
	a := newViewApp(t, client)

	require.NoError(t, a.Map(context.Background(), []string{"urgent"}))

	assert.Equal(t, models.FilterAll, a.filter)
	// Bad argument renders usage; nothing was loaded.
	assert.Empty(t, a.rescue.Locations())
}

func TestMap_FetchFailure_KeepsWorkingSet(t *testing.T) {
	client := &fakeAPI{locations: sampleLocations()}
	a := newViewApp(t, client)
	ctx := context.Background()

	require.NoError(t, a.Map(ctx, nil))
	require.Len(t, a.rescue.Locations(), 2)

	client.fetchErr = errors.New("api down")
	require.NoError(t, a.Map(ctx, nil))
	assert.Len(t, a.rescue.Locations(), 2)
}

func TestResolve_RemovesLocation(t *testing.T) {
	client := &fakeAPI{locations: sampleLocations()}
	a := newViewApp(t, client)
	ctx := context.Background()

	require.NoError(t, a.Map(ctx, nil))
	require.NoError(t, a.Resolve(ctx, []string{"1"}))

	assert.Equal(t, []string{"1"}, client.deleteCalls)
	got := a.rescue.Locations()
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestResolve_NoArg_IsUsageError(t *testing.T) {
	client := &fakeAPI{}
	a := newViewApp(t, client)

	require.NoError(t, a.Resolve(context.Background(), nil))
	assert.Empty(t, client.deleteCalls)
}

func TestContact_SubmitsFeedback(t *testing.T) {
	a := newViewApp(t, &fakeAPI{})

	origST := getSimpleText
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return "Alice", nil
	}
	t.Cleanup(func() { getSimpleText = origST })

	// GetMultiline reads from the app reader directly.
	a.reader = bufio.NewReader(strings.NewReader("help arrived quickly\n\n"))

	require.NoError(t, a.Contact(context.Background()))

	entries := a.feedback.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "Alice", entries[0].Name)
	assert.Equal(t, "help arrived quickly", entries[0].Message)
}
