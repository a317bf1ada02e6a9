package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInspector struct {
	databases   []string
	collections map[string][]string
	counts      map[string]int64
	current     string
	listErr     error
}

func (f *fakeInspector) ListDatabaseNames(ctx context.Context) ([]string, error) {
	return f.databases, f.listErr
}

func (f *fakeInspector) ListCollectionNames(ctx context.Context, dbName string) ([]string, error) {
	return f.collections[dbName], nil
}

func (f *fakeInspector) CountDocuments(ctx context.Context, dbName, collection string) (int64, error) {
	return f.counts[dbName+"."+collection], nil
}

func (f *fakeInspector) CurrentDatabaseName() string {
	return f.current
}

func TestGetDatabaseOverview(t *testing.T) {
	inspector := &fakeInspector{
		databases: []string{"admin", "local", "config", "restaurantDirectory", "staging"},
		collections: map[string][]string{
			"restaurantDirectory": {"restaurants", "menuItems"},
			"staging":             {"restaurants"},
		},
		counts: map[string]int64{
			"restaurantDirectory.restaurants": 12,
			"restaurantDirectory.menuItems":   340,
			"staging.restaurants":             2,
		},
		current: "restaurantDirectory",
	}
	svc := NewDebugService(inspector, newTestLogger())

	overview, err := svc.GetDatabaseOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "restaurantDirectory", overview.CurrentDBName)
	require.Len(t, overview.Databases, 2, "system databases are excluded")

	assert.Equal(t, "restaurantDirectory", overview.Databases[0].Name)
	assert.True(t, overview.Databases[0].IsCurrentDB)
	require.Len(t, overview.Databases[0].Collections, 2)
	assert.Equal(t, int64(340), overview.Databases[0].Collections[1].DocumentCount)

	assert.Equal(t, "staging", overview.Databases[1].Name)
	assert.False(t, overview.Databases[1].IsCurrentDB)
}

func TestGetDatabaseOverview_Error(t *testing.T) {
	inspector := &fakeInspector{listErr: errors.New("not authorized")}
	svc := NewDebugService(inspector, newTestLogger())

	overview, err := svc.GetDatabaseOverview(context.Background())
	assert.Error(t, err)
	assert.Nil(t, overview)
}
