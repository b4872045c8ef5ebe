package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RocketManDan1/Frontier-sub001/internal/adapters/persistence"
	"github.com/RocketManDan1/Frontier-sub001/internal/application/routing/commands"
	"github.com/RocketManDan1/Frontier-sub001/internal/application/routing/queries"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/location"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/routing"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/test/helpers"
)

type matrixFixture struct {
	locations *persistence.LocationRepositoryGORM
	matrix    *persistence.MatrixRepositoryGORM
	meta      *persistence.MetaRepositoryGORM
	handler   *commands.RegenerateMatrixHandler
}

func newMatrixFixture(t *testing.T) *matrixFixture {
	t.Helper()
	db := helpers.NewTestDB(t)
	f := &matrixFixture{
		locations: persistence.NewLocationRepository(db),
		matrix:    persistence.NewMatrixRepository(db),
		meta:      persistence.NewMetaRepository(db),
	}
	f.handler = commands.NewRegenerateMatrixHandler(f.locations, f.matrix, f.meta)
	return f
}

// seedTriangle stores leo, heo and geo plus the earth group node, with
// bidirectional edges leo-heo and heo-geo.
func (f *matrixFixture) seedTriangle(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.locations.Save(ctx, &location.Location{ID: "earth", Name: "Earth", IsGroup: true}))
	for _, id := range []string{"leo", "heo", "geo"} {
		require.NoError(t, f.locations.Save(ctx, &location.Location{ID: id, Name: id, ParentID: "earth"}))
	}
	edges := []location.TransferEdge{
		{FromID: "leo", ToID: "heo", DvMS: 900, TofS: 7200},
		{FromID: "heo", ToID: "leo", DvMS: 900, TofS: 7200},
		{FromID: "heo", ToID: "geo", DvMS: 1200, TofS: 14400},
		{FromID: "geo", ToID: "heo", DvMS: 1200, TofS: 14400},
	}
	for _, e := range edges {
		require.NoError(t, f.locations.SaveEdge(ctx, e))
	}
}

func TestRegenerateMatrix_BuildsEntriesAndStoresHash(t *testing.T) {
	// Arrange
	f := newMatrixFixture(t)
	f.seedTriangle(t)
	ctx := context.Background()

	// Act
	resp, err := f.handler.Handle(ctx, &commands.RegenerateMatrixCommand{})

	// Assert - 3 reachable nodes yield a full 3x3 matrix
	require.NoError(t, err)
	result := resp.(*commands.RegenerateMatrixResponse)
	assert.True(t, result.Rebuilt)
	assert.Equal(t, 9, result.Entries)
	assert.Len(t, result.EdgesHash, 64)

	stored, err := f.meta.Get(ctx, routing.EdgesHashKey)
	require.NoError(t, err)
	assert.Equal(t, result.EdgesHash, stored)

	// The two-hop route goes through heo.
	entry, err := f.matrix.FindEntry(ctx, "leo", "geo")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.InDelta(t, 2100, entry.DvMS, 1e-9)
	assert.Equal(t, []string{"leo", "heo", "geo"}, entry.Path)
}

func TestRegenerateMatrix_GroupNodesGetNoEntries(t *testing.T) {
	f := newMatrixFixture(t)
	f.seedTriangle(t)
	ctx := context.Background()

	_, err := f.handler.Handle(ctx, &commands.RegenerateMatrixCommand{})
	require.NoError(t, err)

	entry, err := f.matrix.FindEntry(ctx, "earth", "earth")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestRegenerateMatrix_SkipsWhenEdgesUnchanged(t *testing.T) {
	// Arrange - build once
	f := newMatrixFixture(t)
	f.seedTriangle(t)
	ctx := context.Background()
	_, err := f.handler.Handle(ctx, &commands.RegenerateMatrixCommand{})
	require.NoError(t, err)

	// Act - same edges, no force
	resp, err := f.handler.Handle(ctx, &commands.RegenerateMatrixCommand{})

	// Assert
	require.NoError(t, err)
	result := resp.(*commands.RegenerateMatrixResponse)
	assert.False(t, result.Rebuilt)
	assert.Equal(t, 9, result.Entries)
}

func TestRegenerateMatrix_RebuildsWhenEdgesChange(t *testing.T) {
	// Arrange - build, then add a node and a direct edge
	f := newMatrixFixture(t)
	f.seedTriangle(t)
	ctx := context.Background()
	_, err := f.handler.Handle(ctx, &commands.RegenerateMatrixCommand{})
	require.NoError(t, err)

	require.NoError(t, f.locations.Save(ctx, &location.Location{ID: "eml1", Name: "EML-1", ParentID: "earth"}))
	require.NoError(t, f.locations.SaveEdge(ctx, location.TransferEdge{FromID: "geo", ToID: "eml1", DvMS: 1300, TofS: 4 * 86400}))

	// Act
	resp, err := f.handler.Handle(ctx, &commands.RegenerateMatrixCommand{})

	// Assert - 4 nodes now
	require.NoError(t, err)
	result := resp.(*commands.RegenerateMatrixResponse)
	assert.True(t, result.Rebuilt)
	assert.Equal(t, 16, result.Entries)

	entry, err := f.matrix.FindEntry(ctx, "leo", "eml1")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.InDelta(t, 900+1200+1300, entry.DvMS, 1e-9)
}

func TestRegenerateMatrix_ForceRebuildsOnMatchingHash(t *testing.T) {
	f := newMatrixFixture(t)
	f.seedTriangle(t)
	ctx := context.Background()
	_, err := f.handler.Handle(ctx, &commands.RegenerateMatrixCommand{})
	require.NoError(t, err)

	resp, err := f.handler.Handle(ctx, &commands.RegenerateMatrixCommand{Force: true})

	require.NoError(t, err)
	assert.True(t, resp.(*commands.RegenerateMatrixResponse).Rebuilt)
}

func TestGetRoute_ServesMatrixEntry(t *testing.T) {
	// Arrange
	f := newMatrixFixture(t)
	f.seedTriangle(t)
	ctx := context.Background()
	_, err := f.handler.Handle(ctx, &commands.RegenerateMatrixCommand{})
	require.NoError(t, err)
	handler := queries.NewGetRouteHandler(f.matrix)

	// Act
	resp, err := handler.Handle(ctx, &queries.GetRouteQuery{FromID: "leo", ToID: "heo"})

	// Assert
	require.NoError(t, err)
	route := resp.(*queries.GetRouteResponse).Route
	assert.InDelta(t, 900, route.DvMS, 1e-9)
	assert.InDelta(t, 7200, route.TofS, 1e-9)
}

func TestGetRoute_NoEntryIsNoRoute(t *testing.T) {
	f := newMatrixFixture(t)

	_, err := queries.NewGetRouteHandler(f.matrix).
		Handle(context.Background(), &queries.GetRouteQuery{FromID: "leo", ToID: "nowhere"})

	var routeErr *shared.NoRouteError
	assert.ErrorAs(t, err, &routeErr)
}

func TestListRoutesFrom_ReturnsAllDestinations(t *testing.T) {
	// Arrange
	f := newMatrixFixture(t)
	f.seedTriangle(t)
	ctx := context.Background()
	_, err := f.handler.Handle(ctx, &commands.RegenerateMatrixCommand{})
	require.NoError(t, err)

	// Act
	resp, err := queries.NewListRoutesFromHandler(f.matrix).
		Handle(ctx, &queries.ListRoutesFromQuery{FromID: "leo"})

	// Assert - self plus two destinations
	require.NoError(t, err)
	assert.Len(t, resp.(*queries.ListRoutesFromResponse).Routes, 3)
}
