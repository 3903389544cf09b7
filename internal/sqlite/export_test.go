package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/navdb/internal/seeddata"
)

func TestExportMatchesDefaults(t *testing.T) {
	s := initTestStore(t)

	got, err := s.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seeddata.MustDefaults(), got)
}

func TestExportSeedsAnotherStore(t *testing.T) {
	ctx := context.Background()
	src := initTestStore(t)

	set, err := src.Export(ctx)
	require.NoError(t, err)
	require.NoError(t, set.Validate())

	dst := openTestStore(t)
	opts := testOptions()
	opts.Data = set
	require.NoError(t, Initialize(ctx, dst, opts).Err())

	want, err := src.Counts(ctx)
	require.NoError(t, err)
	got, err := dst.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
