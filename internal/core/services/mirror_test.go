package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vabank-dev/vabank/internal/adapters/driven/storage/memory"
	"github.com/vabank-dev/vabank/internal/core/domain"
)

func TestMirrorService_SyncAllKinds(t *testing.T) {
	upstream := memory.NewContentStore(
		post("p1", "Post"),
		work("w1", "Work", "", ""),
		work("w1", "Duplicate", "", ""),
		work("w2", "", "", ""),
	)
	mirror := memory.NewContentStore()
	svc := NewMirrorService(upstream, mirror, mockValidator{})
	captureLog(t)

	results, err := svc.Sync(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, domain.KindPost, results[0].Kind)
	assert.Equal(t, 1, results[0].Stored)
	assert.Equal(t, 1, results[1].Stored)
	assert.Equal(t, 2, results[1].Rejected)
	assert.Zero(t, results[2].Stored)

	works, err := mirror.Fetch(context.Background(), domain.KindWork)
	require.NoError(t, err)
	assert.Equal(t, []string{"w1"}, ids(works))
	assert.Equal(t, "Work", works[0].Title)
}

func TestMirrorService_FetchFailureKeepsMirror(t *testing.T) {
	upstream := memory.NewContentStore()
	upstream.FetchErr = domain.ErrStoreUnavailable
	mirror := memory.NewContentStore(post("keep", "Keep me"))
	svc := NewMirrorService(upstream, mirror, nil)
	captureLog(t)

	results, err := svc.Sync(context.Background(), domain.KindPost)
	require.Error(t, err)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, domain.ErrStoreUnavailable)

	posts, err := mirror.Fetch(context.Background(), domain.KindPost)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, ids(posts))
}

func TestMirrorService_StoreFailure(t *testing.T) {
	svc := NewMirrorService(memory.NewContentStore(post("p", "P")), failingMirror{}, nil)
	captureLog(t)

	results, err := svc.Sync(context.Background(), domain.KindPost, "podcast")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 2")
	assert.Contains(t, results[0].Err.Error(), "disk full")
	assert.ErrorIs(t, results[1].Err, domain.ErrUnsupportedKind)
}
