package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wecareapp/wecare/internal/db"
)

func TestTipStoreList(t *testing.T) {
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	tips, err := NewTipStore(d).List(context.Background())
	require.NoError(t, err)
	require.Len(t, tips, 6)
	assert.Equal(t, "Sun Protection", tips[0].Category)
	assert.NotEmpty(t, tips[0].Title)
	assert.NotEmpty(t, tips[0].Body)
}

func TestTipStoreCategories(t *testing.T) {
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	categories, err := NewTipStore(d).Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Sun Protection", "Hydration", "Nutrition", "Sleep Care", "Skincare", "Cleansing"}, categories)
}
