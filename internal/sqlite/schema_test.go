package sqlite

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSchemaRerun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	assert.Empty(t, createSchema(ctx, s.DB(), zerolog.Nop()))
	assert.Empty(t, createSchema(ctx, s.DB(), zerolog.Nop()), "second run should be a no-op")

	rows, err := s.DB().QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'index' AND name LIKE 'idx_%' ORDER BY name")
	require.NoError(t, err)
	defer rows.Close()
	var got []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		got = append(got, name)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []string{
		"idx_ads_position",
		"idx_cards_menu_id",
		"idx_cards_order",
		"idx_cards_sub_menu_id",
		"idx_friends_title",
		"idx_menus_order",
		"idx_sub_menus_order",
		"idx_sub_menus_parent_id",
		"idx_users_username",
	}, got)
}

func TestExecAllContinuesPastFailure(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	errs := execAll(ctx, s.DB(), zerolog.Nop(), []string{
		createMenus,
		"CREATE INDEX idx_broken ON no_such_table(x)",
		createFriends,
	})
	require.Len(t, errs, 1)

	assert.Equal(t, int64(0), countRows(t, s, "menus"))
	assert.Equal(t, int64(0), countRows(t, s, "friends"), "statements after the failure still run")
}
