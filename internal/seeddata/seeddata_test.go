package seeddata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/navdb/pkg/types"
)

func TestDefaults(t *testing.T) {
	s, err := Defaults()
	require.NoError(t, err)

	assert.Len(t, s.Menus, 8)
	assert.Len(t, s.SubMenus, 6)
	assert.Len(t, s.Cards, 255)
	assert.Len(t, s.Friends, 2)

	assert.Equal(t, Menu{Name: "Cloud", Order: 3}, s.Menus[2])
}

func TestDefaults_SubMenuCardsNameTheirParent(t *testing.T) {
	s := MustDefaults()

	parents := make(map[string]bool)
	for _, sm := range s.SubMenus {
		parents[types.SubMenuKey(sm.Menu, sm.Name)] = true
	}
	for _, c := range s.Cards {
		if c.SubMenu == "" {
			continue
		}
		assert.True(t, parents[types.SubMenuKey(c.Menu, c.SubMenu)],
			"card %q references unknown sub-menu %s/%s", c.Title, c.Menu, c.SubMenu)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name: "minimal valid set",
			yaml: `
menus:
  - name: Home
    order: 1
cards:
  - menu: Home
    title: Example
    url: https://example.com
`,
		},
		{
			name:    "menu without name",
			yaml:    "menus:\n  - order: 1\n",
			wantErr: types.ErrSeedEmptyName,
		},
		{
			name:    "sub-menu without parent",
			yaml:    "sub_menus:\n  - name: Orphan\n",
			wantErr: types.ErrSeedEmptyName,
		},
		{
			name:    "card without owner",
			yaml:    "cards:\n  - title: Nowhere\n    url: https://example.com\n",
			wantErr: types.ErrCardParent,
		},
		{
			name:    "card without url",
			yaml:    "cards:\n  - menu: Home\n    title: Broken\n",
			wantErr: types.ErrSeedEmptyURL,
		},
		{
			name:    "friend without title",
			yaml:    "friends:\n  - url: https://example.com\n",
			wantErr: types.ErrSeedEmptyTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("menus: [unterminated"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		s, err := LoadFile("")
		require.NoError(t, err)
		assert.Len(t, s.Menus, 8)
	})

	t.Run("reads file from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte("menus:\n  - name: Only\n    order: 1\n"), 0o644))

		s, err := LoadFile(path)
		require.NoError(t, err)
		require.Len(t, s.Menus, 1)
		assert.Equal(t, "Only", s.Menus[0].Name)
		assert.Empty(t, s.Cards)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
