package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/navdb/internal/seeddata"
)

// Export reads the navigation content back out of the store in the seed
// file layout, so a populated database can serve as seed.file for another.
// Rows come out in id order. The administrator account is not exported.
func (s *Store) Export(ctx context.Context) (*seeddata.Set, error) {
	if _, err := s.conn(); err != nil {
		return nil, err
	}
	set := &seeddata.Set{}

	menuNames := make(map[int64]string)
	err := s.eachRow(ctx, `SELECT id, name, "order" FROM menus ORDER BY id`, func(rows *sql.Rows) error {
		var (
			id int64
			m  seeddata.Menu
		)
		if err := rows.Scan(&id, &m.Name, &m.Order); err != nil {
			return err
		}
		menuNames[id] = m.Name
		set.Menus = append(set.Menus, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("export menus: %w", err)
	}

	subMenus := make(map[int64]seeddata.SubMenu)
	err = s.eachRow(ctx, `SELECT id, parent_id, name, "order" FROM sub_menus ORDER BY id`, func(rows *sql.Rows) error {
		var (
			id, parentID int64
			sm           seeddata.SubMenu
		)
		if err := rows.Scan(&id, &parentID, &sm.Name, &sm.Order); err != nil {
			return err
		}
		sm.Menu = menuNames[parentID]
		subMenus[id] = sm
		set.SubMenus = append(set.SubMenus, sm)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("export sub-menus: %w", err)
	}

	cards, err := s.Cards(ctx)
	if err != nil {
		return nil, fmt.Errorf("export cards: %w", err)
	}
	for _, c := range cards {
		out := seeddata.Card{
			Title:   c.Title,
			URL:     c.URL,
			LogoURL: c.LogoURL,
			Desc:    c.Desc,
			Order:   c.Order,
		}
		switch {
		case c.SubMenuID != nil:
			sm := subMenus[*c.SubMenuID]
			out.Menu, out.SubMenu = sm.Menu, sm.Name
		case c.MenuID != nil:
			out.Menu = menuNames[*c.MenuID]
		}
		set.Cards = append(set.Cards, out)
	}

	friends, err := s.Friends(ctx)
	if err != nil {
		return nil, fmt.Errorf("export friends: %w", err)
	}
	for _, f := range friends {
		set.Friends = append(set.Friends, seeddata.Friend{Title: f.Title, URL: f.URL, Logo: f.Logo})
	}

	return set, nil
}

func (s *Store) eachRow(ctx context.Context, query string, fn func(*sql.Rows) error) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
