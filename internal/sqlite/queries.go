package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/mesh-intelligence/navdb/pkg/types"
)

// Count returns the number of rows in table, which must be one of
// types.StandardTableNames.
func (s *Store) Count(ctx context.Context, table string) (int64, error) {
	if !slices.Contains(types.StandardTableNames, table) {
		return 0, fmt.Errorf("%q: %w", table, types.ErrUnknownTable)
	}
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// Counts returns the row count of every standard table.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(types.StandardTableNames))
	for _, table := range types.StandardTableNames {
		n, err := s.Count(ctx, table)
		if err != nil {
			return nil, err
		}
		counts[table] = n
	}
	return counts, nil
}

// Menus returns all menus ordered by their display order.
func (s *Store) Menus(ctx context.Context) ([]types.Menu, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT id, name, "order" FROM menus ORDER BY "order", id`)
	if err != nil {
		return nil, fmt.Errorf("query menus: %w", err)
	}
	defer rows.Close()

	var menus []types.Menu
	for rows.Next() {
		var m types.Menu
		if err := rows.Scan(&m.ID, &m.Name, &m.Order); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		menus = append(menus, m)
	}
	return menus, rows.Err()
}

// MenuByName returns the first menu called name.
func (s *Store) MenuByName(ctx context.Context, name string) (types.Menu, error) {
	var m types.Menu
	db, err := s.conn()
	if err != nil {
		return m, err
	}
	err = db.QueryRowContext(ctx,
		`SELECT id, name, "order" FROM menus WHERE name = ? ORDER BY id LIMIT 1`, name,
	).Scan(&m.ID, &m.Name, &m.Order)
	if errors.Is(err, sql.ErrNoRows) {
		return m, fmt.Errorf("menu %q: %w", name, types.ErrNotFound)
	}
	if err != nil {
		return m, fmt.Errorf("get menu %q: %w", name, err)
	}
	return m, nil
}

// SubMenus returns the sub-menus of the menu with id menuID.
func (s *Store) SubMenus(ctx context.Context, menuID int64) ([]types.SubMenu, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		`SELECT id, parent_id, name, "order" FROM sub_menus WHERE parent_id = ? ORDER BY "order", id`, menuID)
	if err != nil {
		return nil, fmt.Errorf("query sub-menus: %w", err)
	}
	defer rows.Close()

	var subs []types.SubMenu
	for rows.Next() {
		var sm types.SubMenu
		if err := rows.Scan(&sm.ID, &sm.ParentID, &sm.Name, &sm.Order); err != nil {
			return nil, fmt.Errorf("scan sub-menu: %w", err)
		}
		subs = append(subs, sm)
	}
	return subs, rows.Err()
}

const selectCards = `SELECT id, menu_id, sub_menu_id, title, url, logo_url, custom_logo_path, "desc", "order" FROM cards`

// Cards returns every card.
func (s *Store) Cards(ctx context.Context) ([]types.Card, error) {
	return s.queryCards(ctx, selectCards+` ORDER BY id`)
}

// CardsByMenu returns the cards attached directly to the menu menuID.
func (s *Store) CardsByMenu(ctx context.Context, menuID int64) ([]types.Card, error) {
	return s.queryCards(ctx, selectCards+` WHERE menu_id = ? ORDER BY "order", id`, menuID)
}

// CardsBySubMenu returns the cards attached to the sub-menu subMenuID.
func (s *Store) CardsBySubMenu(ctx context.Context, subMenuID int64) ([]types.Card, error) {
	return s.queryCards(ctx, selectCards+` WHERE sub_menu_id = ? ORDER BY "order", id`, subMenuID)
}

func (s *Store) queryCards(ctx context.Context, query string, args ...any) ([]types.Card, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	var cards []types.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func scanCard(rows *sql.Rows) (types.Card, error) {
	var (
		c                         types.Card
		menuID, subMenuID         sql.NullInt64
		logoURL, customLogo, desc sql.NullString
	)
	if err := rows.Scan(&c.ID, &menuID, &subMenuID, &c.Title, &c.URL, &logoURL, &customLogo, &desc, &c.Order); err != nil {
		return c, fmt.Errorf("scan card: %w", err)
	}
	if menuID.Valid {
		c.MenuID = &menuID.Int64
	}
	if subMenuID.Valid {
		c.SubMenuID = &subMenuID.Int64
	}
	c.LogoURL = logoURL.String
	c.CustomLogoPath = customLogo.String
	c.Desc = desc.String
	return c, nil
}

// UserByUsername returns the user called username, including the password
// hash.
func (s *Store) UserByUsername(ctx context.Context, username string) (types.User, error) {
	var (
		u        types.User
		lastTime sql.NullString
		lastIP   sql.NullString
	)
	db, err := s.conn()
	if err != nil {
		return u, err
	}
	err = db.QueryRowContext(ctx,
		`SELECT id, username, password, last_login_time, last_login_ip FROM users WHERE username = ?`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &lastTime, &lastIP)
	if errors.Is(err, sql.ErrNoRows) {
		return u, fmt.Errorf("user %q: %w", username, types.ErrNotFound)
	}
	if err != nil {
		return u, fmt.Errorf("get user %q: %w", username, err)
	}
	if lastTime.Valid {
		u.LastLoginTime = &lastTime.String
	}
	if lastIP.Valid {
		u.LastLoginIP = &lastIP.String
	}
	return u, nil
}

// Friends returns every friend link.
func (s *Store) Friends(ctx context.Context) ([]types.Friend, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT id, title, url, logo FROM friends ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query friends: %w", err)
	}
	defer rows.Close()

	var friends []types.Friend
	for rows.Next() {
		var (
			f    types.Friend
			logo sql.NullString
		)
		if err := rows.Scan(&f.ID, &f.Title, &f.URL, &logo); err != nil {
			return nil, fmt.Errorf("scan friend: %w", err)
		}
		f.Logo = logo.String
		friends = append(friends, f)
	}
	return friends, rows.Err()
}

// Ads returns every advertisement slot.
func (s *Store) Ads(ctx context.Context) ([]types.Ad, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT id, position, img, url FROM ads ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query ads: %w", err)
	}
	defer rows.Close()

	var ads []types.Ad
	for rows.Next() {
		var a types.Ad
		if err := rows.Scan(&a.ID, &a.Position, &a.Img, &a.URL); err != nil {
			return nil, fmt.Errorf("scan ad: %w", err)
		}
		ads = append(ads, a)
	}
	return ads, rows.Err()
}

// DeleteMenu removes a menu. Its sub-menus and every card under the menu or
// its sub-menus are removed with it.
func (s *Store) DeleteMenu(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, types.MenusTable, id)
}

// DeleteSubMenu removes a sub-menu and its cards.
func (s *Store) DeleteSubMenu(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, types.SubMenusTable, id)
}

func (s *Store) deleteByID(ctx context.Context, table string, id int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", table, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", table, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", table, id, types.ErrNotFound)
	}
	return nil
}
