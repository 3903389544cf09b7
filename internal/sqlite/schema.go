package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

// Schema DDL. Every statement is create-if-absent so the schema step can run
// on every start. "order" and "desc" are quoted because they are SQL keywords.
const (
	createMenus = `CREATE TABLE IF NOT EXISTS menus (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    "order" INTEGER DEFAULT 0
)`

	createSubMenus = `CREATE TABLE IF NOT EXISTS sub_menus (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    parent_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    "order" INTEGER DEFAULT 0,
    FOREIGN KEY (parent_id) REFERENCES menus(id) ON DELETE CASCADE
)`

	createCards = `CREATE TABLE IF NOT EXISTS cards (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    menu_id INTEGER,
    sub_menu_id INTEGER,
    title TEXT NOT NULL,
    url TEXT NOT NULL,
    logo_url TEXT,
    custom_logo_path TEXT,
    "desc" TEXT,
    "order" INTEGER DEFAULT 0,
    FOREIGN KEY (menu_id) REFERENCES menus(id) ON DELETE CASCADE,
    FOREIGN KEY (sub_menu_id) REFERENCES sub_menus(id) ON DELETE CASCADE
)`

	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password TEXT NOT NULL
)`

	createAds = `CREATE TABLE IF NOT EXISTS ads (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    position TEXT NOT NULL,
    img TEXT NOT NULL,
    url TEXT NOT NULL
)`

	createFriends = `CREATE TABLE IF NOT EXISTS friends (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    url TEXT NOT NULL,
    logo TEXT
)`
)

// Index DDL.
const (
	idxMenusOrder       = `CREATE INDEX IF NOT EXISTS idx_menus_order ON menus("order")`
	idxSubMenusParentID = `CREATE INDEX IF NOT EXISTS idx_sub_menus_parent_id ON sub_menus(parent_id)`
	idxSubMenusOrder    = `CREATE INDEX IF NOT EXISTS idx_sub_menus_order ON sub_menus("order")`
	idxCardsMenuID      = `CREATE INDEX IF NOT EXISTS idx_cards_menu_id ON cards(menu_id)`
	idxCardsSubMenuID   = `CREATE INDEX IF NOT EXISTS idx_cards_sub_menu_id ON cards(sub_menu_id)`
	idxCardsOrder       = `CREATE INDEX IF NOT EXISTS idx_cards_order ON cards("order")`
	idxUsersUsername    = `CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)`
	idxAdsPosition      = `CREATE INDEX IF NOT EXISTS idx_ads_position ON ads(position)`
	idxFriendsTitle     = `CREATE INDEX IF NOT EXISTS idx_friends_title ON friends(title)`
)

// schemaDDL lists every statement in issue order: each table is followed by
// its indexes, and referenced tables come before the tables that reference
// them.
var schemaDDL = []string{
	createMenus,
	idxMenusOrder,
	createSubMenus,
	idxSubMenusParentID,
	idxSubMenusOrder,
	createCards,
	idxCardsMenuID,
	idxCardsSubMenuID,
	idxCardsOrder,
	createUsers,
	idxUsersUsername,
	createAds,
	idxAdsPosition,
	createFriends,
	idxFriendsTitle,
}

// createSchema issues every schema statement. A failing statement is logged
// and returned; the remaining statements are still issued.
func createSchema(ctx context.Context, db *sql.DB, log zerolog.Logger) []error {
	return execAll(ctx, db, log, schemaDDL)
}

func execAll(ctx context.Context, db *sql.DB, log zerolog.Logger, stmts []string) []error {
	var errs []error
	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Error().Err(err).Int("statement", i).Msg("schema statement failed")
			errs = append(errs, fmt.Errorf("schema statement %d: %w", i, err))
		}
	}
	return errs
}
