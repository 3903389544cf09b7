package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/navdb/internal/password"
	"github.com/mesh-intelligence/navdb/internal/seeddata"
	"github.com/mesh-intelligence/navdb/pkg/types"
)

const (
	insertMenu    = `INSERT INTO menus (name, "order") VALUES (?, ?)`
	insertSubMenu = `INSERT INTO sub_menus (parent_id, name, "order") VALUES (?, ?, ?)`
	insertCard    = `INSERT INTO cards (menu_id, sub_menu_id, title, url, logo_url, "desc", "order") VALUES (?, ?, ?, ?, ?, ?, ?)`
	insertUser    = `INSERT INTO users (username, password) VALUES (?, ?)`
	insertFriend  = `INSERT INTO friends (title, url, logo) VALUES (?, ?, ?)`
)

// seeder fills empty tables with default content. Each seed method is
// independent of the others and reports into the shared Report.
type seeder struct {
	db     *sql.DB
	log    zerolog.Logger
	data   *seeddata.Set
	admin  AdminOptions
	report *Report
}

// isEmpty reports whether table has no rows. Only names from
// types.StandardTableNames reach this function.
func (s *seeder) isEmpty(ctx context.Context, table string) (bool, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return n == 0, nil
}

// checkEmpty wraps isEmpty with logging and reporting. It returns true when
// the caller should go ahead and seed table.
func (s *seeder) checkEmpty(ctx context.Context, table string) bool {
	empty, err := s.isEmpty(ctx, table)
	if err != nil {
		s.log.Error().Err(err).Str("table", table).Msg("row count failed")
		s.report.addErrors(err)
		return false
	}
	if !empty {
		s.log.Info().Str("table", table).Msg("table has rows, not seeding")
		s.report.record(TableResult{Table: table, Skipped: true})
	}
	return empty
}

// seedHierarchy seeds menus, then sub-menus, then cards. Each phase waits
// for the previous one so children can resolve the ids of their parents.
// A non-empty menus table skips all three phases.
func (s *seeder) seedHierarchy(ctx context.Context) {
	if !s.checkEmpty(ctx, types.MenusTable) {
		s.report.record(TableResult{Table: types.SubMenusTable, Skipped: true})
		s.report.record(TableResult{Table: types.CardsTable, Skipped: true})
		return
	}

	if !s.insertMenus(ctx) {
		return
	}
	menuIDs, err := s.menuIDs(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("reading menu ids failed")
		s.report.addErrors(err)
		return
	}
	subMenus, ok := s.insertSubMenus(ctx, menuIDs)
	if !ok {
		return
	}
	s.insertCards(ctx, menuIDs, subMenus)
}

func (s *seeder) insertMenus(ctx context.Context) bool {
	b, err := prepareBatch(ctx, s.db, s.log, types.MenusTable, insertMenu)
	if err != nil {
		s.report.addErrors(err)
		return false
	}
	for _, m := range s.data.Menus {
		b.insert(ctx, m.Name, m.Name, m.Order)
	}
	s.report.record(b.finalize())
	return true
}

// menuIDs reads back the menu table as a name to id map. Rows are read in
// display order, so with duplicate names the menu ordered last wins.
func (s *seeder) menuIDs(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM menus ORDER BY "order", id`)
	if err != nil {
		return nil, fmt.Errorf("query menus: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]int64)
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		ids[name] = id
	}
	return ids, rows.Err()
}

func (s *seeder) insertSubMenus(ctx context.Context, menuIDs map[string]int64) (*subMenuIndex, bool) {
	b, err := prepareBatch(ctx, s.db, s.log, types.SubMenusTable, insertSubMenu)
	if err != nil {
		s.report.addErrors(err)
		return nil, false
	}
	idx := newSubMenuIndex()
	for _, sm := range s.data.SubMenus {
		label := types.SubMenuKey(sm.Menu, sm.Name)
		parentID, ok := menuIDs[sm.Menu]
		if !ok {
			b.skip(label, fmt.Errorf("parent %q: %w", sm.Menu, types.ErrMenuNotFound))
			continue
		}
		if id, ok := b.insert(ctx, label, parentID, sm.Name, sm.Order); ok {
			idx.add(sm.Menu, sm.Name, id)
		}
	}
	s.report.record(b.finalize())
	return idx, true
}

func (s *seeder) insertCards(ctx context.Context, menuIDs map[string]int64, subMenus *subMenuIndex) {
	b, err := prepareBatch(ctx, s.db, s.log, types.CardsTable, insertCard)
	if err != nil {
		s.report.addErrors(err)
		return
	}
	for _, c := range s.data.Cards {
		var (
			menuID, subMenuID any
			label             string
		)
		if c.SubMenu != "" {
			label = types.SubMenuKey(c.Menu, c.SubMenu) + "/" + c.Title
			id, err := subMenus.resolve(c.Menu, c.SubMenu)
			if err != nil {
				b.skip(label, err)
				continue
			}
			subMenuID = id
		} else {
			label = c.Menu + "/" + c.Title
			id, ok := menuIDs[c.Menu]
			if !ok {
				b.skip(label, fmt.Errorf("menu %q: %w", c.Menu, types.ErrMenuNotFound))
				continue
			}
			menuID = id
		}
		b.insert(ctx, label, menuID, subMenuID, c.Title, c.URL, c.LogoURL, c.Desc, c.Order)
	}
	s.report.record(b.finalize())
}

// seedAdmin creates the administrator account when users is empty.
func (s *seeder) seedAdmin(ctx context.Context) {
	if !s.checkEmpty(ctx, types.UsersTable) {
		return
	}

	var err error
	switch {
	case s.admin.Username == "":
		err = types.ErrAdminUsernameEmpty
	case s.admin.Password == "":
		err = types.ErrAdminPasswordEmpty
	}
	if err != nil {
		s.log.Error().Err(err).Msg("admin account not seeded")
		s.report.record(TableResult{Table: types.UsersTable, Err: err})
		return
	}

	hash, err := password.Hash(s.admin.Password, s.admin.Cost)
	if err != nil {
		s.log.Error().Err(err).Msg("hashing admin password failed")
		s.report.record(TableResult{Table: types.UsersTable, Err: err})
		return
	}

	if _, err := s.db.ExecContext(ctx, insertUser, s.admin.Username, hash); err != nil {
		err = fmt.Errorf("insert admin %q: %w", s.admin.Username, err)
		s.log.Error().Err(err).Msg("admin account not seeded")
		s.report.record(TableResult{Table: types.UsersTable, Err: err})
		return
	}
	s.log.Info().Str("username", s.admin.Username).Msg("admin account created")
	s.report.record(TableResult{Table: types.UsersTable, Inserted: 1})
}

// seedFriends inserts the default friend links when friends is empty.
func (s *seeder) seedFriends(ctx context.Context) {
	if !s.checkEmpty(ctx, types.FriendsTable) {
		return
	}
	b, err := prepareBatch(ctx, s.db, s.log, types.FriendsTable, insertFriend)
	if err != nil {
		s.report.addErrors(err)
		return
	}
	for _, f := range s.data.Friends {
		b.insert(ctx, f.Title, f.Title, f.URL, f.Logo)
	}
	s.report.record(b.finalize())
}

// subMenuRef identifies a sub-menu by its parent menu name and its own name.
type subMenuRef struct {
	menu string
	name string
}

// subMenuIndex maps seeded sub-menus to their assigned ids.
type subMenuIndex struct {
	ids    map[subMenuRef]int64
	byName map[string][]subMenuRef
}

func newSubMenuIndex() *subMenuIndex {
	return &subMenuIndex{
		ids:    make(map[subMenuRef]int64),
		byName: make(map[string][]subMenuRef),
	}
}

func (x *subMenuIndex) add(menu, name string, id int64) {
	ref := subMenuRef{menu: menu, name: name}
	if _, ok := x.ids[ref]; !ok {
		x.byName[name] = append(x.byName[name], ref)
	}
	x.ids[ref] = id
}

// resolve finds the sub-menu name under menu. With an empty menu the name
// alone must identify a single sub-menu.
func (x *subMenuIndex) resolve(menu, name string) (int64, error) {
	if menu != "" {
		id, ok := x.ids[subMenuRef{menu: menu, name: name}]
		if !ok {
			return 0, fmt.Errorf("%q: %w", types.SubMenuKey(menu, name), types.ErrSubMenuNotFound)
		}
		return id, nil
	}
	refs := x.byName[name]
	switch len(refs) {
	case 0:
		return 0, fmt.Errorf("%q: %w", name, types.ErrSubMenuNotFound)
	case 1:
		return x.ids[refs[0]], nil
	default:
		return 0, fmt.Errorf("%q under %d menus: %w", name, len(refs), types.ErrAmbiguousSubMenu)
	}
}
