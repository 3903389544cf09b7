package types

// Standard table names.
const (
	MenusTable    = "menus"
	SubMenusTable = "sub_menus"
	CardsTable    = "cards"
	UsersTable    = "users"
	AdsTable      = "ads"
	FriendsTable  = "friends"
)

// StandardTableNames lists all standard table names in dependency order:
// parents come before the tables that reference them.
var StandardTableNames = []string{
	MenusTable,
	SubMenusTable,
	CardsTable,
	UsersTable,
	AdsTable,
	FriendsTable,
}
