package types

// Menu is a top-level navigation category.
type Menu struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// SubMenu is a second-level category nested under exactly one Menu.
// Deleting the parent menu deletes the sub-menu.
type SubMenu struct {
	ID       int64  `json:"id"`
	ParentID int64  `json:"parent_id"`
	Name     string `json:"name"`
	Order    int    `json:"order"`
}

// SubMenuKey returns the composite key under which a sub-menu is recorded
// while seeding: the parent menu name and the sub-menu name joined by "_".
func SubMenuKey(menuName, subMenuName string) string {
	return menuName + "_" + subMenuName
}
