package types

// Card is a link tile attached to a Menu or to a SubMenu. Exactly one of
// MenuID and SubMenuID is set for cards created by the seeder.
type Card struct {
	ID             int64  `json:"id"`
	MenuID         *int64 `json:"menu_id,omitempty"`
	SubMenuID      *int64 `json:"sub_menu_id,omitempty"`
	Title          string `json:"title"`
	URL            string `json:"url"`
	LogoURL        string `json:"logo_url,omitempty"`
	CustomLogoPath string `json:"custom_logo_path,omitempty"`
	Desc           string `json:"desc,omitempty"`
	Order          int    `json:"order"`
}

// Parent reports which container the card is attached to. It returns
// ErrCardParent when both or neither of MenuID and SubMenuID are set.
func (c Card) Parent() (table string, id int64, err error) {
	switch {
	case c.MenuID != nil && c.SubMenuID == nil:
		return MenusTable, *c.MenuID, nil
	case c.SubMenuID != nil && c.MenuID == nil:
		return SubMenusTable, *c.SubMenuID, nil
	default:
		return "", 0, ErrCardParent
	}
}
