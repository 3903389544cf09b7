package types

import "errors"

// Lookup errors.
var (
	ErrNotFound        = errors.New("entity not found")
	ErrUnknownTable    = errors.New("unknown table")
	ErrCardParent      = errors.New("card must reference exactly one of menu or sub-menu")
	ErrMenuNotFound    = errors.New("menu not found")
	ErrSubMenuNotFound = errors.New("sub-menu not found")
)

// ErrStoreClosed is returned by store operations after Close.
var ErrStoreClosed = errors.New("store is closed")

// ErrAmbiguousSubMenu is returned when a card names a sub-menu without its
// parent menu and more than one parent has a sub-menu of that name.
var ErrAmbiguousSubMenu = errors.New("sub-menu name is ambiguous without its parent menu")

// Seed data errors.
var (
	ErrSeedEmptyName  = errors.New("seed entry has an empty name")
	ErrSeedEmptyTitle = errors.New("seed entry has an empty title")
	ErrSeedEmptyURL   = errors.New("seed entry has an empty url")
)

// Admin account errors.
var (
	ErrAdminUsernameEmpty = errors.New("admin username must not be empty")
	ErrAdminPasswordEmpty = errors.New("admin password must not be empty")
)
