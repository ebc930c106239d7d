// Package model holds the administrative unit records shown by the table.
package model

import "strconv"

// Levels of administrative units
const (
	LevelProvince = "tỉnh"
	LevelCity     = "thành phố"
	LevelDistrict = "huyện"
	LevelWard     = "xã"
)

// AdminUnit is one administrative unit. ParentID is 0 for top-level units.
type AdminUnit struct {
	ID       int64  `json:"id"`
	Name     string `json:"ten"`
	Level    string `json:"cap"`
	ParentID int64  `json:"parent_id"`
}

// Key returns the ID as text, for use in route queries
func (u AdminUnit) Key() string {
	return strconv.FormatInt(u.ID, 10)
}

// IsRoot reports whether the unit has no parent
func (u AdminUnit) IsRoot() bool {
	return u.ParentID == 0
}

// DemoDistricts returns the two districts the table shows before any data
// has been loaded.
func DemoDistricts() []AdminUnit {
	return []AdminUnit{
		{ID: 1, Name: "Cau Giay", Level: LevelDistrict},
		{ID: 2, Name: "Tay Ho", Level: LevelDistrict},
	}
}

// DemoWards returns a few wards under the demo districts, used to seed an
// empty database.
func DemoWards() []AdminUnit {
	return []AdminUnit{
		{ID: 101, Name: "Dich Vong", Level: LevelWard, ParentID: 1},
		{ID: 102, Name: "Mai Dich", Level: LevelWard, ParentID: 1},
		{ID: 103, Name: "Nghia Do", Level: LevelWard, ParentID: 1},
		{ID: 201, Name: "Buoi", Level: LevelWard, ParentID: 2},
		{ID: 202, Name: "Quang An", Level: LevelWard, ParentID: 2},
	}
}
