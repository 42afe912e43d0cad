package unit

// Unit is a measure items and recipes are expressed in. The engine treats
// unit ids as opaque; names exist for display only.
type Unit struct {
	UnitID   int64  `json:"unit_id"`
	Singular string `json:"sing"`
	Plural   string `json:"plur"`
}
