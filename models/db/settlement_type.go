package dbmodels

// SettlementType тип населенного пункта (Colonia, Pueblo, Barrio ...)
type SettlementType struct {
	BaseModel
	Key  int    `gorm:"type:smallint;not null;uniqueIndex"` // c_tipo_asenta
	Name string `gorm:"type:varchar(255);not null"`         // d_tipo_asenta
}

func (SettlementType) TableName() string {
	return "settlement_types"
}
