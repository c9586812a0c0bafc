package dbmodels

// Settlement населенный пункт (asentamiento)
type Settlement struct {
	BaseModel
	Key              int     `gorm:"type:smallint;not null;index"` // id_asenta_cpcons
	Name             string  `gorm:"type:varchar(255);not null"`   // d_asenta
	ZoneType         *string `gorm:"type:varchar(50);default:null"`
	SettlementTypeID uint    `gorm:"not null;index"`

	SettlementType SettlementType `gorm:"foreignKey:SettlementTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (Settlement) TableName() string {
	return "settlements"
}
