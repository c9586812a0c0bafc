package dbmodels

// ZipCode почтовый индекс
type ZipCode struct {
	BaseModel
	ZipCode         string  `gorm:"type:varchar(10);not null;index"`
	Locality        *string `gorm:"type:varchar(255);default:null"`
	FederalEntityID uint    `gorm:"not null;index"`
	MunicipalityID  uint    `gorm:"not null;index"`

	FederalEntity FederalEntity `gorm:"foreignKey:FederalEntityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Municipality  Municipality  `gorm:"foreignKey:MunicipalityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Settlements   []Settlement  `gorm:"many2many:settlement_zip_code;"`
}

func (ZipCode) TableName() string {
	return "zip_codes"
}
