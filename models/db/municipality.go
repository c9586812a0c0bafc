package dbmodels

// Municipality муниципалитет в составе субъекта федерации
type Municipality struct {
	BaseModel
	Key             int    `gorm:"type:smallint;not null;uniqueIndex:idx_municipality_entity_key"` // c_mnpio
	Name            string `gorm:"type:varchar(255);not null"`                                     // D_mnpio
	FederalEntityID uint   `gorm:"not null;index;uniqueIndex:idx_municipality_entity_key"`

	FederalEntity FederalEntity `gorm:"foreignKey:FederalEntityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (Municipality) TableName() string {
	return "municipalities"
}
