package dbmodels

// FederalEntity субъект федерации (штат)
type FederalEntity struct {
	BaseModel
	Key  int     `gorm:"type:smallint;not null;uniqueIndex"` // c_estado
	Name string  `gorm:"type:varchar(255);not null"`         // d_estado
	Code *string `gorm:"type:varchar(10)"`
}

func (FederalEntity) TableName() string {
	return "federal_entities"
}
