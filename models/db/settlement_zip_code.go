package dbmodels

// SettlementZipCode связь населенных пунктов и индексов.
// Суррогатный ИД плюс уникальность пары (settlement_id, zip_code_id): дубли пар не допускаются.
type SettlementZipCode struct {
	ID           uint `gorm:"primaryKey;autoIncrement"`
	SettlementID uint `gorm:"not null;uniqueIndex:idx_settlement_zip_code"`
	ZipCodeID    uint `gorm:"not null;uniqueIndex:idx_settlement_zip_code"`
}

func (SettlementZipCode) TableName() string {
	return "settlement_zip_code"
}
