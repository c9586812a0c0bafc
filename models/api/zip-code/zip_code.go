package zipcodeapimodels

import (
	"time"

	dbmodels "zip-codes-backend/models/db"
)

// EmptyObject отдается вместо незагруженной одиночной связи
type EmptyObject struct{}

type FederalEntityView struct {
	ID        uint      `json:"id"`
	Key       int       `json:"key"`
	Name      string    `json:"name"`
	Code      *string   `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MunicipalityView struct {
	ID              uint      `json:"id"`
	Key             int       `json:"key"`
	Name            string    `json:"name"`
	FederalEntityID uint      `json:"federal_entity_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SettlementTypeView struct {
	ID   uint   `json:"id"`
	Key  int    `json:"key"`
	Name string `json:"name"`
}

type SettlementView struct {
	ID               uint        `json:"id"`
	Key              int         `json:"key"`
	Name             string      `json:"name"`
	ZoneType         *string     `json:"zone_type"`
	SettlementTypeID uint        `json:"settlement_type_id"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
	SettlementType   interface{} `json:"settlement_type" swaggertype:"object"` // SettlementTypeView или {}
}

type ZipCodeView struct {
	ID              uint             `json:"id"`
	ZipCode         string           `json:"zip_code"`
	Locality        *string          `json:"locality"`
	FederalEntityID uint             `json:"federal_entity_id"`
	MunicipalityID  uint             `json:"municipality_id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       *time.Time       `json:"deleted_at"`
	FederalEntity   interface{}      `json:"federal_entity" swaggertype:"object"` // FederalEntityView или {}
	Municipality    interface{}      `json:"municipality" swaggertype:"object"`   // MunicipalityView или {}
	Settlements     []SettlementView `json:"settlements"`
}

// Convert собирает представление индекса. Связи вне relations не читаются из rec,
// даже если они заполнены, и отдаются пустыми.
func Convert(rec dbmodels.ZipCode, relations Relations) ZipCodeView {
	result := ZipCodeView{
		ID:              rec.ID,
		ZipCode:         rec.ZipCode,
		Locality:        rec.Locality,
		FederalEntityID: rec.FederalEntityID,
		MunicipalityID:  rec.MunicipalityID,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
		FederalEntity:   EmptyObject{},
		Municipality:    EmptyObject{},
		Settlements:     []SettlementView{},
	}
	if rec.DeletedAt.Valid {
		deletedAt := rec.DeletedAt.Time
		result.DeletedAt = &deletedAt
	}
	if relations.Has(RelationFederalEntity) && rec.FederalEntity.ID != 0 {
		result.FederalEntity = FederalEntityConvert(rec.FederalEntity)
	}
	if relations.Has(RelationMunicipality) && rec.Municipality.ID != 0 {
		result.Municipality = MunicipalityConvert(rec.Municipality)
	}
	if relations.Has(RelationSettlements) {
		for _, settlement := range rec.Settlements {
			result.Settlements = append(result.Settlements, SettlementConvert(settlement))
		}
	}
	return result
}

func FederalEntityConvert(rec dbmodels.FederalEntity) FederalEntityView {
	return FederalEntityView{
		ID:        rec.ID,
		Key:       rec.Key,
		Name:      rec.Name,
		Code:      rec.Code,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func MunicipalityConvert(rec dbmodels.Municipality) MunicipalityView {
	return MunicipalityView{
		ID:              rec.ID,
		Key:             rec.Key,
		Name:            rec.Name,
		FederalEntityID: rec.FederalEntityID,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

func SettlementConvert(rec dbmodels.Settlement) SettlementView {
	result := SettlementView{
		ID:               rec.ID,
		Key:              rec.Key,
		Name:             rec.Name,
		ZoneType:         rec.ZoneType,
		SettlementTypeID: rec.SettlementTypeID,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
		SettlementType:   EmptyObject{},
	}
	if rec.SettlementType.ID != 0 {
		result.SettlementType = SettlementTypeView{
			ID:   rec.SettlementType.ID,
			Key:  rec.SettlementType.Key,
			Name: rec.SettlementType.Name,
		}
	}
	return result
}
