package zipcodeapimodels

// Relation связанная сущность почтового индекса, которую нужно загрузить и отдать в ответе
type Relation string

const (
	RelationFederalEntity Relation = "federal_entity"
	RelationMunicipality  Relation = "municipality"
	RelationSettlements   Relation = "settlements"
)

// Relations набор загружаемых связей. Связь вне набора отдается пустой ({} или []).
type Relations map[Relation]bool

func NewRelations(list ...Relation) Relations {
	result := Relations{}
	for _, rel := range list {
		result[rel] = true
	}
	return result
}

func AllRelations() Relations {
	return NewRelations(RelationFederalEntity, RelationMunicipality, RelationSettlements)
}

func (r Relations) Has(rel Relation) bool {
	return r[rel]
}
