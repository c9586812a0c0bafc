package sepomex

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Колонки каталога почтовых индексов SEPOMEX (CPdescarga)
const (
	ColZipCode            = "d_codigo"
	ColSettlementName     = "d_asenta"
	ColSettlementTypeName = "d_tipo_asenta"
	ColMunicipalityName   = "D_mnpio"
	ColFederalEntityName  = "d_estado"
	ColCity               = "d_ciudad"
	ColFederalEntityKey   = "c_estado"
	ColSettlementTypeKey  = "c_tipo_asenta"
	ColMunicipalityKey    = "c_mnpio"
	ColSettlementKey      = "id_asenta_cpcons"
	ColZoneType           = "d_zona"
)

var requiredColumns = []string{
	ColZipCode,
	ColSettlementName,
	ColSettlementTypeName,
	ColMunicipalityName,
	ColFederalEntityName,
	ColFederalEntityKey,
	ColSettlementTypeKey,
	ColMunicipalityKey,
	ColSettlementKey,
}

// Record одна строка каталога: населенный пункт с его индексом, муниципалитетом и штатом.
type Record struct {
	ZipCode            string
	SettlementKey      int
	SettlementName     string
	SettlementTypeKey  int
	SettlementTypeName string
	ZoneType           string
	MunicipalityKey    int
	MunicipalityName   string
	FederalEntityKey   int
	FederalEntityName  string
	City               string
}

type columns map[string]int

// isHeader строка заголовка начинается с d_codigo, все что выше (примечание SEPOMEX) пропускается
func isHeader(row []string) bool {
	return len(row) > 0 && strings.TrimSpace(strings.TrimPrefix(row[0], "\ufeff")) == ColZipCode
}

func newColumns(header []string) (columns, error) {
	cols := columns{}
	for idx, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = idx
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, errors.Errorf("в заголовке отсутствует колонка %s", name)
		}
	}
	return cols, nil
}

func (c columns) value(row []string, name string) string {
	idx, ok := c[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (c columns) intValue(row []string, name string) (int, error) {
	value := c.value(row, name)
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "некорректное значение %s: %q", name, value)
	}
	return result, nil
}

func (c columns) parse(row []string) (rec Record, err error) {
	rec = Record{
		ZipCode:            c.value(row, ColZipCode),
		SettlementName:     c.value(row, ColSettlementName),
		SettlementTypeName: c.value(row, ColSettlementTypeName),
		ZoneType:           c.value(row, ColZoneType),
		MunicipalityName:   c.value(row, ColMunicipalityName),
		FederalEntityName:  c.value(row, ColFederalEntityName),
		City:               c.value(row, ColCity),
	}
	if rec.ZipCode == "" {
		return Record{}, errors.New("пустой почтовый индекс")
	}
	if rec.SettlementKey, err = c.intValue(row, ColSettlementKey); err != nil {
		return Record{}, err
	}
	if rec.SettlementTypeKey, err = c.intValue(row, ColSettlementTypeKey); err != nil {
		return Record{}, err
	}
	if rec.MunicipalityKey, err = c.intValue(row, ColMunicipalityKey); err != nil {
		return Record{}, err
	}
	if rec.FederalEntityKey, err = c.intValue(row, ColFederalEntityKey); err != nil {
		return Record{}, err
	}
	return rec, nil
}
