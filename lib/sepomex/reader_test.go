package sepomex

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const catalogHeader = "d_codigo|d_asenta|d_tipo_asenta|D_mnpio|d_estado|d_ciudad|d_CP|c_estado|c_oficina|c_CP|c_tipo_asenta|c_mnpio|id_asenta_cpcons|d_zona|c_cve_ciudad"

func TestReadText(t *testing.T) {
	t.Run(`catalog rows check`, func(t *testing.T) {
		data := strings.Join([]string{
			"El Catalogo Nacional de Codigos Postales, es elaborado por Correos de Mexico",
			catalogHeader,
			"06700|Roma Norte|Colonia|Cuauhtémoc|Ciudad de México|Ciudad de México|06001|09|06001||09|015|0001|Urbano|03",
			"06700|Centro|Colonia|Cuauhtémoc|Ciudad de México|Ciudad de México|06001|09|06001||09|015|0002|Urbano|03",
			"",
		}, "\n")
		var list []Record
		err := ReadText(strings.NewReader(data), func(rec Record) error {
			list = append(list, rec)
			return nil
		})
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, Record{
			ZipCode:            "06700",
			SettlementKey:      1,
			SettlementName:     "Roma Norte",
			SettlementTypeKey:  9,
			SettlementTypeName: "Colonia",
			ZoneType:           "Urbano",
			MunicipalityKey:    15,
			MunicipalityName:   "Cuauhtémoc",
			FederalEntityKey:   9,
			FederalEntityName:  "Ciudad de México",
			City:               "Ciudad de México",
		}, list[0])
		require.Equal(t, "Centro", list[1].SettlementName)
		require.Equal(t, 2, list[1].SettlementKey)
	})

	t.Run(`missing header check`, func(t *testing.T) {
		err := ReadText(strings.NewReader("06700|Centro|Colonia\n"), func(rec Record) error {
			return nil
		})
		require.NotNil(t, err)
	})

	t.Run(`bad key check`, func(t *testing.T) {
		data := catalogHeader + "\n06700|Centro|Colonia|Cuauhtémoc|CDMX|CDMX|06001|xx|06001||09|015|0002|Urbano|03\n"
		err := ReadText(strings.NewReader(data), func(rec Record) error {
			return nil
		})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "c_estado")
	})
}

func TestReadWorkbook(t *testing.T) {
	t.Run(`sheet per state check`, func(t *testing.T) {
		f := excelize.NewFile()
		defer f.Close()
		_, err := f.NewSheet("Nota")
		require.Nil(t, err)
		require.Nil(t, f.SetSheetRow("Nota", "A1", &[]interface{}{"El Catalogo Nacional de Codigos Postales"}))

		_, err = f.NewSheet("Aguascalientes")
		require.Nil(t, err)
		header := []interface{}{}
		for _, col := range strings.Split(catalogHeader, "|") {
			header = append(header, col)
		}
		require.Nil(t, f.SetSheetRow("Aguascalientes", "A1", &header))
		require.Nil(t, f.SetSheetRow("Aguascalientes", "A2", &[]interface{}{
			"20000", "Zona Centro", "Colonia", "Aguascalientes", "Aguascalientes", "Aguascalientes",
			"20001", "01", "20001", "", "09", "001", "0001", "Urbano", "01",
		}))
		filePath := filepath.Join(t.TempDir(), "CPdescarga.xlsx")
		require.Nil(t, f.SaveAs(filePath))

		var list []Record
		err = ReadFile(filePath, func(rec Record) error {
			list = append(list, rec)
			return nil
		})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "20000", list[0].ZipCode)
		require.Equal(t, 1, list[0].FederalEntityKey)
		require.Equal(t, "Zona Centro", list[0].SettlementName)
	})
}
