package sepomex

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// RecordHandler вызывается для каждой разобранной строки каталога
type RecordHandler func(rec Record) error

// ReadFile читает каталог по расширению файла: .txt (выгрузка SEPOMEX в latin-1), .csv (utf-8) или .xlsx
func ReadFile(filePath string, handler RecordHandler) error {
	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == ".xlsx" {
		return ReadWorkbook(filePath, handler)
	}
	f, err := os.Open(filePath)
	if err != nil {
		return errors.Wrap(err, "ошибка открытия файла")
	}
	defer f.Close()

	var r io.Reader = f
	if ext == ".txt" {
		r = charmap.ISO8859_1.NewDecoder().Reader(f)
	}
	return ReadText(r, handler)
}

// ReadText разбирает выгрузку с разделителем "|"
func ReadText(r io.Reader, handler RecordHandler) error {
	csvReader := csv.NewReader(r)
	csvReader.Comma = '|'
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	var cols columns
	line := 0
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return errors.Wrapf(err, "ошибка чтения строки %d", line)
		}
		if cols, err = handleRow(cols, row, line, handler); err != nil {
			return err
		}
	}
	if cols == nil {
		return errors.New("в файле не найден заголовок каталога")
	}
	return nil
}

// ReadWorkbook разбирает книгу Excel: лист на каждый штат, заголовок в первой строке листа
func ReadWorkbook(filePath string, handler RecordHandler) error {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return errors.Wrap(err, "ошибка открытия книги")
	}
	defer f.Close()

	found := false
	for _, sheet := range f.GetSheetList() {
		rows, err := f.Rows(sheet)
		if err != nil {
			return errors.Wrapf(err, "ошибка чтения листа %s", sheet)
		}
		var cols columns
		line := 0
		for rows.Next() {
			line++
			row, err := rows.Columns()
			if err != nil {
				rows.Close()
				return errors.Wrapf(err, "ошибка чтения листа %s, строка %d", sheet, line)
			}
			if cols, err = handleRow(cols, row, line, handler); err != nil {
				rows.Close()
				return errors.Wrapf(err, "лист %s", sheet)
			}
		}
		rows.Close()
		if cols == nil {
			log.WithField("sheet", sheet).Debug("лист без заголовка каталога пропущен")
			continue
		}
		found = true
	}
	if !found {
		return errors.New("в книге не найден заголовок каталога")
	}
	return nil
}

func handleRow(cols columns, row []string, line int, handler RecordHandler) (columns, error) {
	if cols == nil {
		if !isHeader(row) {
			return nil, nil
		}
		return newColumns(row)
	}
	if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
		return cols, nil
	}
	rec, err := cols.parse(row)
	if err != nil {
		return cols, errors.Wrapf(err, "строка %d", line)
	}
	if err = handler(rec); err != nil {
		return cols, err
	}
	return cols, nil
}
