package dataprocessing

import (
	"encoding/csv"
	"io"
	"os"

	apperrors "paycli/internal/errors"
	"paycli/pkg/contracts/domain"
)

// ParseDatFile reads one tab-delimited .dat file. The first line is the
// header, every following line a data row split on tabs. Rows may be ragged;
// field-count problems are the merger's concern, not the reader's.
func ParseDatFile(path string) (*domain.DatFile, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewFileNotFoundError(path, err)
		}
		return nil, apperrors.NewReadError(path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		// io.EOF here means the file has no header line at all.
		return nil, apperrors.NewReadError(path, err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewReadError(path, err)
		}
		rows = append(rows, record)
	}

	return &domain.DatFile{
		Path:   path,
		Header: header,
		Rows:   rows,
	}, nil
}
