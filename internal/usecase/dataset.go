package usecase

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/diazeddy/dataset-api/internal/domain"
)

// DatasetRepository is the persistence the dataset flow needs.
type DatasetRepository interface {
	Insert(ctx context.Context, filename string, size int64, content string) error
	FindAll(ctx context.Context) ([]domain.DatasetMeta, error)
	FindByID(ctx context.Context, id string) (string, error)
	DeleteByID(ctx context.Context, id string) error
}

// DatasetUsecase parses uploaded CSV files into row records and stores
// them as JSON documents.
type DatasetUsecase struct {
	repo DatasetRepository
}

func NewDatasetUsecase(repo DatasetRepository) *DatasetUsecase {
	return &DatasetUsecase{repo: repo}
}

// Upload reads a CSV stream, converts it to a JSON array of row objects
// and persists it under the original filename and reported size. Parse
// and store failures are returned as-is; the handler surfaces either one
// the same way.
func (uc *DatasetUsecase) Upload(ctx context.Context, filename string, size int64, r io.Reader) error {
	records, err := parseCSV(r)
	if err != nil {
		return err
	}

	content, err := json.Marshal(records)
	if err != nil {
		return err
	}

	return uc.repo.Insert(ctx, filename, size, string(content))
}

// List returns metadata for all stored datasets, content excluded.
func (uc *DatasetUsecase) List(ctx context.Context) ([]domain.DatasetMeta, error) {
	return uc.repo.FindAll(ctx)
}

// GetByID returns the JSON content of a stored dataset.
func (uc *DatasetUsecase) GetByID(ctx context.Context, id string) (string, error) {
	return uc.repo.FindByID(ctx, id)
}

// DeleteByID removes a stored dataset. Removing an id that is absent
// still succeeds.
func (uc *DatasetUsecase) DeleteByID(ctx context.Context, id string) error {
	return uc.repo.DeleteByID(ctx, id)
}

// parseCSV turns a CSV stream into an ordered slice of row objects keyed
// by the header columns. All rows must have the header's field count.
func parseCSV(r io.Reader) ([]map[string]any, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty CSV file")
	}

	header := rows[0]
	records := make([]map[string]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]any, len(header))
		for i, column := range header {
			record[column] = typedValue(row[i])
		}
		records = append(records, record)
	}
	return records, nil
}

// typedValue converts a CSV cell to a number when it looks like one,
// keeping the string otherwise.
func typedValue(s string) any {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}
