package service

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/hannahbenyin498-lang/inventory-system/internal/model"
	"github.com/hannahbenyin498-lang/inventory-system/internal/repository"
	"github.com/hannahbenyin498-lang/inventory-system/internal/stock"

	"gorm.io/gorm"
)

// ConflictPolicy decides what happens to rows that match an existing
// product. It is resolved once per import, on the first conflict, and
// applies to every conflicting row after that.
type ConflictPolicy int

const (
	// PolicyAsk defers the decision to the PolicyDecider on the first
	// conflict encountered.
	PolicyAsk ConflictPolicy = iota
	PolicyUpdate
	PolicySkip
)

// PolicyDecider supplies the one-time conflict decision for PolicyAsk.
// Returning an error (or PolicyAsk again) aborts the import.
type PolicyDecider func() (ConflictPolicy, error)

// ImportSummary counts always satisfy:
// Imported + Updated + Skipped + Invalid == rows processed.
type ImportSummary struct {
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Invalid  int `json:"invalid"`
}

type CSVService interface {
	ImportCSV(r io.Reader, policy ConflictPolicy, decide PolicyDecider) (*ImportSummary, error)
	ExportCSV(w io.Writer) error
}

type csvService struct {
	productRepo   repository.ProductRepository
	thresholdRepo repository.ThresholdRepository
	db            *gorm.DB
}

func NewCSVService(pRepo repository.ProductRepository, tRepo repository.ThresholdRepository, db *gorm.DB) CSVService {
	return &csvService{
		productRepo:   pRepo,
		thresholdRepo: tRepo,
		db:            db,
	}
}

// ImportCSV runs the two-phase import: rows are parsed and classified
// with no I/O, then applied inside a single DB transaction. An aborted
// policy decision rolls back the whole import, so the summary never
// describes a half-applied file.
func (s *csvService) ImportCSV(r io.Reader, policy ConflictPolicy, decide PolicyDecider) (*ImportSummary, error) {
	rows, err := stock.ReadRows(r)
	if err != nil {
		return nil, err
	}
	summary := &ImportSummary{}
	if len(rows) == 0 {
		return summary, nil
	}

	snap, err := s.thresholdRepo.Snapshot()
	if err != nil {
		return nil, err
	}
	existingIDs, skuIndex, err := s.productRepo.IDAndSKUIndex()
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, raw := range rows {
			row := stock.Classify(raw, existingIDs, skuIndex)

			switch row.Kind {
			case stock.RowInvalid:
				summary.Invalid++

			case stock.RowConflict:
				if policy == PolicyAsk {
					if decide == nil {
						return ErrImportAborted
					}
					chosen, err := decide()
					if err != nil || chosen == PolicyAsk {
						return ErrImportAborted
					}
					policy = chosen
				}
				if policy == PolicySkip {
					summary.Skipped++
					continue
				}
				// The overwrite deliberately excludes sku: an id-matched
				// row carrying another product's sku must not rename it
				// onto this record and create a duplicate.
				status := stock.Derive(row.Quantity, row.Category, snap)
				updates := map[string]interface{}{
					"name":     row.Name,
					"category": row.Category,
					"quantity": row.Quantity,
					"price":    row.Price,
					"status":   status,
				}
				if row.Image != "" {
					updates["image"] = row.Image
				}
				if err := tx.Model(&model.Product{}).Where("id = ?", row.MatchID).Updates(updates).Error; err != nil {
					return err
				}
				summary.Updated++

			case stock.RowNew:
				product := model.Product{
					SKU:      row.SKU,
					Name:     row.Name,
					Category: row.Category,
					Quantity: row.Quantity,
					Price:    row.Price,
					Status:   stock.Derive(row.Quantity, row.Category, snap),
					Image:    row.Image,
				}
				if err := tx.Create(&product).Error; err != nil {
					return err
				}
				summary.Imported++
				// Later rows in the same file may reference this product.
				existingIDs[product.ID] = true
				if row.SKU != "" {
					skuIndex[row.SKU] = product.ID
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// ExportCSV writes the full inventory in the canonical column order.
// Image is an empty string when absent.
func (s *csvService) ExportCSV(w io.Writer) error {
	var products []model.Product
	if err := s.db.Order("id").Find(&products).Error; err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "sku", "name", "category", "quantity", "price", "status", "image"}); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.SKU,
			p.Name,
			p.Category,
			strconv.Itoa(p.Quantity),
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			string(p.Status),
			p.Image,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
