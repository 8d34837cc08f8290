// Package export produces the CSV rendering of the transaction ledger.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/ankitm/fintrack/internal/model"
)

// csvDateLayout is the date format used in exported rows.
const csvDateLayout = "01/02/2006"

// descriptionPlaceholder stands in for transactions without a description.
const descriptionPlaceholder = "N/A"

// WriteCSV writes the full transaction list as a comma-separated table with
// a header row, one row per transaction in ledger order. Amounts are written
// as plain decimals with no currency symbol.
func WriteCSV(w io.Writer, transactions []model.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Date", "Description", "Category", "Type", "Amount"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range transactions {
		description := txn.Description
		if description == "" {
			description = descriptionPlaceholder
		}

		record := []string{
			txn.Date.Format(csvDateLayout),
			description,
			txn.Category,
			string(txn.Type),
			txn.Amount.String(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for transaction %s: %w", txn.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Filename returns the default export filename for a given day.
func Filename(now time.Time) string {
	return fmt.Sprintf("FinTrack_Report_%s.csv", now.Format("2006-01-02"))
}
