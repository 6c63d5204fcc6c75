package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"fjacquet/finstatement/internal/dateutils"
	"fjacquet/finstatement/internal/fileutils"
	"fjacquet/finstatement/internal/models"
)

// transactionRow is the CSV shape of one transaction. Optional fields
// render as empty cells.
type transactionRow struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Balance     string `csv:"balance"`
	Category    string `csv:"category"`
}

func toRows(transactions []models.Transaction) []transactionRow {
	rows := make([]transactionRow, len(transactions))
	for i, tx := range transactions {
		row := transactionRow{
			Date:        dateutils.ToISODate(tx.Date),
			Description: tx.Description,
			Amount:      tx.Amount.String(),
		}
		if tx.Balance != nil {
			row.Balance = tx.Balance.String()
		}
		if tx.Category != nil {
			row.Category = *tx.Category
		}
		rows[i] = row
	}
	return rows
}

// WriteTransactionsCSV writes transactions as CSV, one row per
// transaction in list order.
func WriteTransactionsCSV(transactions []models.Transaction, w io.Writer) error {
	rows := toRows(transactions)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("error writing transactions CSV: %w", err)
	}
	return nil
}

// WriteTransactionsCSVFile writes transactions to a CSV file, creating
// parent directories as needed.
func WriteTransactionsCSVFile(transactions []models.Transaction, path string) error {
	file, err := fileutils.CreateFile(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return WriteTransactionsCSV(transactions, file)
}
