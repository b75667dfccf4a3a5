package db

import (
	"gorm.io/gorm"
)

// QueryExecutor handles database queries that sit below the GORM model
// layer: raw selects, existence checks and transactions.
type QueryExecutor struct {
	DB *gorm.DB
}

// NewQueryExecutor creates a new instance of QueryExecutor.
func NewQueryExecutor(db *gorm.DB) *QueryExecutor {
	return &QueryExecutor{DB: db}
}

// Select executes a raw select query and returns the results as generic
// rows. Column values keep the driver's native representation, so callers
// must coerce numeric fields themselves.
func (qe *QueryExecutor) Select(query string, args ...interface{}) ([]map[string]interface{}, error) {
	rows, err := qe.DB.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []map[string]interface{}{}
	cols, _ := rows.Columns()
	scanArgs := make([]interface{}, len(cols))
	for rows.Next() {
		rowData := make([]interface{}, len(cols))
		for i := range rowData {
			scanArgs[i] = &rowData[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, err
		}
		record := make(map[string]interface{})
		for i, col := range cols {
			record[col] = rowData[i]
		}
		results = append(results, record)
	}
	return results, rows.Err()
}

// Count returns the number of rows that match the given conditions.
func (qe *QueryExecutor) Count(table string, conditions map[string]interface{}) (int64, error) {
	var count int64
	result := qe.DB.Table(table).Where(conditions).Count(&count)
	return count, result.Error
}

// Exists checks if a record matching the conditions exists.
func (qe *QueryExecutor) Exists(table string, conditions map[string]interface{}) (bool, error) {
	count, err := qe.Count(table, conditions)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Transaction executes a set of operations within a database transaction.
func (qe *QueryExecutor) Transaction(txFunc func(tx *gorm.DB) error) error {
	return qe.DB.Transaction(txFunc)
}
