package models

// Option is one entry in a named lookup list (courses, reasons, ...).
// Tickets copy the chosen text value instead of referencing the row, so
// editing a list never rewrites history. Duplicate values within a list
// are allowed.
type Option struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	TableName string `json:"table_name" gorm:"type:varchar(50);not null;index"`
	Nome      string `json:"nome" gorm:"type:varchar(150);not null"`
}
