// Package sequencerepo persists the per-day order sequence counters backing
// order identifier allocation.
package sequencerepo

// CounterDTO represents one daily counter row. The day key ("YYMMDD") is
// the primary key; seq holds the last allocated suffix.
type CounterDTO struct {
	Day string `gorm:"type:varchar(6);primaryKey"`
	Seq int64  `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_sequences".
func (CounterDTO) TableName() string {
	return "order_sequences"
}
