package models

type Operational struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Hari     string `gorm:"size:20" json:"hari"`
	JamBuka  string `gorm:"size:10" json:"jam_buka"`
	JamTutup string `gorm:"size:10" json:"jam_tutup"`
}
