package model

import "time"

// Ski represents one inventory record: one or more physically identical pairs
// sharing brand, model and length, tracked with a quantity and a rental code.
type Ski struct {
	ID         int64  `gorm:"primaryKey" json:"id"`
	Code       string `gorm:"index;size:32" json:"code"` // may be blank for legacy records
	Brand      string `gorm:"size:64;not null" json:"brand"`
	Model      string `gorm:"size:128;not null" json:"model"`
	LengthCM   int    `gorm:"not null" json:"lengthCm"`
	Year       int    `json:"year"`
	Quantity   int    `gorm:"not null;default:1" json:"quantity"`
	LevelLabel string `gorm:"size:16" json:"levelLabel"` // e.g. "4M/5K", "5M", "3"
	Gender     string `gorm:"size:4" json:"gender"`      // M, K or U
	WeightMin  int    `json:"weightMin"`
	WeightMax  int    `json:"weightMax"`
	HeightMin  int    `json:"heightMin"`
	HeightMax  int    `json:"heightMax"`
	Discipline string `gorm:"size:8" json:"discipline"` // SL, G, SLG or OFF
	Perks      string `gorm:"size:64" json:"perks"`     // free-text tag, e.g. "C" for carving

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// HasFitAttributes reports whether the record carries everything the matching
// engine needs. Units failing this are silently excluded from all searches.
func (s *Ski) HasFitAttributes() bool {
	return s.LevelLabel != "" &&
		s.Gender != "" &&
		s.WeightMin != 0 && s.WeightMax != 0 &&
		s.HeightMin != 0 && s.HeightMax != 0 &&
		s.Discipline != ""
}
