// Package gorm provides GORM model definitions for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DishModel represents the GORM model for catalog dishes
type DishModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	MealType     string    `gorm:"type:varchar(20);not null;index"`
	Calories     int       `gorm:"default:0"`
	ProteinGrams int       `gorm:"default:0"`

	// Categorization
	DietTags     StringSlice `gorm:"type:json"`
	AllergyRisks StringSlice `gorm:"type:json"`
	Region       string      `gorm:"type:varchar(100);index"`

	// Scoring inputs
	AttributeRankings    RankingField `gorm:"type:json"`
	TimeOfDaySuitability StringSlice  `gorm:"type:json"`
	PersonaTags          StringSlice  `gorm:"type:json"`

	// Descriptive content
	CulturalSignificance string      `gorm:"type:text"`
	HealthBenefits       StringSlice `gorm:"type:json"`
	ProteinSourceType    string      `gorm:"type:varchar(50)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (DishModel) TableName() string {
	return "dishes"
}

// BeforeCreate hook for DishModel
func (d *DishModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// RankingField custom type for handling nested ranking tables in JSON
type RankingField map[string]map[string]int

// Scan implements the sql.Scanner interface
func (r *RankingField) Scan(value interface{}) error {
	if value == nil {
		*r = RankingField{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("cannot scan %T into RankingField", value)
	}
}

// Value implements the driver.Valuer interface
func (r RankingField) Value() (driver.Value, error) {
	if len(r) == 0 {
		return "{}", nil
	}
	return json.Marshal(r)
}
