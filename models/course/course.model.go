package course

import "gorm.io/gorm"

// Course represents a marketplace course listing
type Course struct {
	gorm.Model
	CreatorID               uint    `json:"creator_id" gorm:"index;not null"` // Provider user ID
	Name                    string  `json:"name" gorm:"not null"`
	Description             string  `json:"description" gorm:"type:text"`
	Price                   float64 `json:"price" gorm:"default:0"`
	MaxCapacity             int     `json:"max_capacity" gorm:"default:0"` // 0 means unlimited
	Category                string  `json:"category" gorm:"default:''"`
	Source                  string  `json:"source" gorm:"default:'internal'"` // internal, external
	ExternalReferenceNumber string  `json:"external_reference_number" gorm:"default:''"`
	TrainingProviderAlias   string  `json:"training_provider_alias" gorm:"default:''"`
	TotalTrainingHours      float64 `json:"total_training_hours" gorm:"default:0"`
	TotalCost               float64 `json:"total_cost" gorm:"default:0"`
	TileImageURL            string  `json:"tile_image_url" gorm:"default:''"`
	IsDeleted               bool    `json:"is_deleted" gorm:"default:false"`
}
