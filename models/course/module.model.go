package course

import "gorm.io/gorm"

// CourseModule is a unit of content within a course.
// ModuleOrder is a display sort key; it is not required to be contiguous or
// unique, so listings order by (module_order, id) for a deterministic result.
type CourseModule struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	ModuleOrder int    `json:"module_order" gorm:"default:0"`
	IsDeleted   bool   `json:"is_deleted" gorm:"default:false"`
}
