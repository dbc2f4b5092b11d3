package models

type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:50;not null"`
	Description string `gorm:"size:100"`
	Completed   bool   `gorm:"default:false"`
	// วันที่เก็บเป็น string รูปแบบ YYYY-MM-DD (เทียบลำดับแบบ lexical ได้เลย)
	StartDate        string  `gorm:"size:10;not null"`
	EndDate          *string `gorm:"size:10"`
	AssignedPersonID uint    `gorm:"not null;index"`

	// Relations
	AssignedPerson Person `gorm:"foreignKey:AssignedPersonID"`
}

func (Task) TableName() string {
	return "tasks"
}
