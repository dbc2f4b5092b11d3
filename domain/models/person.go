package models

type Person struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;uniqueIndex;not null"`

	// Relations
	Tasks []Task `gorm:"foreignKey:AssignedPersonID"`
}

func (Person) TableName() string {
	return "persons"
}
