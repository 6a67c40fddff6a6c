package models

type Genre struct {
	ID   uint   `gorm:"primaryKey;autoIncrement:false" json:"id" example:"2"`
	Name string `gorm:"not null;index" json:"name" example:"Thriller"`
}

func (Genre) TableName() string {
	return "genres"
}
