package models

type Question struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	OrderNum int      `gorm:"not null;index" json:"order_num"`
	Text     string   `gorm:"type:text;not null" json:"text"`
	Options  []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}
