package model

type State struct {
	BaseModel
	Name string `gorm:"type:varchar(64);not null" json:"name"`
}

type City struct {
	BaseModel
	Name    string `gorm:"type:varchar(64);not null" json:"name"`
	StateID uint   `gorm:"not null;index" json:"state_id"`
	State   *State `json:"state,omitempty"`
}
