package model

// Setting 运行时可由管理员修改的站点设置
type Setting struct {
	Key       string `json:"key" gorm:"primaryKey;size:100"`
	Value     string `json:"value" gorm:"type:text"`
	Desc      string `json:"desc"`
	Category  string `json:"category" gorm:"size:50"`
	Sensitive bool   `json:"sensitive" gorm:"default:false"`
}
