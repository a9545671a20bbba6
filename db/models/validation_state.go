package models

type ValidationState struct {
	ActionID   string `gorm:"column:action_id;type:text;not null;uniqueIndex:uniq_validation_action"`
	Status     string `gorm:"column:status;type:text;not null;index:idx_validation_status"`
	WarningAck bool   `gorm:"column:warning_ack;not null"`
	IssuesJSON string `gorm:"column:issues_json;type:text"`
	CreatedAt  int64  `gorm:"column:created_at;not null"`
	UpdatedAt  int64  `gorm:"column:updated_at;not null"`
}

func (ValidationState) TableName() string { return "validation_states" }
