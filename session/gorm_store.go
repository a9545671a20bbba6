package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/insightloop/governor/db/models"
	"github.com/insightloop/governor/govern"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Save(ctx context.Context, st State) error {
	if s == nil || s.DB == nil {
		return nil
	}
	actionID := strings.TrimSpace(st.ActionID)
	if actionID == "" {
		return nil
	}

	var issuesJSON string
	if len(st.Issues) > 0 {
		b, err := json.Marshal(st.Issues)
		if err != nil {
			return err
		}
		issuesJSON = string(b)
	}

	now := time.Now().Unix()
	row := models.ValidationState{
		ActionID:   actionID,
		Status:     string(st.Status),
		WarningAck: st.WarningAcknowledged,
		IssuesJSON: issuesJSON,
		CreatedAt:  now,
		UpdatedAt:  st.UpdatedAt.Unix(),
	}

	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "action_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "warning_ack", "issues_json", "updated_at",
			}),
		}).
		Create(&row).Error
}

func (s *GormStore) Load(ctx context.Context, actionID string) (State, bool, error) {
	if s == nil || s.DB == nil {
		return State{}, false, nil
	}
	actionID = strings.TrimSpace(actionID)
	if actionID == "" {
		return State{}, false, nil
	}

	var row models.ValidationState
	err := s.DB.WithContext(ctx).Model(&models.ValidationState{}).
		Where("action_id = ?", actionID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return State{}, false, nil
		}
		return State{}, false, err
	}
	return rowToState(row), true, nil
}

func (s *GormStore) LoadAll(ctx context.Context) ([]State, error) {
	if s == nil || s.DB == nil {
		return nil, nil
	}
	var rows []models.ValidationState
	err := s.DB.WithContext(ctx).Model(&models.ValidationState{}).
		Order("updated_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]State, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowToState(r))
	}
	return out, nil
}

func (s *GormStore) Delete(ctx context.Context, actionID string) error {
	if s == nil || s.DB == nil {
		return nil
	}
	actionID = strings.TrimSpace(actionID)
	if actionID == "" {
		return nil
	}
	return s.DB.WithContext(ctx).
		Where("action_id = ?", actionID).
		Delete(&models.ValidationState{}).Error
}

func rowToState(row models.ValidationState) State {
	st := State{
		ActionID:            row.ActionID,
		Status:              govern.Status(row.Status),
		WarningAcknowledged: row.WarningAck,
		UpdatedAt:           time.Unix(row.UpdatedAt, 0).UTC(),
	}
	if strings.TrimSpace(row.IssuesJSON) != "" {
		_ = json.Unmarshal([]byte(row.IssuesJSON), &st.Issues)
	}
	return st
}
