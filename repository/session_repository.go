package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jooseppp/soveldaja-kassa-front/entity"
)

// Key under which the selected register id is persisted across restarts.
const selectedRegisterKey = "selectedRegisterId"

type SessionRepository struct{ DB *gorm.DB }

func NewSessionRepository(db *gorm.DB) *SessionRepository { return &SessionRepository{DB: db} }

// SelectedRegisterID returns the persisted register id as a string, or ""
// when no register has been selected on this terminal.
func (r *SessionRepository) SelectedRegisterID() (string, error) {
	var row entity.TerminalState
	err := r.DB.First(&row, "key = ?", selectedRegisterKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

func (r *SessionRepository) SaveSelectedRegister(id string) error {
	return r.DB.Save(&entity.TerminalState{Key: selectedRegisterKey, Value: id}).Error
}

func (r *SessionRepository) Clear() error {
	return r.DB.Delete(&entity.TerminalState{}, "key = ?", selectedRegisterKey).Error
}
