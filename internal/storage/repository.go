package storage

import "gorm.io/gorm"

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) SaveFetchLog(log *FetchLog) error {
	return r.db.Create(log).Error
}

func (r *Repository) GetRecentFetches(limit int) ([]FetchLog, error) {
	var logs []FetchLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

func (r *Repository) GetLastSuccess() (*FetchLog, error) {
	var log FetchLog
	err := r.db.Where("status = ?", "success").Order("created_at DESC").First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}
