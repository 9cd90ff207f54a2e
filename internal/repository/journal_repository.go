package repository

import (
	"pairbond_backend/internal/model"

	"gorm.io/gorm"
)

type JournalRepository struct {
	DB *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{DB: db}
}

func (r *JournalRepository) Create(j *model.Journal) error {
	return r.DB.Create(j).Error
}

func (r *JournalRepository) FindByID(id uint) (*model.Journal, error) {
	var j model.Journal
	err := r.DB.First(&j, id).Error
	return &j, err
}

func (r *JournalRepository) FindByRelationship(relationshipID uint, journalType *model.JournalType) ([]model.Journal, error) {
	var js []model.Journal
	query := r.DB.Where("relationship_id = ?", relationshipID)
	if journalType != nil {
		query = query.Where("type = ?", *journalType)
	}
	err := query.Order("date_time DESC").Find(&js).Error
	return js, err
}

// FindAllDatewise 按日期倒序返回关系的全部日记，供时间线展示
func (r *JournalRepository) FindAllDatewise(relationshipID uint) ([]model.Journal, error) {
	var js []model.Journal
	err := r.DB.Where("relationship_id = ?", relationshipID).
		Order("date_time DESC, id DESC").Find(&js).Error
	return js, err
}

func (r *JournalRepository) Update(j *model.Journal) error {
	return r.DB.Save(j).Error
}

func (r *JournalRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("journal_id = ?", id).Delete(&model.JournalComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Journal{}, id).Error
	})
}

// Locations 返回关系日记中出现过的去重地点
func (r *JournalRepository) Locations(relationshipID uint) ([]string, error) {
	var locations []string
	err := r.DB.Model(&model.Journal{}).
		Where("relationship_id = ? AND location <> ''", relationshipID).
		Distinct("location").
		Pluck("location", &locations).Error
	return locations, err
}

func (r *JournalRepository) CreateComment(c *model.JournalComment) error {
	return r.DB.Create(c).Error
}

func (r *JournalRepository) FindComments(journalID uint) ([]model.JournalComment, error) {
	var cs []model.JournalComment
	err := r.DB.Where("journal_id = ?", journalID).Order("created_at ASC").Find(&cs).Error
	return cs, err
}

func (r *JournalRepository) CountComments(journalID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.JournalComment{}).Where("journal_id = ?", journalID).Count(&count).Error
	return count, err
}
