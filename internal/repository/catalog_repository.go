package repository

import (
	"pairbond_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(c *model.Category) error {
	return r.DB.Create(c).Error
}

func (r *CategoryRepository) FindByID(id uint) (*model.Category, error) {
	var c model.Category
	err := r.DB.First(&c, id).Error
	return &c, err
}

func (r *CategoryRepository) FindAll(activeOnly bool) ([]model.Category, error) {
	var cs []model.Category
	query := r.DB.Order("sort_order ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&cs).Error
	return cs, err
}

func (r *CategoryRepository) Update(c *model.Category) error {
	return r.DB.Save(c).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Category{}, id).Error
}

type TopicRepository struct {
	DB *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{DB: db}
}

func (r *TopicRepository) Create(t *model.Topic) error {
	return r.DB.Create(t).Error
}

func (r *TopicRepository) FindByID(id uint) (*model.Topic, error) {
	var t model.Topic
	err := r.DB.First(&t, id).Error
	return &t, err
}

func (r *TopicRepository) FindActiveByID(id uint) (*model.Topic, error) {
	var t model.Topic
	err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&t).Error
	return &t, err
}

func (r *TopicRepository) FindAll(activeOnly bool) ([]model.Topic, error) {
	var ts []model.Topic
	query := r.DB.Order("sort_order ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&ts).Error
	return ts, err
}

func (r *TopicRepository) Update(t *model.Topic) error {
	return r.DB.Save(t).Error
}

func (r *TopicRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Topic{}, id).Error
}

type SubTopicRepository struct {
	DB *gorm.DB
}

func NewSubTopicRepository(db *gorm.DB) *SubTopicRepository {
	return &SubTopicRepository{DB: db}
}

func (r *SubTopicRepository) Create(st *model.SubTopic) error {
	return r.DB.Create(st).Error
}

func (r *SubTopicRepository) FindByID(id uint) (*model.SubTopic, error) {
	var st model.SubTopic
	err := r.DB.First(&st, id).Error
	return &st, err
}

func (r *SubTopicRepository) FindActiveByID(id uint) (*model.SubTopic, error) {
	var st model.SubTopic
	err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&st).Error
	return &st, err
}

// FindFiltered 按分类/话题筛选启用的子主题；hideAdult 为 true 时过滤成人内容
func (r *SubTopicRepository) FindFiltered(categoryID, topicID *uint, hideAdult bool) ([]model.SubTopic, error) {
	var sts []model.SubTopic
	query := r.DB.Where("is_active = ?", true)
	if hideAdult {
		query = query.Where("adult = ?", false)
	}
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if topicID != nil {
		query = query.Where("topic_id = ?", *topicID)
	}
	err := query.Order("sort_order ASC").Find(&sts).Error
	return sts, err
}

func (r *SubTopicRepository) FindByCategoryID(categoryID uint) ([]model.SubTopic, error) {
	var sts []model.SubTopic
	err := r.DB.Where("category_id = ? AND is_active = ?", categoryID, true).Find(&sts).Error
	return sts, err
}

func (r *SubTopicRepository) Update(st *model.SubTopic) error {
	return r.DB.Save(st).Error
}

func (r *SubTopicRepository) Delete(id uint) error {
	return r.DB.Delete(&model.SubTopic{}, id).Error
}
