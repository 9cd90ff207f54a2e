package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pairbond_backend/internal/model"
	"pairbond_backend/internal/repository"
	"pairbond_backend/internal/util"
	"pairbond_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultCommentLimit = 50

// JournalService 情侣日记服务
type JournalService struct {
	journalRepo *repository.JournalRepository
	relRepo     *repository.RelationshipRepository
	settingRepo *repository.AppSettingRepository
	storage     *StorageService
}

func NewJournalService(
	journalRepo *repository.JournalRepository,
	relRepo *repository.RelationshipRepository,
	settingRepo *repository.AppSettingRepository,
	storage *StorageService,
) *JournalService {
	return &JournalService{
		journalRepo: journalRepo,
		relRepo:     relRepo,
		settingRepo: settingRepo,
		storage:     storage,
	}
}

type CreateJournalRequest struct {
	RelationshipID uint      `form:"relationshipId" json:"relationshipId" binding:"required"`
	Type           string    `form:"type" json:"type" binding:"required"`
	Title          string    `form:"title" json:"title"`
	ColorCode      string    `form:"colorCode" json:"colorCode"`
	DateTime       time.Time `form:"dateTime" json:"dateTime" time_format:"2006-01-02T15:04:05Z07:00"`
	Lat            float64   `form:"lat" json:"lat"`
	Long           float64   `form:"long" json:"long"`
	Location       string    `form:"location" json:"location"`
	Description    string    `form:"description" json:"description"`
}

// JournalDetail 日记条目及评论数
type JournalDetail struct {
	model.Journal
	CommentCount int64                  `json:"commentCount"`
	Comments     []model.JournalComment `json:"comments,omitempty"`
}

// Create 创建日记条目，图片与视频可选。视频会抽取首帧缩略图
func (s *JournalService) Create(ctx context.Context, req *CreateJournalRequest, images []*multipart.FileHeader, video *multipart.FileHeader) (*model.Journal, error) {
	if _, err := s.relRepo.FindByID(req.RelationshipID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrRelationshipNotFound
		}
		return nil, err
	}

	j := &model.Journal{
		RelationshipID: req.RelationshipID,
		Type:           model.JournalType(req.Type),
		Title:          req.Title,
		ColorCode:      req.ColorCode,
		DateTime:       req.DateTime,
		Lat:            req.Lat,
		Long:           req.Long,
		Location:       req.Location,
		Description:    req.Description,
	}
	if j.DateTime.IsZero() {
		j.DateTime = time.Now()
	}

	urls, err := s.uploadImages(ctx, req.RelationshipID, images)
	if err != nil {
		return nil, err
	}
	j.Images = strings.Join(urls, ",")

	if video != nil {
		videoURL, thumbURL, err := s.uploadVideo(ctx, req.RelationshipID, video)
		if err != nil {
			return nil, err
		}
		j.VideoURL = videoURL
		j.VideoThumb = thumbURL
	}

	if err := s.journalRepo.Create(j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *JournalService) uploadImages(ctx context.Context, relationshipID uint, images []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		if !util.IsImage(img.Header.Get("Content-Type")) {
			return nil, util.ErrInvalidFileType
		}
		src, err := img.Open()
		if err != nil {
			return nil, err
		}
		ext := filepath.Ext(img.Filename)
		filename := fmt.Sprintf("journals/%d/%d%s", relationshipID, time.Now().UnixNano(), ext)
		url, err := s.storage.Upload(ctx, filename, src, img.Size, img.Header.Get("Content-Type"))
		src.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// uploadVideo 视频先落临时文件供 ffmpeg 抽帧，再转存到存储后端
func (s *JournalService) uploadVideo(ctx context.Context, relationshipID uint, video *multipart.FileHeader) (string, string, error) {
	if !util.IsVideo(video.Header.Get("Content-Type")) {
		return "", "", util.ErrInvalidFileType
	}

	ext := strings.ToLower(filepath.Ext(video.Filename))
	allowed := false
	for _, e := range util.AllowedVideoExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", "", util.ErrInvalidFileType
	}

	src, err := video.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()
	tmp, err := os.CreateTemp("", "journal_video_*"+ext)
	if err != nil {
		return "", "", err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.ReadFrom(src); err != nil {
		tmp.Close()
		return "", "", err
	}
	tmp.Close()

	// 深度校验文件头，扩展名可以伪造
	f, err := os.Open(tmpPath)
	if err != nil {
		return "", "", err
	}
	_, mimeErr := util.ValidateMimeType(f, []string{util.MimeVideo})
	f.Close()
	if mimeErr != nil {
		return "", "", util.ErrInvalidFileType
	}

	if info, err := util.GetVideoInfo(tmpPath); err == nil {
		logger.Log.Info("日记视频上传",
			zap.Uint("relationshipId", relationshipID),
			zap.Float64("duration", info.Duration),
			zap.Int("width", info.Width),
			zap.Int("height", info.Height))
	}

	base := fmt.Sprintf("journals/%d/%d", relationshipID, time.Now().UnixNano())
	videoURL, err := s.storage.UploadFile(ctx, base+ext, tmpPath, video.Header.Get("Content-Type"))
	if err != nil {
		return "", "", err
	}

	thumbPath := tmpPath + "_thumb.jpg"
	thumbURL := ""
	if err := util.ExtractVideoThumbnail(tmpPath, thumbPath); err != nil {
		// 缩略图失败不阻断保存
		logger.Log.Warn("视频缩略图抽取失败", zap.Error(err))
	} else {
		defer os.Remove(thumbPath)
		thumbURL, err = s.storage.UploadFile(ctx, base+"_thumb.jpg", thumbPath, "image/jpeg")
		if err != nil {
			return "", "", err
		}
	}
	return videoURL, thumbURL, nil
}

func (s *JournalService) GetByID(id uint) (*JournalDetail, error) {
	j, err := s.journalRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrJournalNotFound
		}
		return nil, err
	}

	comments, err := s.journalRepo.FindComments(id)
	if err != nil {
		return nil, err
	}
	return &JournalDetail{Journal: *j, CommentCount: int64(len(comments)), Comments: comments}, nil
}

// ListByRelationship 关系下的日记条目，可按类型过滤
func (s *JournalService) ListByRelationship(relationshipID uint, journalType *string) ([]JournalDetail, error) {
	var t *model.JournalType
	if journalType != nil && *journalType != "" {
		jt := model.JournalType(*journalType)
		t = &jt
	}
	journals, err := s.journalRepo.FindByRelationship(relationshipID, t)
	if err != nil {
		return nil, err
	}

	details := make([]JournalDetail, 0, len(journals))
	for _, j := range journals {
		count, err := s.journalRepo.CountComments(j.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, JournalDetail{Journal: j, CommentCount: count})
	}
	return details, nil
}

// ListDatewise 按日期分组返回全部日记
func (s *JournalService) ListDatewise(relationshipID uint) (map[string][]model.Journal, error) {
	journals, err := s.journalRepo.FindAllDatewise(relationshipID)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]model.Journal)
	for _, j := range journals {
		key := j.DateTime.UTC().Format(util.DateFormat)
		grouped[key] = append(grouped[key], j)
	}
	return grouped, nil
}

func (s *JournalService) Locations(relationshipID uint) ([]string, error) {
	return s.journalRepo.Locations(relationshipID)
}

type UpdateJournalRequest struct {
	Title       *string    `json:"title"`
	ColorCode   *string    `json:"colorCode"`
	DateTime    *time.Time `json:"dateTime"`
	Lat         *float64   `json:"lat"`
	Long        *float64   `json:"long"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
}

func (s *JournalService) Update(id uint, req *UpdateJournalRequest) (*model.Journal, error) {
	j, err := s.journalRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrJournalNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.ColorCode != nil {
		j.ColorCode = *req.ColorCode
	}
	if req.DateTime != nil {
		j.DateTime = *req.DateTime
	}
	if req.Lat != nil {
		j.Lat = *req.Lat
	}
	if req.Long != nil {
		j.Long = *req.Long
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if err := s.journalRepo.Update(j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *JournalService) Delete(id uint) error {
	if _, err := s.journalRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrJournalNotFound
		}
		return err
	}
	return s.journalRepo.Delete(id)
}

type CreateCommentRequest struct {
	UserID  uint   `json:"userId" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

// AddComment 添加评论，单条日记的评论数受配置上限约束
func (s *JournalService) AddComment(journalID uint, req *CreateCommentRequest) (*model.JournalComment, error) {
	if _, err := s.journalRepo.FindByID(journalID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrJournalNotFound
		}
		return nil, err
	}

	limit := s.settingRepo.IntValue("journal_comment_limit", defaultCommentLimit)
	count, err := s.journalRepo.CountComments(journalID)
	if err != nil {
		return nil, err
	}
	if count >= int64(limit) {
		return nil, util.ErrCommentLimitReached
	}

	comment := &model.JournalComment{
		JournalID: journalID,
		UserID:    req.UserID,
		Comment:   req.Comment,
	}
	if err := s.journalRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *JournalService) ListComments(journalID uint) ([]model.JournalComment, error) {
	return s.journalRepo.FindComments(journalID)
}
