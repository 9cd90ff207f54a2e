package service

import (
	"testing"
	"time"

	"pairbond_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDaysTogether(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rel := &model.Relationship{StartedAt: &started}
	assert.Equal(t, 10, DaysTogether(rel, now))

	// 当天开始计为第1天
	today := now.Add(-2 * time.Hour)
	rel = &model.Relationship{StartedAt: &today}
	assert.Equal(t, 1, DaysTogether(rel, now))

	// 没有开始时间
	assert.Equal(t, 0, DaysTogether(&model.Relationship{}, now))

	// 开始时间在未来也不会小于1
	future := now.Add(48 * time.Hour)
	rel = &model.Relationship{StartedAt: &future}
	assert.Equal(t, 1, DaysTogether(rel, now))
}
