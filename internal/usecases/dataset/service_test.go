package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pulsefin/pulse-api/infrastructure/repository/mocks"
	"github.com/pulsefin/pulse-api/internal/domain"
)

func newService(t *testing.T) (DatasetService, *mocks.MockMonthRecordRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMonthRecordRepository(ctrl)
	return NewService(repo), repo
}

func TestSaveRecordNormalizes(t *testing.T) {
	service, repo := newService(t)

	var stored *domain.RawMonthRecord
	repo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(r *domain.RawMonthRecord) error {
		stored = r
		return nil
	})

	// Costs exported from accounting tools often arrive negative.
	err := service.SaveRecord(&domain.RawMonthRecord{
		Period:          "2024-03",
		Revenue:         500000,
		MaterialExpense: -120000,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03", stored.Period)
	assert.Equal(t, 120000.0, stored.MaterialExpense)
}

func TestSaveRecordRejectsBadPeriod(t *testing.T) {
	service, _ := newService(t)

	assert.Error(t, service.SaveRecord(&domain.RawMonthRecord{Period: "03/2024"}))
	assert.Error(t, service.SaveRecord(&domain.RawMonthRecord{Period: "2024-13"}))
	assert.Error(t, service.SaveRecord(nil))
}

func TestReplaceRecords(t *testing.T) {
	service, repo := newService(t)

	records := []*domain.RawMonthRecord{
		{Period: "2024-01", Revenue: 100},
		{Period: "2024-02", Revenue: 200},
	}
	repo.EXPECT().ReplaceAll(records).Return(nil)

	n, err := service.ReplaceRecords(records)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestReplaceRecordsRejectsDuplicatePeriods(t *testing.T) {
	service, _ := newService(t)

	_, err := service.ReplaceRecords([]*domain.RawMonthRecord{
		{Period: "2024-01"},
		{Period: "2024-01"},
	})
	assert.Error(t, err)
}

func TestDeleteRecord(t *testing.T) {
	service, repo := newService(t)

	repo.EXPECT().Delete("2024-01").Return(true, nil)
	assert.NoError(t, service.DeleteRecord("2024-01"))

	repo.EXPECT().Delete("2024-02").Return(false, nil)
	err := service.DeleteRecord("2024-02")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPeriodNotFound)
}
