package dataset

import (
	"github.com/pkg/errors"

	"github.com/pulsefin/pulse-api/infrastructure/repository"
	"github.com/pulsefin/pulse-api/internal/domain"
	"github.com/pulsefin/pulse-api/pkg/utils"
)

var ErrPeriodNotFound = errors.New("no record for period")

type DatasetService interface {
	GetRecords() ([]*domain.RawMonthRecord, error)
	SaveRecord(record *domain.RawMonthRecord) error
	ReplaceRecords(records []*domain.RawMonthRecord) (int, error)
	DeleteRecord(period string) error
}

type Service struct {
	recordRepository repository.MonthRecordRepository
}

func NewService(recordRepository repository.MonthRecordRepository) DatasetService {
	return &Service{
		recordRepository: recordRepository,
	}
}

func (s *Service) GetRecords() ([]*domain.RawMonthRecord, error) {
	records, err := s.recordRepository.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "fetching month records")
	}

	return records, nil
}

// SaveRecord upserts one month after validating its period and normalizing
// sign conventions on the cost fields.
func (s *Service) SaveRecord(record *domain.RawMonthRecord) error {
	if record == nil {
		return errors.New("record must not be nil")
	}

	period, err := utils.ParsePeriod(record.Period)
	if err != nil {
		return err
	}
	record.Period = period
	record.Normalize()

	if err := s.recordRepository.SaveOrUpdate(record); err != nil {
		return errors.Wrapf(err, "saving record for period %s", period)
	}

	return nil
}

// ReplaceRecords swaps the whole dataset in one transaction, e.g. on a CSV
// import. Every record is validated before anything is written.
func (s *Service) ReplaceRecords(records []*domain.RawMonthRecord) (int, error) {
	seen := make(map[string]bool, len(records))
	for _, record := range records {
		if record == nil {
			return 0, errors.New("record must not be nil")
		}

		period, err := utils.ParsePeriod(record.Period)
		if err != nil {
			return 0, err
		}
		if seen[period] {
			return 0, errors.Errorf("duplicate period %s", period)
		}
		seen[period] = true

		record.Period = period
		record.Normalize()
	}

	if err := s.recordRepository.ReplaceAll(records); err != nil {
		return 0, errors.Wrap(err, "replacing records")
	}

	return len(records), nil
}

func (s *Service) DeleteRecord(period string) error {
	normalized, err := utils.ParsePeriod(period)
	if err != nil {
		return err
	}

	deleted, err := s.recordRepository.Delete(normalized)
	if err != nil {
		return errors.Wrapf(err, "deleting record for period %s", normalized)
	}
	if !deleted {
		return errors.Wrapf(ErrPeriodNotFound, "period %s", normalized)
	}

	return nil
}
