package timesheet

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/buntdb"
)

type ReportRepository interface {
	SaveReport(month string, r Report) error
	GetReport(month string) (*Report, error)
	ListMonths() ([]string, error)
	SaveDrafts(reports map[string]Report) (sent []string, err error)

	SaveState(month string, s ReportState) error
	GetState(month string) (ReportState, error)

	SetCache(key string, value []byte, ttl time.Duration) error
	GetCache(key string) ([]byte, error)
}

func NewReportRepository(db *buntdb.DB) ReportRepository {
	return &reportRepository{db: db}
}

type reportRepository struct {
	db *buntdb.DB
}

const (
	reportKeyPrefix = "report:"
	stateKeyPrefix  = "state:"
	cacheKeyPrefix  = "cache:"
)

func (r *reportRepository) SaveReport(month string, rp Report) error {
	return r.db.Update(func(tx *buntdb.Tx) error {
		bs, err := json.Marshal(rp)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(reportKeyPrefix+month, string(bs), nil)
		return err
	})
}

// GetReport returns nil when no report is stored for month.
func (r *reportRepository) GetReport(month string) (*Report, error) {
	var rp *Report
	err := r.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(reportKeyPrefix + month)
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		rp = &Report{}
		return json.Unmarshal([]byte(v), rp)
	})
	if err != nil {
		return nil, err
	}
	return rp, nil
}

func (r *reportRepository) ListMonths() ([]string, error) {
	var months []string
	err := r.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(reportKeyPrefix+"*", func(key, _ string) bool {
			months = append(months, strings.TrimPrefix(key, reportKeyPrefix))
			return true
		})
	})
	if err != nil {
		return nil, err
	}
	return months, nil
}

// SaveDrafts stores reports keyed by month in one transaction, replacing what
// was stored for those months. Each month becomes a draft unless it was
// already sent; those months are returned. Nothing is written on error.
func (r *reportRepository) SaveDrafts(reports map[string]Report) ([]string, error) {
	months := make([]string, 0, len(reports))
	for m := range reports {
		months = append(months, m)
	}
	slices.Sort(months)

	var sent []string
	err := r.db.Update(func(tx *buntdb.Tx) error {
		for _, month := range months {
			bs, err := json.Marshal(reports[month])
			if err != nil {
				return err
			}
			if _, _, err := tx.Set(reportKeyPrefix+month, string(bs), nil); err != nil {
				return err
			}

			v, err := tx.Get(stateKeyPrefix + month)
			if err != nil && !errors.Is(err, buntdb.ErrNotFound) {
				return err
			}
			if ReportState(v) == ReportStateSent {
				sent = append(sent, month)
				continue
			}
			if _, _, err := tx.Set(stateKeyPrefix+month, string(ReportStateDraft), nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sent, nil
}

func (r *reportRepository) SaveState(month string, s ReportState) error {
	return r.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(stateKeyPrefix+month, string(s), nil)
		return err
	})
}

func (r *reportRepository) GetState(month string) (ReportState, error) {
	var s ReportState
	err := r.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(stateKeyPrefix + month)
		if err != nil {
			return err
		}
		s = ReportState(v)
		return nil
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return ReportStateNone, nil
	} else if err != nil {
		return "", err
	}
	return s, nil
}

// SetCache stores value under key. A positive ttl lets buntdb expire it.
func (r *reportRepository) SetCache(key string, value []byte, ttl time.Duration) error {
	var opts *buntdb.SetOptions
	if ttl > 0 {
		opts = &buntdb.SetOptions{Expires: true, TTL: ttl}
	}
	return r.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(cacheKeyPrefix+key, string(value), opts)
		return err
	})
}

// GetCache returns nil when key is missing or expired.
func (r *reportRepository) GetCache(key string) ([]byte, error) {
	var value []byte
	err := r.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(cacheKeyPrefix + key)
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		value = []byte(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}
