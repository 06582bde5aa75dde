package usecase_test

import (
	"time"

	"github.com/runoshun/guardkit/internal/domain"
	"github.com/runoshun/guardkit/internal/testutil"
	"github.com/runoshun/guardkit/internal/usecase/shared"
)

var testNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func newTestRecorder(repo *testutil.MockHistoryRepository) *shared.HistoryRecorder {
	return shared.NewHistoryRecorder(repo, &testutil.MockClock{NowTime: testNow}, nil, domain.HistoryConfig{}).
		WithIDGenerator(func() string { return "test-id" })
}
