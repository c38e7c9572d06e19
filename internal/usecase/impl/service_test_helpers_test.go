package impl

import (
	"io"
	"log/slog"
	"time"

	"hwehweme/config"
	"hwehweme/internal/domain/access"
	mockRepo "hwehweme/internal/mocks/repository"
)

// testClock is a fixed instant shared by tests that exercise share expiry.
var testClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Location.HistoryDefaultLimit = 100
	cfg.Location.HistoryMaxLimit = 1000

	return cfg
}

func newTestChecker(
	deviceRepo *mockRepo.MockDeviceRepository,
	shareRepo *mockRepo.MockShareRepository,
	groupRepo *mockRepo.MockGroupRepository,
) *access.Checker {
	return access.NewChecker(deviceRepo, shareRepo, groupRepo, func() time.Time { return testClock })
}
