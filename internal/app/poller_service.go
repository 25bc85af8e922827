// internal/app/poller_service.go
package app

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"homework_notification_bot/internal/domain/homework"
	domainTelegram "homework_notification_bot/internal/domain/telegram"
	"homework_notification_bot/internal/infra/practicum"

	"github.com/sirupsen/logrus"
)

// HomeworkAPI defines the fetch operation of the review API.
type HomeworkAPI interface {
	FetchStatuses(ctx context.Context, fromDate int64) (json.RawMessage, error)
}

// PollerService runs one poll iteration at a time: fetch the review statuses
// since the cursor, notify the chat about every change, and advance the
// cursor to the server-reported fetch-window end. Failures are converted to
// operator alerts on the same chat, with consecutive duplicates suppressed.
//
// State is confined to the single polling goroutine; nothing here is safe
// for concurrent use.
type PollerService struct {
	api       HomeworkAPI
	telegram  domainTelegram.Client
	logger    *logrus.Logger
	chatID    int64
	cursor    int64
	lastAlert string
}

func NewPollerService(api HomeworkAPI, tc domainTelegram.Client, logger *logrus.Logger, chatID int64) *PollerService {
	return &PollerService{
		api:      api,
		telegram: tc,
		logger:   logger,
		chatID:   chatID,
		cursor:   time.Now().Unix(),
	}
}

// Poll runs one iteration and never returns an error: every failure is
// reported through the alerting path and the cadence continues.
func (s *PollerService) Poll(ctx context.Context) {
	if err := s.checkOnce(ctx); err != nil {
		s.reportFailure(err)
	}
}

func (s *PollerService) checkOnce(ctx context.Context) error {
	payload, err := s.api.FetchStatuses(ctx, s.cursor)
	if err != nil {
		return err
	}

	statuses, err := practicum.ParseResponse(payload)
	if err != nil {
		s.logger.Error(err)
		return err
	}

	for _, hw := range statuses.Homeworks {
		message, err := homework.FormatNotification(hw)
		if err != nil {
			s.logger.Error(err)
			return err
		}
		if err := s.telegram.SendMessage(s.chatID, message); err != nil {
			return err
		}
		s.logger.Infof("status change notification sent for %q", hw.Name)
	}

	// Carry the window forward. A zero CurrentDate makes the next fetch
	// fall back to "now".
	s.cursor = statuses.CurrentDate
	return nil
}

// reportFailure turns an iteration error into an operator alert. The alert
// is skipped when its text matches the last delivered one; the memory
// updates only after a successful send, so an undelivered alert is attempted
// again on the next identical failure.
func (s *PollerService) reportFailure(err error) {
	message := "Program failure: " + err.Error()
	s.logger.WithField("kind", classify(err)).Error(message)

	if message == s.lastAlert {
		s.logger.Debug("duplicate failure, alert suppressed")
		return
	}
	if sendErr := s.telegram.SendMessage(s.chatID, message); sendErr != nil {
		s.logger.Errorf("failure alert was not delivered: %v", sendErr)
		return
	}
	s.lastAlert = message
}

// classify buckets an iteration error into the closed set of failure kinds.
// Anything that lands in "unclassified" is a failure mode this program does
// not know about yet.
func classify(err error) string {
	var (
		endpointErr *practicum.EndpointError
		accessErr   *practicum.AccessError
		decodeErr   *practicum.DecodeError
	)
	switch {
	case errors.As(err, &accessErr):
		return "transport"
	case errors.As(err, &endpointErr):
		return "endpoint"
	case errors.As(err, &decodeErr):
		return "decode"
	case errors.Is(err, practicum.ErrNotMapping),
		errors.Is(err, practicum.ErrHomeworksKey),
		errors.Is(err, practicum.ErrHomeworksList):
		return "shape"
	case errors.Is(err, homework.ErrUnknownStatus):
		return "domain"
	case errors.Is(err, domainTelegram.ErrSendFailed):
		return "delivery"
	default:
		return "unclassified"
	}
}
