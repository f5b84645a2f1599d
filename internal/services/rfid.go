package services

//go:generate mockgen -source=rfid.go -destination=rfid_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-rfid-launcher/internal/links"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/logger"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/metrics"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/models"
)

// scanPublishTimeout bounds how long a scan waits on the event writer.
const scanPublishTimeout = 250 * time.Millisecond

// RFIDUserReader defines read operations on the tag directory.
type RFIDUserReader interface {
	FindByUID(ctx context.Context, uid string) (*models.RFIDUser, error) // Returns nil when no record matches
	ListAll(ctx context.Context) ([]models.RFIDUser, error)              // Returns records, newest first
}

// RFIDUserWriter defines write operations on the tag directory.
type RFIDUserWriter interface {
	Insert(ctx context.Context, user models.RFIDUser) (*models.RFIDUser, error)
	Update(ctx context.Context, uid string, patch models.RFIDUserPatch) (*models.RFIDUser, error)
	Delete(ctx context.Context, uid string) error
}

// UIDNormalizer canonicalizes raw tag identifiers.
type UIDNormalizer interface {
	Normalize(raw string) string
}

// Launcher opens a resource URI in a native client.
type Launcher interface {
	Launch(ctx context.Context, uri string) error
}

// ScanDebouncer suppresses repeated launches for the same tag.
type ScanDebouncer interface {
	TryAcquire(ctx context.Context, uid string) (bool, error)
	Release(ctx context.Context, uid string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RFIDService resolves scanned tags and manages the tag directory.
type RFIDService struct {
	reader        RFIDUserReader
	writer        RFIDUserWriter
	normalizer    UIDNormalizer
	launcher      Launcher
	debouncer     ScanDebouncer
	kafkaWriter   KafkaWriter
	launchTimeout time.Duration
}

// NewRFIDService creates a new RFIDService. launcher, debouncer and
// kafkaWriter are optional; a nil value disables that side effect.
func NewRFIDService(
	reader RFIDUserReader,
	writer RFIDUserWriter,
	normalizer UIDNormalizer,
	launcher Launcher,
	debouncer ScanDebouncer,
	kafkaWriter KafkaWriter,
	launchTimeout time.Duration,
) *RFIDService {
	return &RFIDService{
		reader:        reader,
		writer:        writer,
		normalizer:    normalizer,
		launcher:      launcher,
		debouncer:     debouncer,
		kafkaWriter:   kafkaWriter,
		launchTimeout: launchTimeout,
	}
}

// ResolveTag looks up the user registered for a raw tag identifier and
// launches their resource. Launch failures are logged, never returned.
func (s *RFIDService) ResolveTag(ctx context.Context, rawUID string) (*models.RFIDUser, error) {
	uid := s.normalizer.Normalize(rawUID)
	if uid == "" {
		return nil, models.NewValidationError("uid", "must not be empty")
	}

	user, err := s.reader.FindByUID(ctx, uid)
	if err != nil {
		metrics.TagScans.WithLabelValues(metrics.ScanError).Inc()
		logger.Log.Errorw("failed to look up tag", "uid", uid, "error", err)
		return nil, err
	}
	if user == nil {
		metrics.TagScans.WithLabelValues(metrics.ScanNotFound).Inc()
		logger.Log.Infow("unknown tag scanned", "uid", uid)
		return nil, models.ErrUserNotFound
	}
	metrics.TagScans.WithLabelValues(metrics.ScanFound).Inc()

	uri, launched := s.launch(ctx, user)

	s.publishScan(ctx, models.ScanEvent{
		EventID:     uuid.NewString(),
		UID:         user.UID,
		Name:        user.Name,
		ResourceURI: uri,
		Launched:    launched,
		Timestamp:   time.Now().Unix(),
	})

	return user, nil
}

// launch opens the user's resource, bounded by launchTimeout and detached
// from request cancellation.
func (s *RFIDService) launch(ctx context.Context, user *models.RFIDUser) (uri string, launched bool) {
	uri = links.ToNativeURI(user.ResourceLink)

	if s.launcher == nil {
		metrics.Launches.WithLabelValues(metrics.LaunchSkipped).Inc()
		return uri, false
	}

	acquired := false
	if s.debouncer != nil {
		ok, err := s.debouncer.TryAcquire(ctx, user.UID)
		switch {
		case err != nil:
			logger.Log.Warnw("scan debounce unavailable, launching anyway", "uid", user.UID, "error", err)
		case !ok:
			logger.Log.Infow("repeated scan inside debounce window, launch skipped", "uid", user.UID)
			metrics.Launches.WithLabelValues(metrics.LaunchSkipped).Inc()
			return uri, false
		default:
			acquired = true
		}
	}

	launchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.launchTimeout)
	defer cancel()

	if err := s.launcher.Launch(launchCtx, uri); err != nil {
		logger.Log.Errorw("failed to launch resource", "uid", user.UID, "uri", uri, "error", err)
		metrics.Launches.WithLabelValues(metrics.LaunchFailed).Inc()
		if acquired {
			if err := s.debouncer.Release(ctx, user.UID); err != nil {
				logger.Log.Warnw("failed to release debounce window", "uid", user.UID, "error", err)
			}
		}
		return uri, false
	}

	logger.Log.Infow("opening resource", "name", user.Name, "uri", uri)
	metrics.Launches.WithLabelValues(metrics.LaunchOK).Inc()
	return uri, true
}

// publishScan publishes a scan event to Kafka.
func (s *RFIDService) publishScan(ctx context.Context, event models.ScanEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal scan event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UID),
		Value: data,
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), scanPublishTimeout)
	defer cancel()

	if err := s.kafkaWriter.WriteMessages(publishCtx, msg); err != nil {
		logger.Log.Errorw("failed to publish scan event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("scan event published to Kafka", "event_id", event.EventID, "uid", event.UID)
	}
}

// ListUsers returns every directory record, newest first.
func (s *RFIDService) ListUsers(ctx context.Context) ([]models.RFIDUser, error) {
	users, err := s.reader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// CreateUser registers a tag. The uid is normalized and name and link are trimmed.
func (s *RFIDService) CreateUser(ctx context.Context, uid, name, resourceLink string) (*models.RFIDUser, error) {
	in := createInput{
		UID:          s.normalizer.Normalize(uid),
		Name:         strings.TrimSpace(name),
		ResourceLink: strings.TrimSpace(resourceLink),
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	existing, err := s.reader.FindByUID(ctx, in.UID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "uid", in.UID, "error", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "uid", in.UID)
		return nil, models.ErrUserAlreadyExists
	}

	created, err := s.writer.Insert(ctx, models.RFIDUser{
		UID:          in.UID,
		Name:         in.Name,
		ResourceLink: in.ResourceLink,
	})
	if err != nil {
		logger.Log.Errorw("failed to save user", "uid", in.UID, "error", err)
		return nil, err
	}

	logger.Log.Infow("user created", "uid", created.UID, "name", created.Name)
	return created, nil
}

// UpdateUser changes only the fields present in patch.
func (s *RFIDService) UpdateUser(ctx context.Context, uid string, patch models.RFIDUserPatch) (*models.RFIDUser, error) {
	if patch.Empty() {
		return nil, models.NewValidationError("body", "at least one of name or resourceLink is required")
	}

	in := updateInput{
		Name:         trimmed(patch.Name),
		ResourceLink: trimmed(patch.ResourceLink),
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	key := s.normalizer.Normalize(uid)
	if key == "" {
		return nil, models.ErrUserNotFound
	}

	updated, err := s.writer.Update(ctx, key, models.RFIDUserPatch{
		Name:         in.Name,
		ResourceLink: in.ResourceLink,
	})
	if err != nil {
		logger.Log.Errorw("failed to update user", "uid", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("user updated", "uid", updated.UID)
	return updated, nil
}

// DeleteUser removes the record for uid.
func (s *RFIDService) DeleteUser(ctx context.Context, uid string) error {
	key := s.normalizer.Normalize(uid)
	if key == "" {
		return models.ErrUserNotFound
	}

	if err := s.writer.Delete(ctx, key); err != nil {
		logger.Log.Errorw("failed to delete user", "uid", key, "error", err)
		return err
	}

	logger.Log.Infow("user deleted", "uid", key)
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
