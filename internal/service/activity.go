package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"pipetrak-backend/internal/database/models"
	apperrors "pipetrak-backend/internal/errors"
	"pipetrak-backend/internal/repository"

	"github.com/google/uuid"
)

// ActivityItem is one human-readable feed entry projected from the audit
// log. The audit entry stays canonical; this is presentation only.
type ActivityItem struct {
	ID           uuid.UUID `json:"id"`
	Actor        string    `json:"actor"`
	Initials     string    `json:"initials"`
	Message      string    `json:"message"`
	Target       string    `json:"target"`
	Timestamp    time.Time `json:"timestamp"`
	RelativeTime string    `json:"relative_time"`
}

// ActivityService projects read-only feeds from the append-only audit log
// and the milestone completion stream.
type ActivityService struct {
	auditRepo    repository.AuditRepositoryInterface
	instanceRepo repository.MilestoneInstanceRepositoryInterface
}

// NewActivityService creates a new activity service
func NewActivityService(auditRepo repository.AuditRepositoryInterface, instanceRepo repository.MilestoneInstanceRepositoryInterface) *ActivityService {
	return &ActivityService{auditRepo: auditRepo, instanceRepo: instanceRepo}
}

// actionVerbs maps audit actions to feed phrasing.
var actionVerbs = map[models.AuditAction]string{
	models.AuditActionCreate:            "added",
	models.AuditActionUpdate:            "updated",
	models.AuditActionDelete:            "removed",
	models.AuditActionCompleteMilestone: "completed a milestone on",
}

// ProjectFeed returns the project-wide activity feed, newest first.
func (s *ActivityService) ProjectFeed(projectID uuid.UUID, limit, offset int) ([]ActivityItem, int64, error) {
	if limit <= 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	entries, total, err := s.auditRepo.ListByProject(projectID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewPersistenceError("activity feed", err)
	}
	return s.translate(entries), total, nil
}

// EntityFeed returns the feed filtered to one entity type, such as the
// field weld log. It reads the same audit entries as the project feed,
// never a separate store.
func (s *ActivityService) EntityFeed(projectID uuid.UUID, entityType string, limit, offset int) ([]ActivityItem, int64, error) {
	if limit <= 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	entries, total, err := s.auditRepo.ListByEntityType(projectID, entityType, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewPersistenceError("activity feed", err)
	}
	return s.translate(entries), total, nil
}

// RecentWelds projects the weld log from recently completed field weld
// milestones, newest first.
func (s *ActivityService) RecentWelds(projectID uuid.UUID, limit int) ([]ActivityItem, error) {
	if limit <= 0 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	instances, err := s.instanceRepo.ListCompletedByEntityType(projectID, models.ComponentTypeFieldWeld, limit)
	if err != nil {
		return nil, apperrors.NewPersistenceError("weld feed", err)
	}

	items := make([]ActivityItem, 0, len(instances))
	now := time.Now()
	for _, instance := range instances {
		if instance.CompletedAt == nil {
			continue
		}
		items = append(items, ActivityItem{
			ID:           instance.ID,
			Actor:        instance.CompletedBy,
			Initials:     Initials(instance.CompletedBy),
			Message:      fmt.Sprintf("%s completed %s on %s", Initials(instance.CompletedBy), instance.Name, instance.Component.DisplayID()),
			Target:       instance.Component.DisplayID(),
			Timestamp:    *instance.CompletedAt,
			RelativeTime: RelativeTime(*instance.CompletedAt, now),
		})
	}
	return items, nil
}

func (s *ActivityService) translate(entries []models.AuditEntry) []ActivityItem {
	items := make([]ActivityItem, len(entries))
	now := time.Now()
	for i, entry := range entries {
		items[i] = ActivityItem{
			ID:           entry.ID,
			Actor:        entry.Actor,
			Initials:     Initials(entry.Actor),
			Message:      feedMessage(&entry),
			Target:       entry.Target,
			Timestamp:    entry.CreatedAt,
			RelativeTime: RelativeTime(entry.CreatedAt, now),
		}
	}
	return items
}

// feedMessage renders one audit entry as "<initials> <verb> <entity> <target>".
func feedMessage(entry *models.AuditEntry) string {
	verb, ok := actionVerbs[entry.Action]
	if !ok {
		verb = strings.ToLower(string(entry.Action))
	}
	entity := strings.ReplaceAll(entry.EntityType, "_", " ")
	return strings.TrimSpace(fmt.Sprintf("%s %s %s %s", Initials(entry.Actor), verb, entity, entry.Target))
}

// Initials derives display initials from an actor string: first letters of
// up to two name words, or the first letter of an email local part.
func Initials(actor string) string {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return "?"
	}
	if at := strings.Index(actor, "@"); at > 0 {
		actor = actor[:at]
	}
	words := strings.FieldsFunc(actor, func(r rune) bool {
		return r == ' ' || r == '.' || r == '_' || r == '-'
	})
	var b strings.Builder
	for i, word := range words {
		if i == 2 {
			break
		}
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// RelativeTime renders a timestamp relative to now for feed display.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
