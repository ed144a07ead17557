package notification

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sorteat-backend/domain"
	"sorteat-backend/entities"
	"sorteat-backend/internal/utils/mailing"
	"sorteat-backend/pkg/inventory"
	"sorteat-backend/pkg/member"
)

type (
	NotificationService interface {
		GetNotifications(ctx context.Context, memberID string) ([]domain.NotificationResponse, error)
		SaveNotification(ctx context.Context, req domain.SaveNotificationRequest, memberID string) (domain.NotificationResponse, error)
		MarkRead(ctx context.Context, id string, memberID string) error
		ClearNotifications(ctx context.Context, memberID string) error
		SendExpiryDigest(ctx context.Context, householdID string) (domain.ExpiryDigestResponse, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
		inventoryService       inventory.InventoryService
		memberRepository       member.MemberRepository
	}
)

func NewNotificationService(
	notificationRepository NotificationRepository,
	inventoryService inventory.InventoryService,
	memberRepository member.MemberRepository,
) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		inventoryService:       inventoryService,
		memberRepository:       memberRepository,
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, memberID string) ([]domain.NotificationResponse, error) {
	notifications, err := s.notificationRepository.GetNotifications(ctx, memberID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, toNotificationResponse(n))
	}
	return response, nil
}

func (s *notificationService) SaveNotification(ctx context.Context, req domain.SaveNotificationRequest, memberID string) (domain.NotificationResponse, error) {
	memberUUID, err := uuid.Parse(memberID)
	if err != nil {
		return domain.NotificationResponse{}, domain.ErrParseUUID
	}

	notification := &entities.Notification{
		ID:       uuid.New(),
		MemberID: memberUUID,
		Title:    req.Title,
		Message:  req.Message,
		Type:     req.Type,
		Icon:     req.Icon,
		IconBg:   req.IconBg,
	}

	if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
		return domain.NotificationResponse{}, err
	}
	return toNotificationResponse(notification), nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string, memberID string) error {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if notification.MemberID.String() != memberID {
		return domain.ErrMemberNotAllowed
	}

	notification.IsRead = true
	return s.notificationRepository.SaveNotification(ctx, notification)
}

func (s *notificationService) ClearNotifications(ctx context.Context, memberID string) error {
	return s.notificationRepository.DeleteNotifications(ctx, memberID)
}

// SendExpiryDigest fans an expiring-products notification out to every
// household member and mails a summary. Mail failure does not fail the
// digest; the in-app notifications already landed.
func (s *notificationService) SendExpiryDigest(ctx context.Context, householdID string) (domain.ExpiryDigestResponse, error) {
	expiring, err := s.inventoryService.GetExpiringProducts(ctx, householdID)
	if err != nil {
		return domain.ExpiryDigestResponse{}, err
	}
	if len(expiring) == 0 {
		return domain.ExpiryDigestResponse{}, nil
	}

	members, err := s.memberRepository.GetMembersByHousehold(ctx, householdID)
	if err != nil {
		return domain.ExpiryDigestResponse{}, err
	}

	lines := make([]string, 0, len(expiring))
	for _, p := range expiring {
		lines = append(lines, fmt.Sprintf("%s (%s)", p.Name, p.ExpiryLabel))
	}
	message := strings.Join(lines, ", ")

	for _, m := range members {
		notification := &entities.Notification{
			ID:       uuid.New(),
			MemberID: m.ID,
			Title:    "Prodotti in scadenza",
			Message:  message,
			Type:     "expiry",
			Icon:     "⏰",
			IconBg:   "#FEF3C7",
		}
		if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
			return domain.ExpiryDigestResponse{}, err
		}
	}

	emailSent := true
	body := expiryDigestBody(expiring)
	for _, m := range members {
		if err := mailing.SendMail(m.Email, "Prodotti in scadenza", body); err != nil {
			log.Printf("Error sending expiry digest to %s: %v", m.Email, err)
			emailSent = false
		}
	}

	return domain.ExpiryDigestResponse{
		NotifiedProducts: len(expiring),
		EmailSent:        emailSent,
	}, nil
}

func expiryDigestBody(expiring []domain.ExpiringProductResponse) string {
	var b strings.Builder
	b.WriteString("<h3>Prodotti in scadenza</h3><ul>")
	for _, p := range expiring {
		b.WriteString(fmt.Sprintf("<li>%s - %.2f %s - %s</li>", p.Name, p.Quantity, p.Unit, p.ExpiryLabel))
	}
	b.WriteString("</ul>")
	return b.String()
}

func toNotificationResponse(n *entities.Notification) domain.NotificationResponse {
	return domain.NotificationResponse{
		ID:      n.ID.String(),
		Title:   n.Title,
		Message: n.Message,
		Type:    n.Type,
		Icon:    n.Icon,
		IconBg:  n.IconBg,
		IsRead:  n.IsRead,
	}
}
