package domain

import (
	"errors"
)

var (
	MessageSuccessGetNotifications  = "notifications retrieved successfully"
	MessageSuccessSaveNotification  = "notification saved successfully"
	MessageSuccessMarkNotification  = "notification marked as read"
	MessageSuccessClearNotification = "notifications cleared successfully"
	MessageSuccessExpiryDigest      = "expiry digest sent successfully"

	MessageFailedGetNotifications  = "failed to retrieve notifications"
	MessageFailedSaveNotification  = "failed to save notification"
	MessageFailedMarkNotification  = "failed to mark notification as read"
	MessageFailedClearNotification = "failed to clear notifications"
	MessageFailedExpiryDigest      = "failed to send expiry digest"

	ErrNotificationNotFound = errors.New("notification not found")
)

type (
	SaveNotificationRequest struct {
		Title   string `json:"title" validate:"required"`
		Message string `json:"message" validate:"required"`
		Type    string `json:"type" validate:"required,oneof=expiry shopping meal waste"`
		Icon    string `json:"icon" validate:"omitempty"`
		IconBg  string `json:"icon_bg" validate:"omitempty"`
	}

	NotificationResponse struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		Message string `json:"message"`
		Type    string `json:"type"`
		Icon    string `json:"icon,omitempty"`
		IconBg  string `json:"icon_bg,omitempty"`
		IsRead  bool   `json:"is_read"`
	}

	ExpiryDigestResponse struct {
		NotifiedProducts int  `json:"notified_products"`
		EmailSent        bool `json:"email_sent"`
	}
)
