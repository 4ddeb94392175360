package domain

import "regexp"

type (
	// PlanType represents the appointment plan policy.
	PlanType string
	// PartnerMode represents how a moving partner receives work.
	PartnerMode string
	// NotificationStatus represents the notification state of a task.
	NotificationStatus string
)

// List of possible plan policies
const (
	PlanFullService PlanType = "full_service"
	PlanDIY         PlanType = "diy"
)

// List of possible partner assignment modes
const (
	PartnerModeAuto   PartnerMode = "auto"
	PartnerModeManual PartnerMode = "manual"
)

// List of possible task notification statuses
const (
	NotifyNone             NotificationStatus = "none"
	NotifySent             NotificationStatus = "sent"
	NotifyAccepted         NotificationStatus = "accepted"
	NotifyDeclined         NotificationStatus = "declined"
	NotifyNoDrivers        NotificationStatus = "no_drivers"
	NotifyPendingPartner   NotificationStatus = "pending_partner"
	NotifyPendingReconfirm NotificationStatus = "pending_reconfirmation"
)

var allowedPlans = [...]PlanType{PlanFullService, PlanDIY}

var allowedPartnerModes = [...]PartnerMode{PartnerModeAuto, PartnerModeManual}

var allowedNotificationStatuses = [...]NotificationStatus{
	NotifyNone, NotifySent, NotifyAccepted, NotifyDeclined,
	NotifyNoDrivers, NotifyPendingPartner, NotifyPendingReconfirm,
}

// Valid checks if the PlanType is valid
func (p PlanType) Valid() bool {
	for _, v := range allowedPlans {
		if p == v {
			return true
		}
	}
	return false
}

// Valid checks if the PartnerMode is valid
func (m PartnerMode) Valid() bool {
	for _, v := range allowedPartnerModes {
		if m == v {
			return true
		}
	}
	return false
}

// Valid checks if the NotificationStatus is valid
func (s NotificationStatus) Valid() bool {
	for _, v := range allowedNotificationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+[0-9]{10,14}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
