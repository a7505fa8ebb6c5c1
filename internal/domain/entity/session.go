// Package entity contains the core business objects of the project.
package entity

// NotificationChannels records which delivery channels the farmer agreed to.
type NotificationChannels struct {
	SMS      bool `json:"sms"`
	Telegram bool `json:"telegram"`
	Email    bool `json:"email"`
}

// Session is the authenticated-user context held only on this device.
// It is created on a successful login and destroyed on logout; the
// registered profile stays behind so the farmer can log in again.
type Session struct {
	ID              string               `json:"id"`
	Phone           string               `json:"phone"`
	Name            string               `json:"name"`
	Location        string               `json:"location"`
	IsAuthenticated bool                 `json:"isAuthenticated"`
	Notifications   NotificationChannels `json:"notifications"`
}

// ChannelsFromMedios derives the notification channel flags from the
// medio_alerta multi-select. A farmer without any recognized channel keeps
// SMS on, the platform's only channel guaranteed to reach rural areas.
func ChannelsFromMedios(medios []string) NotificationChannels {
	var ch NotificationChannels
	for _, m := range medios {
		switch AlertChannel(m) {
		case ChannelSMS:
			ch.SMS = true
		case ChannelTelegram:
			ch.Telegram = true
		case ChannelEmail:
			ch.Email = true
		}
	}

	if !ch.SMS && !ch.Telegram && !ch.Email {
		ch.SMS = true
	}

	return ch
}
