package services

import (
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	twilio "github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/o2scale/goodboyholidayhomesverce/internal/config"
	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

// NotificationService delivers booking emails and SMS strictly
// fire-and-forget: every public method returns immediately and a
// delivery failure is logged, never propagated, so a notification
// problem can never fail or roll back a ledger operation.
type NotificationService struct {
	cfg            *config.Config
	sendgridClient *sendgrid.Client
	twilioClient   *twilio.RestClient
}

func NewNotificationService(cfg *config.Config) *NotificationService {
	s := &NotificationService{cfg: cfg}
	if cfg.SendGridAPIKey != "" {
		s.sendgridClient = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		s.twilioClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}
	return s
}

// BookingCreated emails the customer a receipt and alerts the ops
// address about the new pending request.
func (s *NotificationService) BookingCreated(b *models.Booking, prop *models.Property) {
	booking := *b
	go func() {
		propertyTitle := propertyTitleOf(prop)
		stay := fmt.Sprintf("%s to %s",
			booking.StartDate.Format(time.DateOnly), booking.EndDate.Format(time.DateOnly))

		if booking.CustomerEmail != "" {
			subject := "Booking request received: " + propertyTitle
			body := fmt.Sprintf(
				"Hi %s,\n\nWe received your booking request for %s (%s, %d guests).\n"+
					"It is pending review; we will confirm shortly.\n\nGood Boy Holiday Homes",
				booking.CustomerName, propertyTitle, stay, booking.GuestCount,
			)
			s.sendEmail(booking.CustomerName, booking.CustomerEmail, subject, body)
		}

		opsSubject := fmt.Sprintf("New booking request: %s (%s)", propertyTitle, stay)
		opsBody := fmt.Sprintf(
			"Booking %s\nProperty: %s\nStay: %s\nGuests: %d\nCustomer: %s / %s / %s",
			booking.ID, propertyTitle, stay, booking.GuestCount,
			booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
		)
		s.sendEmail("Operations", s.cfg.OpsEmail, opsSubject, opsBody)
	}()
}

// BookingConfirmed emails and texts the customer. Administrative
// blocks carry no real guest and are skipped.
func (s *NotificationService) BookingConfirmed(b *models.Booking, prop *models.Property) {
	booking := *b
	go func() {
		if booking.IsAdminBlock() {
			return
		}
		propertyTitle := propertyTitleOf(prop)
		stay := fmt.Sprintf("%s to %s",
			booking.StartDate.Format(time.DateOnly), booking.EndDate.Format(time.DateOnly))

		if booking.CustomerEmail != "" {
			subject := "Booking confirmed: " + propertyTitle
			body := fmt.Sprintf(
				"Hi %s,\n\nYour stay at %s (%s) is confirmed. We look forward to hosting you!\n\nGood Boy Holiday Homes",
				booking.CustomerName, propertyTitle, stay,
			)
			s.sendEmail(booking.CustomerName, booking.CustomerEmail, subject, body)
		}

		if booking.CustomerPhone != "" {
			s.sendSMS(booking.CustomerPhone, fmt.Sprintf(
				"Good Boy Holiday Homes: your stay at %s (%s) is confirmed.", propertyTitle, stay,
			))
		}
	}()
}

// SendOpsEmail is the synchronous path used by the pending digest.
func (s *NotificationService) SendOpsEmail(subject, body string) {
	s.sendEmail("Operations", s.cfg.OpsEmail, subject, body)
}

func (s *NotificationService) sendEmail(toName, toEmail, subject, plainTextBody string) {
	if s.sendgridClient == nil {
		utils.Logger.Debugf("SendGrid client is nil, skipping email %q to %s", subject, toEmail)
		return
	}

	from := mail.NewEmail("Good Boy Holiday Homes", s.cfg.SendGridFromEmail)
	to := mail.NewEmail(toName, toEmail)
	msg := mail.NewSingleEmail(from, subject, to, plainTextBody, "")
	if s.cfg.SendGridSandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		msg.MailSettings = ms
	}
	if _, sgErr := s.sendgridClient.Send(msg); sgErr != nil {
		utils.Logger.WithError(sgErr).Warnf("Email send failure to %s", toEmail)
	}
}

func (s *NotificationService) sendSMS(toPhone, body string) {
	if s.twilioClient == nil {
		utils.Logger.Debugf("Twilio client is nil, skipping SMS to %s", toPhone)
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(toPhone)
	params.SetFrom(s.cfg.TwilioFromPhone)
	params.SetBody(body)
	if _, smsErr := s.twilioClient.Api.CreateMessage(params); smsErr != nil {
		utils.Logger.WithError(smsErr).Warnf("SMS send failure to %s", toPhone)
	}
}

func propertyTitleOf(prop *models.Property) string {
	if prop == nil || prop.Title == "" {
		return "(unknown property)"
	}
	return prop.Title
}
