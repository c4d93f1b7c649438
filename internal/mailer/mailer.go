package mailer

import (
	"context"
	"fmt"
	"time"

	"turnos-backend/internal/config"
	"turnos-backend/internal/database/models"

	"gopkg.in/gomail.v2"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer_mock.go -package=mocks

// ShiftDetails carries what a reminder mail needs to say about a shift
type ShiftDetails struct {
	PlaceName string
	Address   string
	Date      time.Time
	TimeRange string
}

// Mailer is the external dispatch collaborator. Implementations must honor
// the context deadline; the engine never waits beyond its per-send timeout.
type Mailer interface {
	Send(ctx context.Context, to string, shift ShiftDetails, kind models.OffsetKind) error
}

// SMTPMailer sends reminder mail over SMTP
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a mailer from the SMTP block of the config
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

var subjects = map[models.OffsetKind]string{
	models.OffsetOneWeek: "Tu turno es en una semana",
	models.OffsetOneDay:  "Tu turno es mañana",
	models.OffsetOneHour: "Tu turno empieza en una hora",
}

// Send composes and delivers one reminder. gomail has no context support,
// so delivery runs in a goroutine raced against the deadline.
func (m *SMTPMailer) Send(ctx context.Context, to string, shift ShiftDetails, kind models.OffsetKind) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subjects[kind])
	msg.SetBody("text/plain", fmt.Sprintf(
		"Te esperamos el %s de %s en %s (%s).",
		shift.Date.Format("02/01/2006"), shift.TimeRange, shift.PlaceName, shift.Address,
	))

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
