package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/gomail.v2"
)

// BookingConfirmationData feeds templates/booking_confirmation.html.
type BookingConfirmationData struct {
	InvoiceNumber string
	OrderType     string
	ItemName      string
	StartDate     string
	EndDate       string
	Quantity      int
	TotalPrice    int64
	PaymentMethod string
}

// TicketEmailData feeds templates/eticket.html.
type TicketEmailData struct {
	TicketNumber  string
	CustomerName  string
	CustomerEmail string
	OrderType     string
	ItemName      string
	StartDate     string
	EndDate       string
	Quantity      int
	TotalPrice    int64
}

func dialer() *gomail.Dialer {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
}

func fromHeader() string {
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "SantaraTrip <noreply@santaratrip.com>"
	}
	return from
}

// Outbound mail runs through a single background worker: senders enqueue
// and return immediately, the worker retries transient SMTP failures with
// backoff. A failed mail never fails the request that triggered it.
var (
	mailQueue chan *gomail.Message
	mailOnce  sync.Once
)

const (
	mailQueueSize   = 128
	mailMaxAttempts = 3
	mailBackoff     = 30 * time.Second
)

func startMailWorker() {
	mailQueue = make(chan *gomail.Message, mailQueueSize)

	go func() {
		for m := range mailQueue {
			var err error
			for attempt := 1; attempt <= mailMaxAttempts; attempt++ {
				if err = dialer().DialAndSend(m); err == nil {
					break
				}
				log.Printf("Mail send attempt %d/%d failed: %v", attempt, mailMaxAttempts, err)
				if attempt < mailMaxAttempts {
					time.Sleep(time.Duration(attempt) * mailBackoff)
				}
			}
			if err != nil {
				log.Printf("Mail to %v dropped after %d attempts: %v", m.GetHeader("To"), mailMaxAttempts, err)
			}
		}
	}()
}

func enqueueMail(m *gomail.Message) {
	mailOnce.Do(startMailWorker)

	select {
	case mailQueue <- m:
	default:
		log.Printf("Mail queue full, dropping mail to %v", m.GetHeader("To"))
	}
}

func renderTemplate(path string, data any) (string, error) {
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// SendBookingConfirmationEmail queues the booking confirmation.
func SendBookingConfirmationEmail(to string, data BookingConfirmationData) {
	body, err := renderTemplate("templates/booking_confirmation.html", data)
	if err != nil {
		log.Printf("Failed to render confirmation template: %v", err)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fromHeader())
	m.SetHeader("To", to)
	m.SetHeader("Subject", "SantaraTrip - Booking Confirmation "+data.InvoiceNumber)
	m.SetBody("text/html", body)

	enqueueMail(m)
}

// SendTicketEmail queues the e-ticket with an embedded check-in QR.
func SendTicketEmail(to string, data TicketEmailData) {
	body, err := renderTemplate("templates/eticket.html", data)
	if err != nil {
		log.Printf("Failed to render e-ticket template: %v", err)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fromHeader())
	m.SetHeader("To", to)
	m.SetHeader("Subject", "SantaraTrip - Your E-Ticket "+data.TicketNumber)
	m.SetBody("text/html", body)

	qrBytes, err := GenerateQRCode(data.TicketNumber, 400)
	if err == nil {
		m.Embed("ticket_qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(qrBytes)
			return err
		}), gomail.SetHeader(map[string][]string{
			"Content-Type":        {"image/png"},
			"Content-ID":          {"<ticket_qr>"},
			"Content-Disposition": {"inline"},
		}))
	} else {
		log.Printf("Failed to build QR for ticket %s: %v", data.TicketNumber, err)
	}

	enqueueMail(m)
}
