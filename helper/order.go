package helper

import (
	"log"
	"santaratrip/database"
	"santaratrip/model"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	orderScheduler   gocron.Scheduler
	pendingScheduler *cron.Cron
)

// PendingOrderTTL mirrors the gateway's 1-day checkout expiry: a booking
// that was never paid within the window is released so its capacity
// becomes available again.
const PendingOrderTTL = 24 * time.Hour

// CompleteFinishedOrders moves paid orders whose stay or visit has ended
// into the completed state.
func CompleteFinishedOrders() {
	log.Println("[CRON] CompleteFinishedOrders triggered")

	db := database.DB
	now := time.Now()

	result := db.Model(&model.Order{}).
		Where("payment_status = ? AND status = ? AND end_date < ?", model.PaymentPaid, model.OrderConfirmed, now).
		Update("status", model.OrderCompleted)
	if result.Error != nil {
		log.Printf("Failed to complete finished orders: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Completed %d finished orders", result.RowsAffected)
	}
}

// ExpirePendingOrders cancels bookings whose payment window has lapsed.
func ExpirePendingOrders() {
	db := database.DB
	cutoff := time.Now().Add(-PendingOrderTTL)

	var expired []model.Order
	if err := db.
		Where("payment_status = ? AND created_at < ?", model.PaymentPending, cutoff).
		Find(&expired).Error; err != nil {
		log.Printf("Failed to scan expired orders: %v", err)
		return
	}

	for _, order := range expired {
		order.PaymentStatus = model.PaymentCancelled
		order.Status = model.OrderCancelled
		if err := db.Save(&order).Error; err != nil {
			log.Printf("Failed to expire order %s: %v", order.PublicCode, err)
		}
	}

	if len(expired) > 0 {
		log.Printf("Expired %d unpaid orders", len(expired))
	}
}

// DeactivateEndedEvents flips events past their end date to inactive so
// they stop accepting bookings.
func DeactivateEndedEvents() {
	db := database.DB

	result := db.Model(&model.Event{}).
		Where("status = ? AND end_date < ?", model.EventActive, time.Now()).
		Update("status", model.EventInactive)
	if result.Error != nil {
		log.Printf("Failed to deactivate ended events: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Deactivated %d ended events", result.RowsAffected)
	}
}

// StartOrderCompletionScheduler runs the completion sweep daily at 00:05 WITA.
func StartOrderCompletionScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("WITA", 8*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	orderScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(func() {
			CompleteFinishedOrders()
			DeactivateEndedEvents()
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Order completion scheduler started (00:05 WITA)")
}

func StopOrderCompletionScheduler() {
	if orderScheduler != nil {
		_ = orderScheduler.Shutdown()
	}
}

// StartPendingOrderScheduler sweeps stale pending orders every 5 minutes.
func StartPendingOrderScheduler() {
	pendingScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := pendingScheduler.AddFunc("*/5 * * * *", ExpirePendingOrders)
	if err != nil {
		log.Printf("Failed to start pending order scheduler: %v", err)
		return
	}

	pendingScheduler.Start()
	log.Println("Pending order scheduler started (every 5 minutes)")
}
