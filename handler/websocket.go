package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"santaratrip/database"
	"santaratrip/helper"
	"santaratrip/model"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

	clients = make(map[uint]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

type roomAvailabilityPayload struct {
	RoomID    uint   `json:"roomId"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// FetchRoomAvailability counts active bookings for a room over a date
// range and returns capacity left. A zero range means "today".
func FetchRoomAvailability(roomID uint, start, end time.Time) (*roomAvailabilityPayload, error) {
	db := database.DB

	var room model.Room
	if err := db.First(&room, roomID).Error; err != nil {
		return nil, err
	}

	if start.IsZero() {
		start = time.Now().Truncate(24 * time.Hour)
		end = start.Add(24 * time.Hour)
	}

	booked, err := helper.CountBookedRooms(db, roomID, start, end)
	if err != nil {
		return nil, err
	}

	return &roomAvailabilityPayload{
		RoomID:    roomID,
		Capacity:  room.Capacity,
		Booked:    booked,
		Remaining: room.Capacity - booked,
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}, nil
}

// RoomAvailabilitySocket streams live availability for one room. Every
// booking or cancellation touching the room publishes to its Redis
// channel, and every subscribed client gets the fresh count.
func RoomAvailabilitySocket(c *websocket.Conn) {
	roomIdStr := c.Params("id")
	id64, _ := strconv.ParseUint(roomIdStr, 10, 64)
	roomId := uint(id64)

	defer func() {
		mu.Lock()
		if clients[roomId] != nil {
			delete(clients[roomId], c)
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if clients[roomId] == nil {
		clients[roomId] = make(map[*websocket.Conn]bool)
	}
	clients[roomId][c] = true
	mu.Unlock()

	// Initial snapshot before any publish arrives
	if availability, err := FetchRoomAvailability(roomId, time.Time{}, time.Time{}); err == nil {
		c.WriteJSON(availability)
	}

	pubsub := redisClient.Subscribe(
		context.Background(),
		fmt.Sprintf("room:%d", roomId),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[roomId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[roomId], conn)
			}
		}
		mu.Unlock()
	}
}

// BroadcastRoomAvailability recomputes availability for the affected
// range and publishes it. Failures only log, bookings never block on
// Redis.
func BroadcastRoomAvailability(roomID uint, start, end time.Time) {
	go func() {
		availability, err := FetchRoomAvailability(roomID, start, end)
		if err != nil {
			log.Printf("Cannot fetch availability for room %d: %v", roomID, err)
			return
		}

		payload, err := json.Marshal(availability)
		if err != nil {
			log.Printf("Cannot marshal availability for room %d: %v", roomID, err)
			return
		}

		if err := redisClient.Publish(
			context.Background(),
			fmt.Sprintf("room:%d", roomID),
			payload,
		).Err(); err != nil {
			log.Printf("Cannot publish availability for room %d: %v", roomID, err)
		}
	}()
}
