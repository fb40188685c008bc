package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/GoldenGeneration/Food-Connect-Backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderEvent is pushed to a restaurant owner when a checkout succeeds.
type OrderEvent struct {
	OrderID       uint      `json:"orderId"`
	RestaurantID  uint      `json:"restaurantId"`
	Status        string    `json:"status"`
	PointsAwarded int64     `json:"pointsAwarded"`
	PlacedAt      time.Time `json:"placedAt"`
}

// Subscription = one owner connection on the feed.
type Subscription struct {
	Conn   *websocket.Conn
	UserID uint
}

type feedEvent struct {
	ownerID uint
	event   OrderEvent
}

// OrderFeed fans order-created events out to the owning user's open
// connections. Delivery is best effort; a full or closed feed never
// blocks a checkout.
type OrderFeed struct {
	clients    map[uint]map[*websocket.Conn]bool // ownerID -> set of clients
	broadcast  chan feedEvent
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan feedEvent, 16),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
	}
}

// Run listens for register/unregister/broadcast until the process exits.
func (f *OrderFeed) Run() {
	for {
		select {
		case sub := <-f.register:
			f.mu.Lock()
			if f.clients[sub.UserID] == nil {
				f.clients[sub.UserID] = make(map[*websocket.Conn]bool)
			}
			f.clients[sub.UserID][sub.Conn] = true
			f.mu.Unlock()

		case sub := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[sub.UserID][sub.Conn]; ok {
				delete(f.clients[sub.UserID], sub.Conn)
				sub.Conn.Close()
			}
			f.mu.Unlock()

		case ev := <-f.broadcast:
			f.mu.Lock()
			for conn := range f.clients[ev.ownerID] {
				if err := conn.WriteJSON(ev.event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(f.clients[ev.ownerID], conn)
				}
			}
			f.mu.Unlock()
		}
	}
}

// Publish queues an event for the owner's connections; drops it if the
// feed is backed up.
func (f *OrderFeed) Publish(ownerID uint, ev OrderEvent) {
	select {
	case f.broadcast <- feedEvent{ownerID: ownerID, event: ev}:
	default:
		log.Printf("order feed full, dropping event for owner %d", ownerID)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders
func (f *OrderFeed) HandleWebSocket(c *gin.Context) {
	// userId comes from the JWT middleware
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, UserID: userID}
	f.register <- sub

	// the feed is push-only; the read loop just waits for the close
	go func() {
		defer func() { f.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
