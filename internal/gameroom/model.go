package gameroom

// Match is one played game from the gamehistories collection.
type Match struct {
	ID        ID   `json:"_id"`
	UserID    ID   `json:"userId"`
	GameID    ID   `json:"gameId"`
	CreatedAt Time `json:"createdAt"`
}

// Ticket is a ticket award. Amount is the number of tickets.
type Ticket struct {
	ID        ID   `json:"_id"`
	User      ID   `json:"user"`
	GameID    ID   `json:"gameId"`
	Amount    Int  `json:"amount"`
	CreatedAt Time `json:"createdAt"`
}

type User struct {
	ID        ID     `json:"_id"`
	Nickname  string `json:"nickname"`
	CreatedAt Time   `json:"createdAt"`
}

// Event is a championship with an inclusive date range.
type Event struct {
	Title     string `json:"title"`
	StartDate Time   `json:"startDate"`
	EndDate   Time   `json:"endDate"`
}

// Order is a purchase. Only orders with PaymentStatus "paid" are counted.
type Order struct {
	ID            ID     `json:"_id"`
	PaymentStatus string `json:"paymentStatus"`
	TotalAmount   Float  `json:"totalAmount"`
	CreatedAt     Time   `json:"createdAt"`
}

// PaidStatus marks a completed order.
const PaidStatus = "paid"

// Data holds every collection of an export. A collection without a file
// is empty.
type Data struct {
	Matches []Match
	Tickets []Ticket
	Users   []User
	Events  []Event
	Orders  []Order
}

var gameNames = map[ID]string{
	"1": "The Runner",
	"2": "Day One",
	"3": "Lava Rush",
	"4": "Super Monaco",
}

// GameName returns the display name for a game id.
func GameName(id ID) string {
	if name, ok := gameNames[id]; ok {
		return name
	}
	return "Game " + string(id)
}
