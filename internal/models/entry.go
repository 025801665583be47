package models

// DateFormat is the ISO calendar-day layout used for Entry.Date.
const DateFormat = "2006-01-02"

// MaxQuantity is the largest count a single entry may carry. It matches
// the int32 quantity field on the wire.
const MaxQuantity = 1<<31 - 1

// Category classifies a waste item. The set is closed.
type Category string

const (
	Recyclable  Category = "Recyclable"
	Compostable Category = "Compostable"
	Landfill    Category = "Landfill"
)

// Categories lists every category in display order.
var Categories = []Category{Recyclable, Compostable, Landfill}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case Recyclable, Compostable, Landfill:
		return true
	}
	return false
}

// Entry represents one logged waste item.
// Entries are append-only; nothing in the system updates or deletes one.
type Entry struct {
	// ID is the unique identifier for the entry (ULID format).
	ID string `json:"id"`

	// Date is the calendar day the entry was logged on ("2006-01-02").
	// It is set at creation time and is not user-editable.
	Date string `json:"date"`

	// Category is the waste classification.
	Category Category `json:"category"`

	// ItemName is a free-text label such as "Plastic bottle".
	ItemName string `json:"itemName"`

	// Quantity is an item count in [1, MaxQuantity].
	Quantity int `json:"quantity"`

	// UserID is the owning user's ID. Used only as a filter key.
	UserID string `json:"userId"`
}
