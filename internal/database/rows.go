package database

import (
	"time"

	"gorm.io/datatypes"

	"pgmanager/server/internal/models"
)

// Row types mirror the domain records. Seq keeps the seeded order so
// reads come back in the same order as the sample data.

type userRow struct {
	ID     string `gorm:"primaryKey"`
	Seq    int    `gorm:"index"`
	Name   string
	Email  string
	Phone  string
	Role   string
	Avatar string
}

func (userRow) TableName() string { return "users" }

type propertyRow struct {
	ID             string `gorm:"primaryKey"`
	Seq            int    `gorm:"index"`
	OwnerID        string `gorm:"index"`
	Name           string
	Address        string
	City           string
	State          string
	Pincode        string
	Latitude       float64
	Longitude      float64
	Description    string
	Amenities      datatypes.JSONSlice[string]
	Rules          datatypes.JSONSlice[string]
	Images         datatypes.JSONSlice[string]
	Rating         float64
	TotalRooms     int
	AvailableRooms int
	PriceMin       int64
	PriceMax       int64
	NearbyPlaces   datatypes.JSONType[models.NearbyPlaces]
	CreatedAt      time.Time
}

func (propertyRow) TableName() string { return "properties" }

type roomRow struct {
	ID          string `gorm:"primaryKey"`
	Seq         int    `gorm:"index"`
	PropertyID  string `gorm:"index"`
	RoomNumber  string
	Type        string
	Capacity    int
	Occupancy   int
	Rent        int64
	Deposit     int64
	Amenities   datatypes.JSONSlice[string]
	Images      datatypes.JSONSlice[string]
	IsAvailable bool
	Gender      string
}

func (roomRow) TableName() string { return "rooms" }

type bookingRow struct {
	ID          string `gorm:"primaryKey"`
	Seq         int    `gorm:"index"`
	CustomerID  string `gorm:"index"`
	PropertyID  string `gorm:"index"`
	RoomID      string
	CheckIn     time.Time
	CheckOut    time.Time
	Duration    string
	Status      string
	Rent        int64
	Deposit     int64
	TotalAmount int64
	CreatedAt   time.Time
}

func (bookingRow) TableName() string { return "bookings" }

type paymentRow struct {
	ID        string `gorm:"primaryKey"`
	Seq       int    `gorm:"index"`
	BookingID string `gorm:"index"`
	Amount    int64
	Type      string
	Status    string
	Method    string
	DueDate   time.Time
	PaidDate  *time.Time
	CreatedAt time.Time
}

func (paymentRow) TableName() string { return "payments" }

type complaintRow struct {
	ID          string `gorm:"primaryKey"`
	Seq         int    `gorm:"index"`
	CustomerID  string `gorm:"index"`
	PropertyID  string `gorm:"index"`
	RoomID      string
	Category    string
	Title       string
	Description string
	Priority    string
	Status      string
	Attachments datatypes.JSONSlice[string]
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

func (complaintRow) TableName() string { return "complaints" }

type expenseRow struct {
	ID          string `gorm:"primaryKey"`
	Seq         int    `gorm:"index"`
	PropertyID  string `gorm:"index"`
	Category    string
	Description string
	Amount      int64
	Date        time.Time
	Receipt     string
}

func (expenseRow) TableName() string { return "expenses" }

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toUserRow(seq int, u models.User) userRow {
	return userRow{ID: u.ID, Seq: seq, Name: u.Name, Email: u.Email, Phone: u.Phone, Role: string(u.Role), Avatar: u.Avatar}
}

func (r userRow) model() models.User {
	return models.User{ID: r.ID, Name: r.Name, Email: r.Email, Phone: r.Phone, Role: models.Role(r.Role), Avatar: r.Avatar}
}

func toPropertyRow(seq int, p models.Property) propertyRow {
	return propertyRow{
		ID:             p.ID,
		Seq:            seq,
		OwnerID:        p.OwnerID,
		Name:           p.Name,
		Address:        p.Address,
		City:           p.City,
		State:          p.State,
		Pincode:        p.Pincode,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		Description:    p.Description,
		Amenities:      nonNil(p.Amenities),
		Rules:          nonNil(p.Rules),
		Images:         nonNil(p.Images),
		Rating:         p.Rating,
		TotalRooms:     p.TotalRooms,
		AvailableRooms: p.AvailableRooms,
		PriceMin:       p.PriceRange.Min,
		PriceMax:       p.PriceRange.Max,
		NearbyPlaces:   datatypes.NewJSONType(p.NearbyPlaces),
		CreatedAt:      p.CreatedAt,
	}
}

func (r propertyRow) model() models.Property {
	return models.Property{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		Name:           r.Name,
		Address:        r.Address,
		City:           r.City,
		State:          r.State,
		Pincode:        r.Pincode,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Description:    r.Description,
		Amenities:      r.Amenities,
		Rules:          r.Rules,
		Images:         r.Images,
		Rating:         r.Rating,
		TotalRooms:     r.TotalRooms,
		AvailableRooms: r.AvailableRooms,
		PriceRange:     models.PriceRange{Min: r.PriceMin, Max: r.PriceMax},
		NearbyPlaces:   r.NearbyPlaces.Data(),
		CreatedAt:      r.CreatedAt.UTC(),
	}
}

func toRoomRow(seq int, r models.Room) roomRow {
	return roomRow{
		ID:          r.ID,
		Seq:         seq,
		PropertyID:  r.PropertyID,
		RoomNumber:  r.RoomNumber,
		Type:        string(r.Type),
		Capacity:    r.Capacity,
		Occupancy:   r.Occupancy,
		Rent:        r.Rent,
		Deposit:     r.Deposit,
		Amenities:   nonNil(r.Amenities),
		Images:      nonNil(r.Images),
		IsAvailable: r.IsAvailable,
		Gender:      string(r.Gender),
	}
}

func (r roomRow) model() models.Room {
	return models.Room{
		ID:          r.ID,
		PropertyID:  r.PropertyID,
		RoomNumber:  r.RoomNumber,
		Type:        models.RoomType(r.Type),
		Capacity:    r.Capacity,
		Occupancy:   r.Occupancy,
		Rent:        r.Rent,
		Deposit:     r.Deposit,
		Amenities:   r.Amenities,
		Images:      r.Images,
		IsAvailable: r.IsAvailable,
		Gender:      models.Gender(r.Gender),
	}
}

func toBookingRow(seq int, b models.Booking) bookingRow {
	return bookingRow{
		ID:          b.ID,
		Seq:         seq,
		CustomerID:  b.CustomerID,
		PropertyID:  b.PropertyID,
		RoomID:      b.RoomID,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		Duration:    string(b.Duration),
		Status:      string(b.Status),
		Rent:        b.Rent,
		Deposit:     b.Deposit,
		TotalAmount: b.TotalAmount,
		CreatedAt:   b.CreatedAt,
	}
}

func (r bookingRow) model() models.Booking {
	return models.Booking{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		PropertyID:  r.PropertyID,
		RoomID:      r.RoomID,
		CheckIn:     r.CheckIn.UTC(),
		CheckOut:    r.CheckOut.UTC(),
		Duration:    models.Duration(r.Duration),
		Status:      models.BookingStatus(r.Status),
		Rent:        r.Rent,
		Deposit:     r.Deposit,
		TotalAmount: r.TotalAmount,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func toPaymentRow(seq int, p models.Payment) paymentRow {
	return paymentRow{
		ID:        p.ID,
		Seq:       seq,
		BookingID: p.BookingID,
		Amount:    p.Amount,
		Type:      string(p.Type),
		Status:    string(p.Status),
		Method:    string(p.Method),
		DueDate:   p.DueDate,
		PaidDate:  p.PaidDate,
		CreatedAt: p.CreatedAt,
	}
}

func (r paymentRow) model() models.Payment {
	return models.Payment{
		ID:        r.ID,
		BookingID: r.BookingID,
		Amount:    r.Amount,
		Type:      models.PaymentType(r.Type),
		Status:    models.PaymentStatus(r.Status),
		Method:    models.PaymentMethod(r.Method),
		DueDate:   r.DueDate.UTC(),
		PaidDate:  utcPtr(r.PaidDate),
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func toComplaintRow(seq int, c models.Complaint) complaintRow {
	return complaintRow{
		ID:          c.ID,
		Seq:         seq,
		CustomerID:  c.CustomerID,
		PropertyID:  c.PropertyID,
		RoomID:      c.RoomID,
		Category:    string(c.Category),
		Title:       c.Title,
		Description: c.Description,
		Priority:    string(c.Priority),
		Status:      string(c.Status),
		Attachments: nonNil(c.Attachments),
		CreatedAt:   c.CreatedAt,
		ResolvedAt:  c.ResolvedAt,
	}
}

func (r complaintRow) model() models.Complaint {
	return models.Complaint{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		PropertyID:  r.PropertyID,
		RoomID:      r.RoomID,
		Category:    models.ComplaintCategory(r.Category),
		Title:       r.Title,
		Description: r.Description,
		Priority:    models.Priority(r.Priority),
		Status:      models.ComplaintStatus(r.Status),
		Attachments: r.Attachments,
		CreatedAt:   r.CreatedAt.UTC(),
		ResolvedAt:  utcPtr(r.ResolvedAt),
	}
}

func toExpenseRow(seq int, e models.Expense) expenseRow {
	return expenseRow{
		ID:          e.ID,
		Seq:         seq,
		PropertyID:  e.PropertyID,
		Category:    string(e.Category),
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		Receipt:     e.Receipt,
	}
}

func (r expenseRow) model() models.Expense {
	return models.Expense{
		ID:          r.ID,
		PropertyID:  r.PropertyID,
		Category:    models.ExpenseCategory(r.Category),
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date.UTC(),
		Receipt:     r.Receipt,
	}
}
