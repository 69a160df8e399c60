// Package fixtures holds the seeded sample data that backs every view.
package fixtures

import (
	"time"

	"pgmanager/server/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(year int, month time.Month, d int) *time.Time {
	t := day(year, month, d)
	return &t
}

const (
	roomImage = "https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=800"
)

// Default returns a fresh copy of the sample data set. Callers may
// modify the result without affecting later calls.
func Default() models.Snapshot {
	return models.Snapshot{
		Users: []models.User{
			{
				ID:     "1",
				Name:   "Rajesh Kumar",
				Email:  "rajesh@example.com",
				Phone:  "+91 9876543210",
				Role:   models.RoleOwner,
				Avatar: "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			},
			{
				ID:     "2",
				Name:   "Priya Sharma",
				Email:  "priya@example.com",
				Phone:  "+91 9876543211",
				Role:   models.RoleCustomer,
				Avatar: "https://images.pexels.com/photos/1130626/pexels-photo-1130626.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			},
		},
		Properties: []models.Property{
			{
				ID:          "1",
				OwnerID:     "1",
				Name:        "Elite PG for Professionals",
				Address:     "123 MG Road, Koramangala",
				City:        "Bangalore",
				State:       "Karnataka",
				Pincode:     "560034",
				Latitude:    12.9352,
				Longitude:   77.6245,
				Description: "Premium PG accommodation with modern amenities, ideal for working professionals.",
				Amenities:   []string{"WiFi", "AC", "Laundry", "Parking", "Security", "Housekeeping"},
				Rules:       []string{"No smoking", "No alcohol", "Guests allowed till 10 PM"},
				Images: []string{
					"https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg?auto=compress&cs=tinysrgb&w=800",
					"https://images.pexels.com/photos/1743229/pexels-photo-1743229.jpeg?auto=compress&cs=tinysrgb&w=800",
				},
				Rating:         4.5,
				TotalRooms:     20,
				AvailableRooms: 5,
				PriceRange:     models.PriceRange{Min: 15000, Max: 25000},
				NearbyPlaces: models.NearbyPlaces{
					Colleges:      []string{"IIM Bangalore", "IISC", "Christ University"},
					Companies:     []string{"Google", "Microsoft", "Amazon", "Flipkart"},
					Transport:     []string{"Koramangala Metro", "Bus Stop"},
					Entertainment: []string{"Forum Mall", "Indiranagar", "Brigade Road"},
				},
				CreatedAt: day(2024, time.January, 15),
			},
		},
		Rooms: []models.Room{
			{
				ID:          "1",
				PropertyID:  "1",
				RoomNumber:  "A101",
				Type:        models.RoomSingle,
				Capacity:    1,
				Occupancy:   0,
				Rent:        20000,
				Deposit:     40000,
				Amenities:   []string{"AC", "Attached Bathroom", "Study Table"},
				Images:      []string{roomImage},
				IsAvailable: true,
				Gender:      models.GenderUnisex,
			},
			{
				ID:          "2",
				PropertyID:  "1",
				RoomNumber:  "A102",
				Type:        models.RoomDouble,
				Capacity:    2,
				Occupancy:   1,
				Rent:        15000,
				Deposit:     30000,
				Amenities:   []string{"AC", "Attached Bathroom", "Study Table"},
				Images:      []string{roomImage},
				IsAvailable: true,
				Gender:      models.GenderMale,
			},
		},
		Bookings: []models.Booking{
			{
				ID:          "1",
				CustomerID:  "2",
				PropertyID:  "1",
				RoomID:      "2",
				CheckIn:     day(2024, time.February, 1),
				CheckOut:    day(2024, time.August, 1),
				Duration:    models.DurationMedium,
				Status:      models.BookingActive,
				Rent:        15000,
				Deposit:     30000,
				TotalAmount: 120000,
				CreatedAt:   day(2024, time.January, 20),
			},
		},
		Payments: []models.Payment{
			{
				ID:        "1",
				BookingID: "1",
				Amount:    15000,
				Type:      models.PaymentRent,
				Status:    models.PaymentCompleted,
				Method:    models.MethodOnline,
				DueDate:   day(2024, time.February, 1),
				PaidDate:  dayPtr(2024, time.January, 30),
				CreatedAt: day(2024, time.January, 20),
			},
		},
		Complaints: []models.Complaint{
			{
				ID:          "1",
				CustomerID:  "2",
				PropertyID:  "1",
				RoomID:      "2",
				Category:    models.ComplaintWifi,
				Title:       "WiFi connectivity issues",
				Description: "Internet connection is very slow and frequently disconnects.",
				Priority:    models.PriorityMedium,
				Status:      models.ComplaintInProgress,
				Attachments: []string{},
				CreatedAt:   day(2024, time.January, 25),
			},
		},
		Expenses: []models.Expense{
			{
				ID:          "1",
				PropertyID:  "1",
				Category:    models.ExpenseUtilities,
				Description: "Electricity bill for January",
				Amount:      12000,
				Date:        day(2024, time.January, 31),
			},
		},
	}
}
