package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"hotelops/internal/database"
	"hotelops/internal/domain"
	"hotelops/internal/modules/groups"
	"hotelops/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelops.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM invoice_items")
	db.Exec("DELETE FROM payment_rows")
	db.Exec("DELETE FROM groups")
	db.Exec("DELETE FROM catalog_entries")
	db.Exec("DELETE FROM venues")
	db.Exec("DELETE FROM clients")

	ctx := context.Background()
	venueRepo := repository.NewVenueRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	clientRepo := repository.NewClientRepository(db)
	groupRepo := repository.NewGroupRepository(db)

	venues := []domain.Venue{
		{Name: "Salon Vendôme", Capacity: 80},
		{Name: "Salle Rivoli", Capacity: 40},
		{Name: "Terrasse Sud", Capacity: 120},
	}
	for i := range venues {
		if err := venueRepo.Create(ctx, &venues[i]); err != nil {
			log.Fatal("seed venue:", err)
		}
	}

	entries := []domain.CatalogEntry{
		{Name: "Journée d'étude", Description: "Day meeting package", UnitPrice: 65, VATRate: 20, Location: "Salon Vendôme", Time: "09:00", EndTime: "17:00", Setup: "Theatre seating, projector", VenueID: &venues[0].ID},
		{Name: "Demi-journée", Description: "Half-day meeting package", UnitPrice: 45, VATRate: 20, Location: "Salle Rivoli", Time: "09:00", EndTime: "12:30", VenueID: &venues[1].ID},
		{Name: "Déjeuner 3 plats", Description: "Three-course lunch", UnitPrice: 38, VATRate: 10, Time: "12:30", EndTime: "14:00"},
		{Name: "Dîner de gala", Description: "Gala dinner", UnitPrice: 75, VATRate: 10, Time: "19:30", EndTime: "23:00"},
		{Name: "Pause café", Description: "Coffee break", UnitPrice: 6.5, VATRate: 10},
		{Name: "Chambre Single", Description: "Single room, breakfast included", UnitPrice: 140, VATRate: 10},
		{Name: "Chambre Twin", Description: "Twin room, breakfast included", UnitPrice: 170, VATRate: 10},
		{Name: "Location de salle", Description: "Room hire", UnitPrice: 400, VATRate: 20, VenueID: &venues[0].ID},
		{Name: "Cocktail apéritif", Description: "Pre-dinner cocktail", UnitPrice: 18, VATRate: 20, Time: "18:30", EndTime: "19:30"},
	}
	for i := range entries {
		if err := catalogRepo.Create(ctx, &entries[i]); err != nil {
			log.Fatal("seed catalog:", err)
		}
	}

	clients := []domain.Client{
		{CompanyName: "Acme Conseil", ContactName: "Marie Dupont", Email: "marie@acme-conseil.fr", Phone: "+33 1 44 55 66 77", Address: "12 rue de la Paix", PostalCode: "75002", City: "Paris", VATNumber: "FR12345678901"},
		{CompanyName: "Nordwind GmbH", ContactName: "Jonas Weber", Email: "j.weber@nordwind.de", Address: "Hafenstraße 4", PostalCode: "20457", City: "Hamburg"},
	}
	for i := range clients {
		if err := clientRepo.Create(ctx, &clients[i]); err != nil {
			log.Fatal("seed client:", err)
		}
	}

	start := time.Now().AddDate(0, 2, 0).Truncate(24 * time.Hour)
	demo := &domain.Group{
		Reference: "GRP-DEMO-0001",
		Name:      "Acme annual seminar",
		ClientID:  &clients[0].ID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 2),
		Rooms:     domain.RoomCounts{Single: 10, Twin: 5},
		Options:   domain.GroupOptions{DayMeeting: true, Lunch: true, Dinner: true, CoffeeBreak: true},
		Status:    domain.GroupOption,
		Notes:     "VIP arrival 17:00, welcome drinks in the lobby.",
	}
	demo.Nights = demo.ComputeNights()
	demo.Pax = groups.ComputePax(demo.Rooms)

	item := groups.NewItem()
	item.Description = "Journée d'étude"
	item.Date = start.Format("2006-01-02")
	item.Time = "09:00"
	item.EndTime = "17:00"
	item.Location = "Salon Vendôme"
	item.Quantity = float64(demo.Pax)
	item.UnitPrice = 65
	item.VATRate = 20

	single := groups.NewItem()
	single.Description = "Chambre Single"
	single.RoomTypeRef = domain.RoomSingle
	single.Quantity = float64(demo.Rooms.Single)
	single.UnitPrice = 140
	single.VATRate = 10

	twin := groups.NewItem()
	twin.Description = "Chambre Twin"
	twin.RoomTypeRef = domain.RoomTwin
	twin.Quantity = float64(demo.Rooms.Twin)
	twin.UnitPrice = 170
	twin.VATRate = 10

	demo.InvoiceItems = []domain.InvoiceItem{item, single, twin}
	demo.PaymentSchedule = groups.DefaultSchedule(time.Now(), demo.StartDate)

	if err := groupRepo.Save(ctx, demo); err != nil {
		log.Fatal("seed group:", err)
	}

	log.Printf("Seeded %d venues, %d catalog entries, %d clients, 1 demo group (%s)",
		len(venues), len(entries), len(clients), demo.Reference)
}
