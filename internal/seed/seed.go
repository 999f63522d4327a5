package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/campusbook/reservation-backend/internal/availability"
	"github.com/campusbook/reservation-backend/internal/reason"
	"github.com/campusbook/reservation-backend/internal/space"
	"github.com/campusbook/reservation-backend/internal/spacetype"
	"github.com/campusbook/reservation-backend/internal/user"
)

// Deps are the services the seeder writes through. Going through the
// services keeps the seeded rows subject to the same validation as
// API-created ones.
type Deps struct {
	SpaceTypes   spacetype.Service
	Reasons      reason.Service
	Users        user.Service
	Spaces       space.Service
	Availability availability.Service
}

// Run inserts reference data on an empty database. A database that
// already has space types is left untouched.
func Run(ctx context.Context, deps Deps) error {
	existing, err := deps.SpaceTypes.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if len(existing) > 0 {
		log.Println("seed: space types already present, skipping")
		return nil
	}

	typeIDs, err := seedSpaceTypes(ctx, deps.SpaceTypes)
	if err != nil {
		return err
	}
	if err := seedReasons(ctx, deps.Reasons); err != nil {
		return err
	}
	if err := seedUsers(ctx, deps.Users); err != nil {
		return err
	}
	if err := seedSpaces(ctx, deps, typeIDs); err != nil {
		return err
	}

	log.Println("seed: reference data inserted")
	return nil
}

func seedSpaceTypes(ctx context.Context, svc spacetype.Service) (map[string]string, error) {
	types := []spacetype.CreateRequest{
		{Name: "Laboratorio", Description: "Computer and electronics labs", Icon: "science"},
		{Name: "Cancha deportiva", Description: "Outdoor sports courts", Icon: "sports_soccer"},
		{Name: "Sala de estudio", Description: "Quiet group study rooms", Icon: "menu_book"},
		{Name: "Auditorio", Description: "Large halls for talks and events", Icon: "theater_comedy"},
	}

	ids := make(map[string]string, len(types))
	for _, req := range types {
		st, err := svc.Create(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to seed space type %q: %w", req.Name, err)
		}
		ids[req.Name] = st.ID
	}
	return ids, nil
}

func seedReasons(ctx context.Context, svc reason.Service) error {
	reasons := []reason.CreateRequest{
		{Name: "Clase", Description: "Scheduled class session"},
		{Name: "Proyecto", Description: "Course project work"},
		{Name: "Evento", Description: "Student or staff event"},
		{Name: "Deporte", Description: "Sports practice or match"},
	}

	for _, req := range reasons {
		if _, err := svc.Create(ctx, req); err != nil {
			return fmt.Errorf("failed to seed reason %q: %w", req.Name, err)
		}
	}
	return nil
}

func seedUsers(ctx context.Context, svc user.Service) error {
	admin, err := svc.EnsureGoogleUser(ctx, user.GoogleIdentity{
		Email:     "admin@tecsup.edu.pe",
		FirstName: "Admin",
		LastName:  "General",
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	_, err = svc.UpdateProfile(ctx, admin.ID, user.UpdateProfileRequest{
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		IsActive:  true,
		Role:      user.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to promote admin user: %w", err)
	}

	students := []user.GoogleIdentity{
		{Email: "maria.perez@tecsup.edu.pe", FirstName: "Maria", LastName: "Perez"},
		{Email: "jose.quispe@tecsup.edu.pe", FirstName: "Jose", LastName: "Quispe"},
	}
	for _, identity := range students {
		if _, err := svc.EnsureGoogleUser(ctx, identity); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", identity.Email, err)
		}
	}
	return nil
}

// weekdaySpan is a recurring open range over a run of weekdays.
type weekdaySpan struct {
	from, to int
	start    string
	end      string
}

func seedSpaces(ctx context.Context, deps Deps, typeIDs map[string]string) error {
	spaces := []struct {
		req   space.CreateRequest
		spans []weekdaySpan
	}{
		{
			req: space.CreateRequest{
				SpaceTypeID:  typeIDs["Laboratorio"],
				Name:         "Laboratorio de Computo A",
				Description:  "30 workstations with development tooling",
				Location:     "Pabellon B, piso 2",
				Capacity:     30,
				PricePerHour: 25,
				Equipment:    "30 PCs, projector, whiteboard",
			},
			spans: []weekdaySpan{
				{from: 1, to: 5, start: "08:00", end: "22:00"},
				{from: 6, to: 6, start: "08:00", end: "18:00"},
			},
		},
		{
			req: space.CreateRequest{
				SpaceTypeID:  typeIDs["Cancha deportiva"],
				Name:         "Cancha de Futbol",
				Description:  "Synthetic grass court",
				Location:     "Zona deportiva",
				Capacity:     22,
				PricePerHour: 40,
				Equipment:    "Goals, night lighting",
			},
			spans: []weekdaySpan{
				{from: 0, to: 6, start: "06:00", end: "21:00"},
			},
		},
		{
			req: space.CreateRequest{
				SpaceTypeID:  typeIDs["Sala de estudio"],
				Name:         "Sala de Estudio 1",
				Description:  "Group room for up to eight people",
				Location:     "Biblioteca, piso 1",
				Capacity:     8,
				PricePerHour: 0,
				Equipment:    "Whiteboard, TV screen",
			},
			spans: []weekdaySpan{
				{from: 0, to: 6, start: "07:00", end: "23:00"},
			},
		},
		{
			req: space.CreateRequest{
				SpaceTypeID:  typeIDs["Auditorio"],
				Name:         "Auditorio Principal",
				Description:  "Main auditorium with stage and AV booth",
				Location:     "Pabellon central",
				Capacity:     250,
				PricePerHour: 120,
				Equipment:    "Stage, sound system, projector",
			},
			spans: []weekdaySpan{
				{from: 1, to: 5, start: "08:00", end: "20:00"},
			},
		},
	}

	for _, entry := range spaces {
		sp, err := deps.Spaces.Create(ctx, entry.req)
		if err != nil {
			return fmt.Errorf("failed to seed space %q: %w", entry.req.Name, err)
		}

		for _, span := range entry.spans {
			for day := span.from; day <= span.to; day++ {
				_, err := deps.Availability.Create(ctx, availability.CreateRequest{
					SpaceID:   sp.ID,
					Weekday:   day,
					StartTime: span.start,
					EndTime:   span.end,
				})
				if err != nil {
					return fmt.Errorf("failed to seed availability for %q: %w", entry.req.Name, err)
				}
			}
		}
	}
	return nil
}
