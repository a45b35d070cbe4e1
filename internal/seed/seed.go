package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

const DefaultPIN = "1234"

// Catalogue returns the shop's starting professionals and services with the
// PIN already hashed.
func Catalogue(pin string) ([]models.Professional, []models.Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash pin: %w", err)
	}

	professionals := []models.Professional{
		{
			ID:            "b1",
			Name:          `Arthur "The Blade"`,
			Email:         "arthur@barber.com",
			Phone:         "5511912345678",
			PINHash:       string(hash),
			Address:       "Rua das Navalhas, 120 - Centro, São Paulo",
			OperatingDays: "Segunda a Sexta",
			Specialties:   strings.Join([]string{"Corte Clássico", "Barba Terapia"}, ", "),
			WorkStart:     "09:00",
			WorkEnd:       "19:00",
			BreakStart:    "12:00",
			BreakEnd:      "13:00",
			Active:        true,
		},
		{
			ID:            "b2",
			Name:          `Vitor "Fade Master"`,
			Email:         "vitor@barber.com",
			Phone:         "5511998765432",
			PINHash:       string(hash),
			Address:       "Av. do Degradê, 500 - Jardim América, São Paulo",
			OperatingDays: "Terça a Sábado",
			Specialties:   strings.Join([]string{"Degradê Moderno", "Platinado"}, ", "),
			WorkStart:     "10:00",
			WorkEnd:       "20:00",
			BreakStart:    "14:00",
			BreakEnd:      "15:00",
			Active:        true,
		},
	}

	services := []models.Service{
		{ID: "s1", Name: "Corte Social", DurationMin: 30, Price: 50, Description: "Corte tradicional com acabamento fino.", Active: true},
		{ID: "s2", Name: "Barba Completa", DurationMin: 30, Price: 40, Description: "Toalha quente e alinhamento com navalha.", Active: true},
		{ID: "s3", Name: "Combo Premium", DurationMin: 60, Price: 80, Description: "Corte + Barba + Lavagem especial.", Active: true},
	}

	return professionals, services, nil
}

// Postgres inserts the catalogue, leaving rows that already exist untouched.
func Postgres(db *gorm.DB, pin string) error {
	professionals, services, err := Catalogue(pin)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&professionals).Error; err != nil {
			return fmt.Errorf("seed professionals: %w", err)
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&services).Error; err != nil {
			return fmt.Errorf("seed services: %w", err)
		}
		return nil
	})
}

func Memory(repo *repository.MemoryRepository, pin string) error {
	professionals, services, err := Catalogue(pin)
	if err != nil {
		return err
	}
	for _, p := range professionals {
		repo.PutProfessional(p)
	}
	for _, s := range services {
		repo.PutService(s)
	}
	return nil
}

// BookingResult counts how the generated bookings went.
type BookingResult struct {
	Created   int
	Conflicts int
	Rejected  int
}

// Bookings books count random clients on date through the create use case,
// so collisions are resolved by the same guard the API uses.
func Bookings(
	ctx context.Context,
	create *ucAppointment.CreateAppointment,
	faker *gofakeit.Faker,
	date string,
	count int,
) (BookingResult, error) {
	var res BookingResult

	professionals := []string{"b1", "b2"}
	services := []string{"s1", "s2", "s3"}

	for i := 0; i < count; i++ {
		hour := faker.Number(9, 19)
		minute := 30 * faker.Number(0, 1)

		picked := []string{services[faker.Number(0, len(services)-1)]}
		if faker.Bool() {
			picked = append(picked, services[faker.Number(0, len(services)-1)])
		}

		_, err := create.Execute(ctx, ucAppointment.CreateAppointmentInput{
			ProfessionalID: professionals[faker.Number(0, len(professionals)-1)],
			ClientName:     faker.Name(),
			ClientPhone:    faker.Numerify("55119########"),
			ServiceIDs:     picked,
			Date:           date,
			StartTime:      fmt.Sprintf("%02d:%02d", hour, minute),
		})

		switch {
		case err == nil:
			res.Created++
		case httperr.IsBusiness(err, domain.CodeSlotConflict), httperr.IsBusiness(err, domain.CodeSlotBeingBooked):
			res.Conflicts++
		case httperr.CodeOf(err) != "":
			// fora do expediente, no intervalo ou no passado
			res.Rejected++
		default:
			return res, err
		}
	}

	return res, nil
}
