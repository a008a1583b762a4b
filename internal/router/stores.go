package router

import (
	"database/sql"
	"fmt"

	mem "pet-care-registry/internal/adapters/storage/memory"
	pg "pet-care-registry/internal/adapters/storage/postgres"
	lite "pet-care-registry/internal/adapters/storage/sqlite"
	"pet-care-registry/internal/config"
	"pet-care-registry/internal/domain/adoptions"
	"pet-care-registry/internal/domain/appointments"
	"pet-care-registry/internal/domain/healthrecords"
	"pet-care-registry/internal/domain/messages"
	"pet-care-registry/internal/domain/notifications"
	"pet-care-registry/internal/domain/payments"
	"pet-care-registry/internal/domain/pets"
	"pet-care-registry/internal/domain/prescriptions"
	"pet-care-registry/internal/domain/users"
	"pet-care-registry/internal/ports/storage"
)

// Stores agrupa una colección por entidad, todas sobre el mismo backend.
type Stores struct {
	Users         users.Repository
	UserEmails    users.KeyIndex
	UserUsernames users.KeyIndex
	Pets          pets.Repository
	Appointments  appointments.Repository
	HealthRecords healthrecords.Repository
	Prescriptions prescriptions.Repository
	Messages      messages.Repository
	Notifications notifications.Repository
	Payments      payments.Repository
	Adoptions     adoptions.Repository

	// db es nil en memoria.
	db *sql.DB
}

func (s Stores) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func MemoryStores() Stores {
	return Stores{
		Users:         mem.NewCollection[users.User](storage.CollectionUsers),
		UserEmails:    mem.NewCollection[string](storage.CollectionUserEmails),
		UserUsernames: mem.NewCollection[string](storage.CollectionUserUsernames),
		Pets:          mem.NewCollection[pets.Pet](storage.CollectionPets),
		Appointments:  mem.NewCollection[appointments.Appointment](storage.CollectionAppointments),
		HealthRecords: mem.NewCollection[healthrecords.HealthRecord](storage.CollectionHealthRecords),
		Prescriptions: mem.NewCollection[prescriptions.Prescription](storage.CollectionPrescriptions),
		Messages:      mem.NewCollection[messages.Message](storage.CollectionMessages),
		Notifications: mem.NewCollection[notifications.Notification](storage.CollectionNotifications),
		Payments:      mem.NewCollection[payments.Payment](storage.CollectionPayments),
		Adoptions:     mem.NewCollection[adoptions.PetAdoption](storage.CollectionPetAdoptions),
	}
}

func PostgresStores(db *sql.DB) Stores {
	return Stores{
		Users:         pg.NewCollection[users.User](db, storage.CollectionUsers),
		UserEmails:    pg.NewCollection[string](db, storage.CollectionUserEmails),
		UserUsernames: pg.NewCollection[string](db, storage.CollectionUserUsernames),
		Pets:          pg.NewCollection[pets.Pet](db, storage.CollectionPets),
		Appointments:  pg.NewCollection[appointments.Appointment](db, storage.CollectionAppointments),
		HealthRecords: pg.NewCollection[healthrecords.HealthRecord](db, storage.CollectionHealthRecords),
		Prescriptions: pg.NewCollection[prescriptions.Prescription](db, storage.CollectionPrescriptions),
		Messages:      pg.NewCollection[messages.Message](db, storage.CollectionMessages),
		Notifications: pg.NewCollection[notifications.Notification](db, storage.CollectionNotifications),
		Payments:      pg.NewCollection[payments.Payment](db, storage.CollectionPayments),
		Adoptions:     pg.NewCollection[adoptions.PetAdoption](db, storage.CollectionPetAdoptions),
		db:            db,
	}
}

func SQLiteStores(db *sql.DB) Stores {
	return Stores{
		Users:         lite.NewCollection[users.User](db, storage.CollectionUsers),
		UserEmails:    lite.NewCollection[string](db, storage.CollectionUserEmails),
		UserUsernames: lite.NewCollection[string](db, storage.CollectionUserUsernames),
		Pets:          lite.NewCollection[pets.Pet](db, storage.CollectionPets),
		Appointments:  lite.NewCollection[appointments.Appointment](db, storage.CollectionAppointments),
		HealthRecords: lite.NewCollection[healthrecords.HealthRecord](db, storage.CollectionHealthRecords),
		Prescriptions: lite.NewCollection[prescriptions.Prescription](db, storage.CollectionPrescriptions),
		Messages:      lite.NewCollection[messages.Message](db, storage.CollectionMessages),
		Notifications: lite.NewCollection[notifications.Notification](db, storage.CollectionNotifications),
		Payments:      lite.NewCollection[payments.Payment](db, storage.CollectionPayments),
		Adoptions:     lite.NewCollection[adoptions.PetAdoption](db, storage.CollectionPetAdoptions),
		db:            db,
	}
}

// OpenStores abre el backend elegido por config. El caller cierra con Stores.Close.
func OpenStores(cfg config.StorageConfig) (Stores, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := pg.Open(cfg.DSN)
		if err != nil {
			return Stores{}, fmt.Errorf("open postgres: %w", err)
		}
		return PostgresStores(db), nil
	case config.DriverSQLite:
		db, err := lite.Open(cfg.SQLitePath)
		if err != nil {
			return Stores{}, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		return SQLiteStores(db), nil
	case config.DriverMemory, "":
		return MemoryStores(), nil
	default:
		return Stores{}, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
