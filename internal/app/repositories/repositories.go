package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	ClassRepository        *ClassRepository
	StudentRepository      *StudentRepository
	EventRepository        *EventRepository
	ConfirmationRepository *ConfirmationRepository
	ConsultationRepository *ConsultationRepository
	MedicationRepository   *MedicationRepository
	FeedbackRepository     *FeedbackRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		ClassRepository:        NewClassRepository(db),
		StudentRepository:      NewStudentRepository(db),
		EventRepository:        NewEventRepository(db),
		ConfirmationRepository: NewConfirmationRepository(db),
		ConsultationRepository: NewConsultationRepository(db),
		MedicationRepository:   NewMedicationRepository(db),
		FeedbackRepository:     NewFeedbackRepository(db),
	}
}
