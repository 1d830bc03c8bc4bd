package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/makemymate/makemymate-api/internal/dto"
	"github.com/makemymate/makemymate-api/internal/model"
	"github.com/makemymate/makemymate-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// Postgres error codes mapped at the store boundary.
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
	pgUndefinedTable  = "42P01"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type WaitlistService interface {
	// Signup validates the request before touching the store and inserts the entry.
	// A known email yields DuplicateEmailError whether caught by the pre-check or by
	// the unique constraint.
	Signup(req dto.WaitlistRequest) error
	// Stats degrades to all-zero counts when the waitlist table does not exist yet.
	Stats() (*dto.WaitlistStats, error)
}

type waitlistService struct {
	waitlistRepo repository.WaitlistRepository
}

func NewWaitlistService(waitlistRepo repository.WaitlistRepository) WaitlistService {
	return &waitlistService{waitlistRepo: waitlistRepo}
}

func (s *waitlistService) Signup(req dto.WaitlistRequest) error {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if firstName == "" {
		return &ValidationError{Field: "firstName", Message: "first name is required"}
	}
	if lastName == "" {
		return &ValidationError{Field: "lastName", Message: "last name is required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "a valid email address is required"}
	}
	if req.Role != "reader" && req.Role != "author" {
		return &ValidationError{Field: "role", Message: `role must be "reader" or "author"`}
	}
	if !req.Consent {
		return &ValidationError{Field: "consent", Message: "consent is required to join the waitlist"}
	}

	exists, err := s.waitlistRepo.EmailExists(email)
	if err != nil {
		return err
	}
	if exists {
		return &DuplicateEmailError{Email: email}
	}

	err = s.waitlistRepo.Create(&model.WaitlistEntry{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Role:      req.Role,
		Consent:   req.Consent,
	})
	if err != nil {
		// The pre-check races concurrent signups; the unique constraint settles it.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return &DuplicateEmailError{Email: email}
			case pgCheckViolation:
				return &ValidationError{Field: "role", Message: `role must be "reader" or "author"`}
			}
		}
		return err
	}
	return nil
}

func (s *waitlistService) Stats() (*dto.WaitlistStats, error) {
	readers, err := s.waitlistRepo.CountByRole("reader")
	if err != nil {
		if isUndefinedTable(err) {
			log.Warn().Msg("Waitlist table missing, reporting zero stats")
			return &dto.WaitlistStats{}, nil
		}
		return nil, err
	}
	authors, err := s.waitlistRepo.CountByRole("author")
	if err != nil {
		return nil, err
	}
	total, err := s.waitlistRepo.Count()
	if err != nil {
		return nil, err
	}
	return &dto.WaitlistStats{Readers: readers, Authors: authors, Total: total}, nil
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable
}
