package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AyaAid/Stayabucks/internal/hash"
	"github.com/AyaAid/Stayabucks/internal/models"
	"github.com/AyaAid/Stayabucks/internal/repo"
)

type DrinkIndexer interface {
	IndexDrinks(ctx context.Context, drinks []models.Drink) error
}

type Report struct {
	SupplementTypes int
	Supplements     int
	Drinks          int
	UsersCreated    int
	Indexed         int

	// PasswordMismatches counts existing users whose stored password differs from the fixture.
	PasswordMismatches int
}

type Seeder struct {
	Repo    *repo.GormRepo
	Indexer DrinkIndexer
	Log     *slog.Logger
}

// Apply upserts the fixture by name (email for users). Existing users keep
// their password; a fixture password that no longer matches is only logged.
// Drinks are indexed when an Indexer is set.
func (s *Seeder) Apply(ctx context.Context, f *Fixture) (Report, error) {
	var rep Report
	l := s.Log
	if l == nil {
		l = slog.Default()
	}

	typeIDs := make(map[string]uint, len(f.SupplementTypes))
	for _, in := range f.SupplementTypes {
		st := models.SupplementType{Name: in.Name}
		if err := s.Repo.UpsertSupplementType(ctx, &st); err != nil {
			return rep, fmt.Errorf("supplement type %q: %w", in.Name, err)
		}
		typeIDs[st.Name] = st.ID
		rep.SupplementTypes++
	}

	for _, in := range f.Supplements {
		typeID, ok := typeIDs[in.Type]
		if !ok {
			return rep, fmt.Errorf("%w: supplement %q references unknown type %q", ErrInvalidFixture, in.Name, in.Type)
		}
		exists, err := s.Repo.SupplementTypeExists(ctx, typeID)
		if err != nil {
			return rep, fmt.Errorf("supplement type %q: %w", in.Type, err)
		}
		if !exists {
			return rep, fmt.Errorf("%w: supplement type %q is missing", ErrInvalidFixture, in.Type)
		}

		sup := models.Supplement{Name: in.Name, Price: in.Price, TypeID: typeID}
		if err := s.Repo.UpsertSupplement(ctx, &sup); err != nil {
			return rep, fmt.Errorf("supplement %q: %w", in.Name, err)
		}
		rep.Supplements++
	}

	for _, in := range f.Drinks {
		d := models.Drink{Name: in.Name, Description: in.Description, Price: in.Price}
		if err := s.Repo.UpsertDrink(ctx, &d); err != nil {
			return rep, fmt.Errorf("drink %q: %w", in.Name, err)
		}
		rep.Drinks++
	}

	for _, in := range f.Users {
		existing, err := s.Repo.FindUserByEmail(ctx, in.Email)
		if err == nil {
			if !hash.CheckPassword(existing.Password, in.Password) {
				l.Warn("seed_user_password_mismatch", "email", in.Email, "user_id", existing.ID)
				rep.PasswordMismatches++
			}
			continue
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return rep, fmt.Errorf("user %q: %w", in.Email, err)
		}

		hashed, err := hash.HashPassword(in.Password)
		if err != nil {
			return rep, fmt.Errorf("hash password for %q: %w", in.Email, err)
		}
		role := in.Role
		if role == "" {
			role = "user"
		}

		u := models.User{Username: in.Username, Email: in.Email, Password: hashed, Role: role}
		created, err := s.Repo.CreateUserIfMissing(ctx, &u)
		if err != nil {
			return rep, fmt.Errorf("user %q: %w", in.Email, err)
		}
		if created {
			rep.UsersCreated++
		}
	}

	if s.Indexer != nil {
		drinks, err := s.Repo.ListAllDrinks(ctx)
		if err != nil {
			return rep, fmt.Errorf("list drinks for indexing: %w", err)
		}
		if err := s.Indexer.IndexDrinks(ctx, drinks); err != nil {
			return rep, fmt.Errorf("index drinks: %w", err)
		}
		rep.Indexed = len(drinks)
	}

	l.Info("seed_applied",
		"supplement_types", rep.SupplementTypes,
		"supplements", rep.Supplements,
		"drinks", rep.Drinks,
		"users_created", rep.UsersCreated,
		"password_mismatches", rep.PasswordMismatches,
		"indexed", rep.Indexed,
	)
	return rep, nil
}
