// Package seed populates a fresh database with sample categories, movies and users.
// Every step is idempotent so the seeder can be re-run against a populated database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	categoryentity "movie_backend/internal/feature/category/domain/entity"
	movieentity "movie_backend/internal/feature/movie/domain/entity"
	userentity "movie_backend/internal/feature/user/domain/entity"
	userusecase "movie_backend/internal/feature/user/usecase"
)

// UserCreator registers a user, hashing the password. It returns
// userusecase.ErrEmailAlreadyExists when the email is taken.
type UserCreator interface {
	Create(ctx context.Context, email, password string) (*userentity.User, error)
}

type sampleMovie struct {
	title       string
	description string
	category    string
}

type sampleUser struct {
	email    string
	password string
}

var (
	categoryNames = []string{"Action", "Comedy", "Drama", "Horror", "Science Fiction"}

	movies = []sampleMovie{
		{"Avengers: Endgame", "The Avengers' final battle against Thanos.", "Action"},
		{"Joker", "The origin story of Batman's most iconic villain.", "Drama"},
		{"Toy Story 4", "Woody and Buzz set out on a new adventure.", "Comedy"},
		{"IT", "A group of kids faces a terrifying clown.", "Horror"},
		{"Interstellar", "A space odyssey to save humanity.", "Science Fiction"},
	}

	users = []sampleUser{
		{"admin@example.com", "admin123"},
		{"user1@example.com", "password123"},
		{"user2@example.com", "password123"},
	}
)

// Result counts the rows the seeder inserted.
type Result struct {
	Categories int
	Movies     int
	Users      int
}

// Seeder inserts the sample data.
type Seeder struct {
	db    *gorm.DB
	users UserCreator
}

// New returns a Seeder writing through db and creating users with creator.
func New(db *gorm.DB, creator UserCreator) *Seeder {
	return &Seeder{db: db, users: creator}
}

// Run seeds categories and movies in one transaction, then users.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		byName, created, err := seedCategories(tx)
		if err != nil {
			return err
		}
		res.Categories = created

		res.Movies, err = seedMovies(tx, byName)
		return err
	})
	if err != nil {
		return res, err
	}

	res.Users, err = s.seedUsers(ctx)
	if err != nil {
		return res, err
	}
	slog.Info("seed completed", "categories", res.Categories, "movies", res.Movies, "users", res.Users)
	return res, nil
}

// seedCategories returns every sample category keyed by name and how many were new.
func seedCategories(tx *gorm.DB) (map[string]uint, int, error) {
	byName := make(map[string]uint, len(categoryNames))
	created := 0
	for _, name := range categoryNames {
		c := categoryentity.Category{}
		r := tx.Where(categoryentity.Category{Name: name}).FirstOrCreate(&c)
		if r.Error != nil {
			return nil, 0, fmt.Errorf("seed category %q: %w", name, r.Error)
		}
		created += int(r.RowsAffected)
		byName[name] = c.ID
	}
	return byName, created, nil
}

func seedMovies(tx *gorm.DB, categories map[string]uint) (int, error) {
	created := 0
	for _, m := range movies {
		categoryID, ok := categories[m.category]
		if !ok {
			return created, fmt.Errorf("seed movie %q: unknown category %q", m.title, m.category)
		}
		movie := movieentity.Movie{}
		r := tx.Where(movieentity.Movie{Title: m.title}).
			Attrs(movieentity.Movie{Description: m.description, CategoryID: &categoryID}).
			Omit(clause.Associations).
			FirstOrCreate(&movie)
		if r.Error != nil {
			return created, fmt.Errorf("seed movie %q: %w", m.title, r.Error)
		}
		created += int(r.RowsAffected)
	}
	return created, nil
}

func (s *Seeder) seedUsers(ctx context.Context) (int, error) {
	created := 0
	for _, u := range users {
		_, err := s.users.Create(ctx, u.email, u.password)
		switch {
		case errors.Is(err, userusecase.ErrEmailAlreadyExists):
			slog.Debug("seed user exists, skipping", "email", u.email)
		case err != nil:
			return created, fmt.Errorf("seed user %q: %w", u.email, err)
		default:
			created++
		}
	}
	return created, nil
}
