// Package seed fills an empty database with demo accounts, tags and
// favorites. Running it again leaves existing rows untouched.
package seed

import (
	"context"
	"fmt"

	"favsetter/internal/accounts"
	"favsetter/internal/favorites"
	"favsetter/internal/tags"
	"favsetter/pkg/domain"
	"favsetter/pkg/logger"
	"favsetter/pkg/metadata"
	"favsetter/pkg/storage"

	"go.uber.org/zap"
)

// DemoPassword is the password of every demo account.
const DemoPassword = "password123"

type User struct {
	Email string
	Name  string
}

type Tag struct {
	Name  string
	Color string
}

type Favorite struct {
	URL         string
	Title       string
	Description string
	Rating      int
	Tags        []string
}

// Data is what Run writes. Tags and favorites belong to the first user.
type Data struct {
	Users     []User
	Tags      []Tag
	Favorites []Favorite
}

// Demo returns the default demo data set.
func Demo() Data {
	return Data{
		Users: []User{
			{Email: "demo@example.com", Name: "Demo User"},
			{Email: "admin@favsetter.com", Name: "Admin User"},
		},
		Tags: []Tag{
			{Name: "development", Color: "#3B82F6"},
			{Name: "documentation", Color: "#10B981"},
			{Name: "music", Color: "#F59E0B"},
			{Name: "tutorial", Color: "#8B5CF6"},
			{Name: "framework", Color: "#EF4444"},
			{Name: "css", Color: "#06B6D4"},
			{Name: "database", Color: "#84CC16"},
			{Name: "ui", Color: "#EC4899"},
		},
		Favorites: []Favorite{
			{
				URL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				Title:  "Rick Astley - Never Gonna Give You Up",
				Rating: 5,
				Tags:   []string{"music"},
			},
			{
				URL:    "https://github.com/vercel/next.js",
				Title:  "Next.js by Vercel - The React Framework",
				Rating: 5,
				Tags:   []string{"development", "framework"},
			},
			{
				URL:    "https://tailwindcss.com/docs",
				Title:  "Tailwind CSS Documentation",
				Rating: 4,
				Tags:   []string{"documentation", "css", "development"},
			},
			{
				URL:    "https://www.prisma.io/docs",
				Title:  "Prisma Documentation",
				Rating: 5,
				Tags:   []string{"documentation", "database", "development"},
			},
			{
				URL:         "https://ui.shadcn.com/",
				Title:       "shadcn/ui",
				Description: "Beautifully designed components built with Radix UI and Tailwind CSS.",
				Rating:      5,
				Tags:        []string{"ui", "development", "framework"},
			},
		},
	}
}

type Seeder struct {
	storage  storage.Storage
	accounts accounts.Accounts
	tags     tags.Tags
}

func New(storage storage.Storage, accounts accounts.Accounts, tags tags.Tags) *Seeder {
	return &Seeder{
		storage:  storage,
		accounts: accounts,
		tags:     tags,
	}
}

// Run writes data. Favorites are stored with the given titles and are not
// resolved over the network.
func (s *Seeder) Run(ctx context.Context, data Data) error {
	if len(data.Users) == 0 {
		return nil
	}

	users := make([]*domain.User, 0, len(data.Users))
	for _, u := range data.Users {
		user, err := s.ensureUser(ctx, u)
		if err != nil {
			return err
		}
		users = append(users, user)
	}
	owner := users[0]

	tagIDs := make(map[string]domain.TagID, len(data.Tags))
	for _, t := range data.Tags {
		color := t.Color
		tag, err := s.tags.Create(ctx, owner.ID, t.Name, &color)
		if err != nil {
			return fmt.Errorf("could not create tag %q: %w", t.Name, err)
		}
		tagIDs[tag.Name] = tag.ID
	}

	for _, f := range data.Favorites {
		if err := s.ensureFavorite(ctx, owner.ID, f, tagIDs); err != nil {
			return err
		}
	}

	return nil
}

func (s *Seeder) ensureUser(ctx context.Context, u User) (*domain.User, error) {
	existing, err := s.storage.UserByEmail(ctx, u.Email)
	if err != nil {
		return nil, fmt.Errorf("could not get user %q: %w", u.Email, err)
	}
	if existing != nil {
		logger.Info(ctx, "demo user already exists", zap.String("email", u.Email))

		return existing, nil
	}

	user, err := s.accounts.Register(ctx, u.Email, u.Name, DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("could not register user %q: %w", u.Email, err)
	}
	logger.Info(ctx, "demo user created", zap.String("email", user.Email))

	return user, nil
}

func (s *Seeder) ensureFavorite(ctx context.Context,
	userID domain.UserID,
	f Favorite,
	tagIDs map[string]domain.TagID) error {
	URL, err := favorites.ValidateURL(f.URL)
	if err != nil {
		return fmt.Errorf("invalid demo URL %q: %w", f.URL, err)
	}
	key, err := favorites.URLKey(URL)
	if err != nil {
		return fmt.Errorf("could not build key for %q: %w", URL, err)
	}

	existing, err := s.storage.FavoriteByURLKey(ctx, userID, key)
	if err != nil {
		return fmt.Errorf("could not check favorite %q: %w", URL, err)
	}
	if existing != nil {
		return nil
	}

	host, ok := metadata.Domain(URL)
	if !ok {
		host = domain.UnknownDomain
	}
	favorite := domain.Favorite{
		UserID:      userID,
		URL:         URL,
		URLKey:      key,
		Domain:      host,
		Title:       optional(f.Title),
		Description: optional(f.Description),
	}
	if f.Rating != 0 {
		rating := f.Rating
		favorite.Rating = &rating
	}

	ids := make([]domain.TagID, 0, len(f.Tags))
	for _, name := range f.Tags {
		if id, ok := tagIDs[name]; ok {
			ids = append(ids, id)
		}
	}

	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreFavorite(ctx, favorite)
		if err != nil {
			return err //nolint: wrapcheck
		}

		return tx.SetFavoriteTags(ctx, stored.ID, ids) //nolint: wrapcheck
	})
	if err != nil {
		return fmt.Errorf("could not store favorite %q: %w", URL, err)
	}
	logger.Info(ctx, "demo favorite created", zap.String("url", URL))

	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
