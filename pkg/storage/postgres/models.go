package postgres

import (
	"cmp"
	"database/sql"
	"time"

	"favsetter/pkg/domain"

	"github.com/google/uuid"
)

type PgUser struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Email        string         `db:"email"`
	Name         sql.NullString `db:"name"`
	PasswordHash string         `db:"password_hash"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		Name:         p.Name.String,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		Email:        user.Email,
		Name:         nullString(&user.Name),
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

type PgFavorite struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	URL         string         `db:"url"`
	URLKey      string         `db:"url_key"`
	Domain      string         `db:"domain"`
	Title       sql.NullString `db:"title"`
	Description sql.NullString `db:"description"`
	Rating      sql.NullInt64  `db:"rating"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgFavorite) ToDomain() *domain.Favorite {
	var rating *int
	if p.Rating.Valid {
		r := int(p.Rating.Int64)
		rating = &r
	}

	return &domain.Favorite{
		ID:          domain.FavoriteID(p.ID),
		UserID:      domain.UserID(p.UserID),
		URL:         p.URL,
		URLKey:      p.URLKey,
		Domain:      p.Domain,
		Title:       stringPtr(p.Title),
		Description: stringPtr(p.Description),
		Rating:      rating,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *PgFavorite) FromDomain(favorite domain.Favorite) {
	rating := sql.NullInt64{}
	if favorite.Rating != nil {
		rating = sql.NullInt64{Int64: int64(*favorite.Rating), Valid: true}
	}

	*p = PgFavorite{
		ID:          uuid.UUID(favorite.ID),
		UserID:      uuid.UUID(favorite.UserID),
		URL:         favorite.URL,
		URLKey:      cmp.Or(favorite.URLKey, favorite.URL),
		Domain:      favorite.Domain,
		Title:       nullString(favorite.Title),
		Description: nullString(favorite.Description),
		Rating:      rating,
		CreatedAt:   favorite.CreatedAt,
		UpdatedAt:   favorite.UpdatedAt,
	}
}

type PgTag struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Name  string         `db:"name"`
	Color sql.NullString `db:"color"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgTag) ToDomain() *domain.Tag {
	return &domain.Tag{
		ID:        domain.TagID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Name:      p.Name,
		Color:     stringPtr(p.Color),
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgTag) FromDomain(tag domain.Tag) {
	*p = PgTag{
		ID:        uuid.UUID(tag.ID),
		UserID:    uuid.UUID(tag.UserID),
		Name:      tag.Name,
		Color:     nullString(tag.Color),
		CreatedAt: tag.CreatedAt,
	}
}

// PgTagCount is a tag row joined with the number of favorites it is attached to.
type PgTagCount struct {
	PgTag
	FavoriteCount int64 `db:"favorite_count"`
}

// PgFavoriteTag is a tag row together with the favorite it is attached to.
type PgFavoriteTag struct {
	PgTag
	FavoriteID uuid.UUID `db:"favorite_id"`
}

func pgFavoritesToDomain(rows []PgFavorite) []domain.Favorite {
	out := make([]domain.Favorite, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func pgTagsToDomain(rows []PgTag) []domain.Tag {
	out := make([]domain.Tag, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String

	return &v
}
