package models

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrDuplicateClickID means the generated identifier collided with an
	// existing row. The insert is rejected, never overwritten.
	ErrDuplicateClickID = errors.New("click id already exists")

	ErrClickNotFound = errors.New("click not found")
)

// Click is one inbound ad visit. All tracking fields are free-form strings;
// absent values are stored as the empty string, never NULL.
type Click struct {
	ClickID      string
	Fbclid       string
	Fbb          string
	Sub1         string
	Sub2         string
	Sub3         string
	Sub4         string
	Sub5         string
	UserAgent    string
	IP           string
	ScreenWidth  string
	ScreenHeight string
	Language     string
	Timezone     string
	CreatedAt    time.Time
	// Used is flipped by the Telegram bot when the id is redeemed; this
	// service only ever writes it as false.
	Used bool
}

// Normalize collapses whitespace-only values to the empty string so blank
// and absent tracking tags store identically. Non-blank values are kept
// verbatim.
func (c *Click) Normalize() {
	for _, f := range []*string{
		&c.Fbclid, &c.Fbb, &c.Sub1, &c.Sub2, &c.Sub3, &c.Sub4, &c.Sub5,
		&c.UserAgent, &c.IP,
		&c.ScreenWidth, &c.ScreenHeight, &c.Language, &c.Timezone,
	} {
		if strings.TrimSpace(*f) == "" {
			*f = ""
		}
	}
}

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// InsertClick writes one row. The insert is atomic and never retried; a
// primary-key collision surfaces as ErrDuplicateClickID. CreatedAt is
// assigned by the database and read back into c.
func (s *Store) InsertClick(ctx context.Context, c *Click) error {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO clicks
		    (click_id, fbclid, useragent, ip, fbb,
		     sub1, sub2, sub3, sub4, sub5,
		     screen_width, screen_height, language, timezone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING created_at`,
		c.ClickID, c.Fbclid, c.UserAgent, c.IP, c.Fbb,
		c.Sub1, c.Sub2, c.Sub3, c.Sub4, c.Sub5,
		c.ScreenWidth, c.ScreenHeight, c.Language, c.Timezone,
	)
	if err := row.Scan(&c.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("insert click %s: %w", c.ClickID, ErrDuplicateClickID)
		}
		return fmt.Errorf("insert click: %w", err)
	}
	return nil
}

// GetClick reads a row by identifier, the same lookup the Telegram bot
// performs when a visitor sends /start <click_id>.
func (s *Store) GetClick(ctx context.Context, clickID string) (*Click, error) {
	c := &Click{}
	row := s.pool.QueryRow(ctx,
		`SELECT click_id, fbclid, useragent, ip, fbb,
		        sub1, sub2, sub3, sub4, sub5,
		        screen_width, screen_height, language, timezone,
		        created_at, used
		   FROM clicks WHERE click_id = $1`,
		clickID,
	)
	err := row.Scan(
		&c.ClickID, &c.Fbclid, &c.UserAgent, &c.IP, &c.Fbb,
		&c.Sub1, &c.Sub2, &c.Sub3, &c.Sub4, &c.Sub5,
		&c.ScreenWidth, &c.ScreenHeight, &c.Language, &c.Timezone,
		&c.CreatedAt, &c.Used,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClickNotFound
		}
		return nil, fmt.Errorf("get click: %w", err)
	}
	return c, nil
}
