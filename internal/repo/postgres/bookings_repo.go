package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diagnosis/luxehaven/internal/domain"
)

type BookingRepo struct{ pool *pgxpool.Pool }

func NewBookingRepo(pool *pgxpool.Pool) *BookingRepo { return &BookingRepo{pool: pool} }

const schema = `CREATE TABLE IF NOT EXISTS booking_inquiries (
  id               TEXT PRIMARY KEY,
  full_name        TEXT NOT NULL,
  email            TEXT NOT NULL,
  phone            TEXT NOT NULL,
  check_in_date    TEXT NOT NULL,
  check_out_date   TEXT NOT NULL,
  preferred_time   TEXT NOT NULL DEFAULT '',
  service_type     TEXT NOT NULL,
  number_of_guests INT  NOT NULL,
  special_requests TEXT NOT NULL DEFAULT '',
  agree_to_terms   BOOLEAN NOT NULL,
  status           TEXT NOT NULL DEFAULT 'pending',
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS booking_inquiries_created_at_idx ON booking_inquiries (created_at DESC);`

const bookingCols = `id, full_name, email, phone,
check_in_date, check_out_date, preferred_time,
service_type, number_of_guests, special_requests,
agree_to_terms, status, created_at`

// EnsureSchema creates the inquiries table when it does not exist yet.
func (r *BookingRepo) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, err := r.pool.Exec(ctx, schema)
	return err
}

// Save inserts b. A second save with the same id is a no-op.
func (r *BookingRepo) Save(ctx context.Context, b domain.Booking) (string, error) {
	const q = `INSERT INTO booking_inquiries (` + bookingCols + `)
  VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
  ON CONFLICT (id) DO NOTHING`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.pool.Exec(ctx, q,
		b.ID, b.FullName, b.Email, b.Phone,
		b.CheckInDate, b.CheckOutDate, b.PreferredTime,
		string(b.ServiceType), b.NumberOfGuests, b.SpecialRequests,
		b.AgreeToTerms, string(b.Status), b.CreatedAt,
	)
	if err != nil {
		return "", err
	}
	return b.ID, nil
}

func (r *BookingRepo) Get(ctx context.Context, id string) (*domain.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM booking_inquiries WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	b, err := scanBooking(r.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BookingRepo) ListRecent(ctx context.Context, limit int) ([]domain.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM booking_inquiries ORDER BY created_at DESC LIMIT $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Booking, 0, limit)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	var serviceType, status string
	err := row.Scan(
		&b.ID, &b.FullName, &b.Email, &b.Phone,
		&b.CheckInDate, &b.CheckOutDate, &b.PreferredTime,
		&serviceType, &b.NumberOfGuests, &b.SpecialRequests,
		&b.AgreeToTerms, &status, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.ServiceType = domain.ServiceType(serviceType)
	b.Status = domain.BookingStatus(status)
	return &b, nil
}
