package titanicdb

import (
	"context"
	"database/sql"
)

// Passenger represents one row of the passengers table. Age and Fare keep
// their manifest nullability: a NULL cell stays NULL in the mirror.
type Passenger struct {
	ID       int64
	Survived int64
	Pclass   int64
	Name     string
	Sex      string
	Age      sql.NullFloat64
	SibSp    int64
	Parch    int64
	Ticket   string
	Fare     sql.NullFloat64
	Cabin    string
	Embarked string
}

// Queries runs the read queries against the passengers table.
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

const passengerColumns = `passenger_id, survived, pclass, name, sex, age,
	sibsp, parch, ticket, fare, cabin, embarked`

// GetPassenger retrieves a single passenger by manifest ID.
func (q *Queries) GetPassenger(ctx context.Context, id int64) (Passenger, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+passengerColumns+` FROM passengers WHERE passenger_id = ?`, id)

	var p Passenger
	err := row.Scan(&p.ID, &p.Survived, &p.Pclass, &p.Name, &p.Sex, &p.Age,
		&p.SibSp, &p.Parch, &p.Ticket, &p.Fare, &p.Cabin, &p.Embarked)
	return p, err
}

// ListPassengersParams bounds a paged listing.
type ListPassengersParams struct {
	Limit  int64
	Offset int64
}

// ListPassengers retrieves a page of passengers ordered by manifest ID.
func (q *Queries) ListPassengers(ctx context.Context, params ListPassengersParams) ([]Passenger, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+passengerColumns+` FROM passengers
			ORDER BY passenger_id LIMIT ? OFFSET ?`,
		params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var passengers []Passenger
	for rows.Next() {
		var p Passenger
		err := rows.Scan(&p.ID, &p.Survived, &p.Pclass, &p.Name, &p.Sex, &p.Age,
			&p.SibSp, &p.Parch, &p.Ticket, &p.Fare, &p.Cabin, &p.Embarked)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}

	return passengers, rows.Err()
}

// CountPassengers returns the total number of mirrored records.
func (q *Queries) CountPassengers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM passengers`).Scan(&count)
	return count, err
}

// CountSurvivors returns the number of records with a positive ground-truth
// label.
func (q *Queries) CountSurvivors(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM passengers WHERE survived = 1`).Scan(&count)
	return count, err
}

// ToNullFloat converts a nullable manifest cell to its SQL representation.
func ToNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
