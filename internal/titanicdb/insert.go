package titanicdb

import (
	"database/sql"
	"fmt"
)

// InsertPassengerBatch adds manifest records to the database inside a
// single transaction.
func InsertPassengerBatch(db *sql.DB, passengers []Passenger) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO passengers (
			passenger_id, survived, pclass, name, sex, age,
			sibsp, parch, ticket, fare, cabin, embarked
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, p := range passengers {
		_, err := stmt.Exec(
			p.ID, p.Survived, p.Pclass, p.Name, p.Sex, p.Age,
			p.SibSp, p.Parch, p.Ticket, p.Fare, p.Cabin, p.Embarked,
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting passenger: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
