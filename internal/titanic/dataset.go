package titanic

import "steerage.maritimedata.org/internal/scoring"

// Passenger represents one row of the Titanic passenger manifest.
type Passenger struct {
	ID       int      // PassengerId
	Survived int      // Survived (0/1 ground-truth label)
	Pclass   int      // Pclass (ordinal 1/2/3)
	Name     string   // Name
	Sex      string   // Sex ("male"|"female")
	Age      *float64 // Age in years; nil when the cell is empty
	SibSp    int      // SibSp (siblings/spouses aboard)
	Parch    int      // Parch (parents/children aboard)
	Ticket   string   // Ticket
	Fare     *float64 // Fare; nil when the cell is empty
	Cabin    string   // Cabin
	Embarked string   // Embarked ("S"|"C"|"Q", may be empty)
}

// ScoringInput converts a manifest record to a scorer input. The nullable
// Age and Fare cells pass through as-is; the scorer owns the fallback
// substitution, the record never does.
func (p Passenger) ScoringInput() scoring.Input {
	return scoring.Input{
		Pclass:   p.Pclass,
		Sex:      p.Sex,
		Age:      p.Age,
		SibSp:    float64(p.SibSp),
		Parch:    float64(p.Parch),
		Fare:     p.Fare,
		Embarked: p.Embarked,
	}
}
