package models

// Passenger is the API representation of one manifest record. Age and
// Fare are omitted when the source cell was empty.
type Passenger struct {
	ID       int      `json:"id"`
	Survived int      `json:"survived"`
	Pclass   int      `json:"pclass"`
	Name     string   `json:"name"`
	Sex      string   `json:"sex"`
	Age      *float64 `json:"age,omitempty"`
	SibSp    int      `json:"sibsp"`
	Parch    int      `json:"parch"`
	Ticket   string   `json:"ticket"`
	Fare     *float64 `json:"fare,omitempty"`
	Cabin    string   `json:"cabin,omitempty"`
	Embarked string   `json:"embarked,omitempty"`
}

func NewPassenger(id, survived, pclass int, name, sex string, age *float64, sibsp, parch int, ticket string, fare *float64, cabin, embarked string) Passenger {
	return Passenger{
		ID:       id,
		Survived: survived,
		Pclass:   pclass,
		Name:     name,
		Sex:      sex,
		Age:      age,
		SibSp:    sibsp,
		Parch:    parch,
		Ticket:   ticket,
		Fare:     fare,
		Cabin:    cabin,
		Embarked: embarked,
	}
}
