package domain

import (
	"time"

	"github.com/beka-birhanu/hashi-api/hashi"
	"github.com/google/uuid"
)

// PuzzleRecord is the stored form of a generated puzzle. The embedded puzzle
// always carries its planted solution; the question form is derived on read.
type PuzzleRecord struct {
	ID         uuid.UUID    `bson:"_id"`
	Day        string       `bson:"day,omitempty"`
	Difficulty string       `bson:"difficulty"`
	Puzzle     hashi.Puzzle `bson:"puzzle"`
	CreatedAt  time.Time    `bson:"createdAt"`
}

// Question returns the record's puzzle without its solution.
func (r PuzzleRecord) Question() hashi.Puzzle {
	return r.Puzzle.WithoutSolution()
}
