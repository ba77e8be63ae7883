package model

import "fmt"

// Coord addresses a cell by column (X) and row (Y)
type Coord struct {
	X uint `json:"x"`
	Y uint `json:"y"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
