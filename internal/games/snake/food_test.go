package snake

import (
	"math/rand"
	"testing"
)

func TestPickKindWeights(t *testing.T) {
	tests := []struct {
		r    float64
		want FoodKind
	}{
		{0, FoodNormal},
		{0.69, FoodNormal},
		{0.7, FoodBonus},
		{0.89, FoodBonus},
		{0.9, FoodSpeed},
		{0.999, FoodSpeed},
	}

	for _, tc := range tests {
		if got := PickKind(tc.r); got != tc.want {
			t.Errorf("PickKind(%v) = %v, expected %v", tc.r, got, tc.want)
		}
	}
}

func TestFoodKindEffects(t *testing.T) {
	if FoodNormal.ScoreDelta() != 1 || FoodNormal.SpeedDelta() != 0 {
		t.Error("normal food should be +1 score, no speed")
	}
	if FoodBonus.ScoreDelta() != 3 || FoodBonus.SpeedDelta() != 0 {
		t.Error("bonus food should be +3 score, no speed")
	}
	if FoodSpeed.ScoreDelta() != 1 || FoodSpeed.SpeedDelta() != 1 {
		t.Error("speed food should be +1 score, +1 speed")
	}
}

func TestPlaceSkipsOccupiedCells(t *testing.T) {
	body := []Cell{{X: 1, Y: 1}, {X: 2, Y: 2}}
	// First two samples hit the snake, the third is free.
	rng := newScripted([]float64{0.95}, []int{1, 1, 2, 2, 3, 4})
	sp := NewSpawner(rng, 10)

	food := sp.Place(body)
	if food.Cell != (Cell{X: 3, Y: 4}) {
		t.Errorf("Place() = %+v, expected (3, 4)", food.Cell)
	}
	if food.Kind != FoodSpeed {
		t.Errorf("Kind = %v, expected speed", food.Kind)
	}
}

func TestPlaceNeverOnSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sp := NewSpawner(rng, 5)

	// Snake covering all but the last row
	var body []Cell
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			body = append(body, Cell{X: x, Y: y})
		}
	}

	for i := 0; i < 200; i++ {
		food := sp.Place(body)
		if food.Cell.Y != 4 {
			t.Fatalf("food spawned on snake at %+v", food.Cell)
		}
	}
}

func TestPlaceFullBoard(t *testing.T) {
	sp := NewSpawner(rand.New(rand.NewSource(1)), 2)
	body := []Cell{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	food := sp.Place(body)
	if food.Placed() {
		t.Errorf("expected no food on a full board, got %+v", food.Cell)
	}
}
