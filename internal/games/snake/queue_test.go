package snake

import "testing"

func TestEnqueueRejectsOppositeOfLive(t *testing.T) {
	q := NewDirectionQueue(3)

	if q.Enqueue(Left, Right) {
		t.Error("Enqueue should reject the reverse of the live velocity")
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", q.Len())
	}
	if !q.Enqueue(Up, Right) {
		t.Error("Enqueue should accept a perpendicular turn")
	}
}

func TestEnqueueRejectsOppositeOfLastQueued(t *testing.T) {
	q := NewDirectionQueue(3)

	if !q.Enqueue(Up, Right) {
		t.Fatal("Up should be accepted while moving right")
	}
	if q.Enqueue(Down, Right) {
		t.Error("Down should be rejected after Up was queued")
	}
	// Left reverses the live velocity but not the last queued intent
	if !q.Enqueue(Left, Right) {
		t.Error("Left should be accepted after Up was queued")
	}
}

func TestEnqueueAcceptsRepeatedDirection(t *testing.T) {
	q := NewDirectionQueue(3)

	if !q.Enqueue(Up, Right) || !q.Enqueue(Up, Right) {
		t.Fatal("both Up intents should be accepted")
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", q.Len())
	}
}

func TestEnqueueRejectsZero(t *testing.T) {
	q := NewDirectionQueue(3)
	if q.Enqueue(Direction{}, Right) {
		t.Error("zero direction should never be queued")
	}
}

func TestQueueBoundDropsOldest(t *testing.T) {
	q := NewDirectionQueue(2)

	q.Enqueue(Up, Right)
	q.Enqueue(Left, Right)
	q.Enqueue(Down, Right)

	got := q.Pending()
	want := []Direction{Left, Down}
	if len(got) != len(want) {
		t.Fatalf("Pending() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pending()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestNextPopsInOrder(t *testing.T) {
	q := NewDirectionQueue(3)
	q.Enqueue(Up, Right)
	q.Enqueue(Left, Right)

	live := q.Next(Right)
	if live != Up {
		t.Fatalf("first Next() = %v, expected up", live)
	}
	live = q.Next(live)
	if live != Left {
		t.Fatalf("second Next() = %v, expected left", live)
	}
	if q.Next(live) != Left {
		t.Error("Next() on empty queue should keep the live velocity")
	}
}

func TestNextDiscardsReversal(t *testing.T) {
	q := NewDirectionQueue(3)
	// Bypass Enqueue's filter to exercise the defensive re-check.
	q.pending = append(q.pending, Left)

	if got := q.Next(Right); got != Right {
		t.Errorf("Next() = %v, expected the reversal to be discarded", got)
	}
	if q.Len() != 0 {
		t.Error("the discarded intent should still be consumed")
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{{Up, Down}, {Left, Right}}
	for _, p := range pairs {
		if !p[0].IsOpposite(p[1]) || !p[1].IsOpposite(p[0]) {
			t.Errorf("%v and %v should be opposite", p[0], p[1])
		}
		if p[0].Opposite() != p[1] {
			t.Errorf("%v.Opposite() = %v", p[0], p[0].Opposite())
		}
	}
	if Up.IsOpposite(Left) {
		t.Error("up and left are not opposite")
	}
}
