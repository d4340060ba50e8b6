package main

import (
	"fmt"
	"io"

	"quoridor/engine"
	"quoridor/game"

	"github.com/logrusorgru/aurora"
)

// renderBoard draws s with row 0 at the top. Walls are drawn in the colour of
// the player who placed them.
func renderBoard(w io.Writer, s game.Snapshot) {
	type cell [2]int
	right := map[cell]game.Player{} // wall between (x,y) and (x+1,y)
	below := map[cell]game.Player{} // wall between (x,y) and (x,y+1)
	for _, pw := range s.Walls {
		if pw.Orientation == game.Vertical {
			right[cell{pw.X, pw.Y}] = pw.Owner
			right[cell{pw.X, pw.Y + 1}] = pw.Owner
		} else {
			below[cell{pw.X, pw.Y}] = pw.Owner
			below[cell{pw.X + 1, pw.Y}] = pw.Owner
		}
	}

	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			fmt.Fprint(w, pawnAt(s, x, y))
			if x == s.Size-1 {
				break
			}
			if owner, ok := right[cell{x, y}]; ok {
				fmt.Fprint(w, colour(owner, "|"))
			} else {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w)

		if y == s.Size-1 {
			break
		}
		for x := 0; x < s.Size; x++ {
			if owner, ok := below[cell{x, y}]; ok {
				fmt.Fprint(w, colour(owner, "---"))
			} else {
				fmt.Fprint(w, "   ")
			}
			if x < s.Size-1 {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "walls left: %d / %d, distances: %d / %d\n",
		s.WallsRemaining[0], s.WallsRemaining[1], s.Distances[0], s.Distances[1])
}

func pawnAt(s game.Snapshot, x, y int) any {
	for p, pawn := range s.Pawns {
		if pawn.X == x && pawn.Y == y {
			return colour(game.Player(p), fmt.Sprintf(" %d ", p))
		}
	}
	return " . "
}

func colour(p game.Player, text string) aurora.Value {
	if p == game.Player0 {
		return aurora.Cyan(text)
	}
	return aurora.Magenta(text)
}

// printEvent is the play mode observer.
func printEvent(w io.Writer) engine.Observer {
	return func(event engine.Event) {
		if event.Action != nil {
			fmt.Fprintf(w, "%s %s: %s (%v)\n",
				aurora.Bold(fmt.Sprintf("#%d", event.Step)), event.Player, *event.Action, event.Think)
		} else {
			fmt.Fprintf(w, "%s %s has no legal action\n", aurora.Bold(fmt.Sprintf("#%d", event.Step)), event.Player)
		}
		renderBoard(w, event.Board)
		if event.Outcome.IsTerminal() {
			fmt.Fprintln(w, aurora.Green(event.Outcome.String()).Bold())
		}
		fmt.Fprintln(w)
	}
}
