// Command decorum-cli generates a single scenario and prints it: both
// boards as 2x2 grids, every player's conditions with violation markers,
// the perturbation log and a verification summary.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/namsral/flag"

	"github.com/MJE43/decorum-scenario-go/internal/house"
	"github.com/MJE43/decorum-scenario-go/internal/rules"
	"github.com/MJE43/decorum-scenario-go/internal/scenario"
)

func main() {
	var (
		players    = flag.Int("players", 2, "Number of players (2-4)")
		difficulty = flag.String("difficulty", "medium", "Difficulty: easy, medium or hard")
		seed       = flag.Int64("seed", -1, "Random seed; -1 draws one from the clock")
		asJSON     = flag.Bool("json", false, "Emit the serialized scenario as JSON")
	)
	flag.Parse()

	if *players < 2 || *players > 4 {
		fmt.Fprintf(os.Stderr, "players must be 2-4, got %d\n", *players)
		os.Exit(1)
	}
	d := scenario.Difficulty(*difficulty)
	switch d {
	case scenario.Easy, scenario.Medium, scenario.Hard:
	default:
		fmt.Fprintf(os.Stderr, "unknown difficulty %q, using medium\n", *difficulty)
		d = scenario.Medium
	}

	cfg := scenario.GenerateConfig{NumPlayers: *players, Difficulty: d}
	if *seed >= 0 {
		s := uint32(*seed)
		cfg.Seed = &s
	}

	res := scenario.Generate(cfg)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Scenario); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Scenario: %d players, %s difficulty, seed %d\n", *players, d, res.Seed)
	printBoard(res.Initial, "INITIAL BOARD (visible to all players)")
	printBoard(res.Solution, "SOLUTION BOARD (hidden)")
	printPlayers(res)
	printMoves(res)
	printVerification(res)
}

const colWidth = 34

func printBoard(s *house.State, label string) {
	fmt.Printf("\n%s\n\n", label)
	layout := s.Layout()
	sep := "+" + strings.Repeat("-", colWidth) + "+" + strings.Repeat("-", colWidth) + "+"

	for _, floor := range []struct {
		label string
		rooms []string
	}{
		{"UPSTAIRS", layout[house.AreaUpstairs]},
		{"DOWNSTAIRS", layout[house.AreaDownstairs]},
	} {
		fmt.Printf("  %s\n%s\n", floor.label, sep)

		cells := make([]string, 0, 2)
		for _, rn := range floor.rooms {
			room := s.Room(rn)
			cells = append(cells, fmt.Sprintf(" %s [%s walls]", room.Name, room.WallColor))
		}
		printRow(cells)

		for _, ot := range house.ObjectTypes {
			cells = cells[:0]
			for _, rn := range floor.rooms {
				if tok := s.Room(rn).Object(ot); tok != nil {
					cells = append(cells, fmt.Sprintf("   %s: %s %s", ot, tok.Style, tok.Color()))
				} else {
					cells = append(cells, fmt.Sprintf("   %s: (empty)", ot))
				}
			}
			printRow(cells)
		}
		fmt.Printf("%s\n\n", sep)
	}
}

func printRow(cells []string) {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = pad(c, colWidth)
	}
	fmt.Printf("|%s|\n", strings.Join(padded, "|"))
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s[:w]
	}
	return s + strings.Repeat(" ", w-len(s))
}

func printPlayers(res scenario.Result) {
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("  PLAYER CONDITIONS")
	fmt.Println(strings.Repeat("=", 70))

	for pi, p := range res.Scenario.Players {
		violated := 0
		for _, c := range res.Assignments[pi] {
			if !rules.Evaluate(c, res.Initial) {
				violated++
			}
		}
		fmt.Printf("\n  Player %d (voice: %s)  [%d/%d violated on initial board]\n",
			p.ID, p.Voice, violated, len(p.Constraints))
		for i, ct := range p.Constraints {
			status := "OK"
			if !rules.Evaluate(res.Assignments[pi][i], res.Initial) {
				status = "VIOLATED"
			}
			fmt.Printf("    %d. %s  [%s]\n", i+1, ct.Text, status)
		}
	}
}

func printMoves(res scenario.Result) {
	fmt.Printf("\n%s\n  PERTURBATION LOG (%d moves, solution -> initial)\n%s\n",
		strings.Repeat("=", 70), len(res.Moves), strings.Repeat("=", 70))
	for i, line := range res.Scenario.PerturbationLog {
		fmt.Printf("    %d. %s\n", i+1, line)
	}
	if len(res.Moves) == 0 {
		fmt.Println("    (no perturbations applied)")
	}
}

func printVerification(res scenario.Result) {
	fmt.Printf("\n%s\n  VERIFICATION\n%s\n", strings.Repeat("=", 70), strings.Repeat("=", 70))

	total, bad := 0, 0
	for pi, rs := range res.Assignments {
		for _, c := range rs {
			total++
			if !rules.Evaluate(c, res.Solution) {
				bad++
				fmt.Printf("  FAIL on solution: player %d: %s\n", pi+1, c)
			}
		}
	}
	if bad == 0 {
		fmt.Printf("  All %d constraints satisfied by solution. OK\n", total)
	}

	if res.PlayersAtTarget == len(res.Assignments) {
		fmt.Println("  Every player starts with at least one violated rule. OK")
	} else {
		fmt.Printf("  WARNING: only %d/%d players start with enough violations\n",
			res.PlayersAtTarget, len(res.Assignments))
	}
}
