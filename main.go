package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"eterra/internal/game"
)

// Hot-seat duel against the one-ply advisor. Each side gets a dealt hand of
// eight cards; the human picks a hand index and a cell each turn.
func main() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	g, err := game.NewGame(1, "You", "CPU", game.DefaultBoardSize)
	if err != nil {
		fmt.Println("failed to start game:", err)
		os.Exit(1)
	}

	hands := map[string][]game.Card{
		"You": dealHand(rng, 8),
		"CPU": dealHand(rng, 8),
	}

	reader := bufio.NewReader(os.Stdin)
	for g.Status != game.StatusFinished {
		player := g.Turn
		fmt.Printf("\nTurn: %s\n", player)
		printHand(hands[player])
		fmt.Println("Board:")
		printBoard(g)

		if player == "CPU" {
			mv, ok := game.BestMove(g, "CPU", hands["CPU"], game.DefaultWeights())
			if !ok {
				fmt.Println("CPU has no move.")
				break
			}
			fmt.Printf("CPU plays %v at (%d,%d)\n", mv.Card, mv.X, mv.Y)
			if _, err := g.PlayTurn("CPU", mv.X, mv.Y, mv.Card); err != nil {
				fmt.Println("CPU move rejected:", err)
				break
			}
			hands["CPU"] = removeCard(hands["CPU"], mv.Card)
			continue
		}

		fmt.Println("Enter move: card x y (example: 0 1 2)")
		for {
			fmt.Print("> ")
			line, _ := reader.ReadString('\n')
			parts := strings.Fields(line)
			if len(parts) != 3 {
				fmt.Println("Bad format. Try again.")
				continue
			}
			idx, _ := strconv.Atoi(parts[0])
			x, _ := strconv.Atoi(parts[1])
			y, _ := strconv.Atoi(parts[2])
			if idx < 0 || idx >= len(hands["You"]) {
				fmt.Println("No such card. Try again.")
				continue
			}
			card := hands["You"][idx]
			captured, err := g.PlayTurn("You", x, y, card)
			if err != nil {
				fmt.Println("Invalid move:", err)
				continue
			}
			if len(captured) > 0 {
				fmt.Printf("Captured %d cell(s)!\n", len(captured))
			}
			hands["You"] = append(hands["You"][:idx], hands["You"][idx+1:]...)
			break
		}
	}

	fmt.Println("\nGame over!")
	js, _ := json.MarshalIndent(g, "", "  ")
	fmt.Println(string(js))
}

func dealHand(rng *rand.Rand, n int) []game.Card {
	hand := make([]game.Card, 0, n)
	for i := 0; i < n; i++ {
		hand = append(hand, game.Card{
			Top:    uint8(rng.Intn(int(game.MaxRank) + 1)),
			Right:  uint8(rng.Intn(int(game.MaxRank) + 1)),
			Bottom: uint8(rng.Intn(int(game.MaxRank) + 1)),
			Left:   uint8(rng.Intn(int(game.MaxRank) + 1)),
		})
	}
	return hand
}

func removeCard(hand []game.Card, card game.Card) []game.Card {
	for i, c := range hand {
		if c == card {
			return append(hand[:i], hand[i+1:]...)
		}
	}
	return hand
}

func printHand(hand []game.Card) {
	fmt.Print("Hand:")
	for i, c := range hand {
		fmt.Printf(" [%d]%d/%d/%d/%d", i, c.Top, c.Right, c.Bottom, c.Left)
	}
	fmt.Println()
}

func printBoard(g *game.Game) {
	for y := 0; y < g.Board.Size; y++ {
		for x := 0; x < g.Board.Size; x++ {
			cell := g.Board.Cells[y][x]
			if !cell.Occupied {
				fmt.Print(". ")
			} else {
				fmt.Printf("%c ", cell.Controller[0])
			}
		}
		fmt.Println()
	}
}
