package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"yatzy/engine"
	"yatzy/game"
	"yatzy/rule"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Simulate a full game and print the scorecard",
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, _ := cmd.Flags().GetString("variant")
		players, _ := cmd.Flags().GetStringSlice("players")
		seed, _ := cmd.Flags().GetUint64("seed")
		strategyName, _ := cmd.Flags().GetString("strategy")

		r, err := findVariant(variant)
		if err != nil {
			return err
		}
		session, err := game.NewSession(r, players)
		if err != nil {
			return err
		}

		strategies := make([]engine.Strategy, len(players))
		for i := range strategies {
			switch strategyName {
			case "greedy":
				strategies[i] = engine.Greedy{}
			case "first":
				strategies[i] = engine.FirstFree{}
			default:
				return fmt.Errorf("unknown strategy %q", strategyName)
			}
		}

		e, err := engine.LocalGame(session, engine.NewRandomRoller(seed), strategies)
		if err != nil {
			return err
		}
		final, err := e.Run()
		if err != nil {
			return err
		}

		printCard(session)
		fmt.Println()
		for place, res := range final {
			fmt.Printf("%d. %s — %d points\n", place+1, res.Player, res.Score)
		}
		return nil
	},
}

func printCard(s *game.Session) {
	r := s.Rule()
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\n", r.Title, strings.Join(s.Players(), "\t"))
	for i := range r.Rows {
		row := &r.Rows[i]
		fmt.Fprintf(w, "%s", row.Title)
		for p := range s.Players() {
			cells, err := s.Cells(p)
			if err != nil {
				continue
			}
			cell := cells[i]
			switch {
			case row.Playable && !cell.Registered:
				fmt.Fprint(w, "\t-")
			default:
				fmt.Fprintf(w, "\t%d", cell.Value)
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func init() {
	playCmd.Flags().String("variant", "yatzy", "rule variant to play")
	playCmd.Flags().StringSlice("players", []string{"Player1", "Player2"}, "player names in turn order")
	playCmd.Flags().Uint64("seed", 0, "dice seed, 0 for random")
	playCmd.Flags().String("strategy", "greedy", "player strategy: greedy or first")
	viper.BindPFlag("variant", playCmd.Flags().Lookup("variant"))
	viper.BindPFlag("players", playCmd.Flags().Lookup("players"))
	rootCmd.AddCommand(playCmd)
}

// findVariant resolves a rule name against the built-in catalog, then any
// configured rules directory.
func findVariant(name string) (*rule.Rule, error) {
	if r, err := rule.Variant(name); err == nil {
		return r, nil
	}
	if dir := viper.GetString("rules_dir"); dir != "" {
		rules, err := rule.LoadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, r := range rules {
			if r.Name == name {
				return r, nil
			}
		}
	}
	return nil, fmt.Errorf("unknown rule variant %q", name)
}
