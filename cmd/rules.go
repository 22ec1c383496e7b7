package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"yatzy/rule"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [variant]",
	Short: "List rule variants or print one scorecard layout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, name := range rule.Variants() {
				r, err := rule.Variant(name)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%s (%d dice, %d rolls, max %d)\n",
					r.Name, r.Title, r.NumDice, r.NumRolls, r.TotalScore)
			}
			if dir := viper.GetString("rules_dir"); dir != "" {
				rules, err := rule.LoadDir(dir)
				if err != nil {
					return err
				}
				for _, r := range rules {
					fmt.Printf("%s\t%s (%d dice, %d rolls, max %d)\n",
						r.Name, r.Title, r.NumDice, r.NumRolls, r.TotalScore)
				}
			}
			return nil
		}

		r, err := findVariant(args[0])
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "row\tformula\tlimit\tmax\tkind")
		for i := range r.Rows {
			row := &r.Rows[i]
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", row.Title, row.Expr, row.Limit, row.Max, rowKind(row))
		}
		return w.Flush()
	},
}

func rowKind(row *rule.Row) string {
	switch {
	case row.Result:
		return "result"
	case row.Bonus:
		return "bonus"
	case row.Sum:
		return "sum"
	case row.RollCounter:
		return "rolls"
	case row.Playable:
		return "playable"
	default:
		return ""
	}
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
