package rule

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"yatzy/formula"
)

const miniYatzy = `
name: mini
title: Mini Yatzy
dice: 3
rolls: 2
rows:
  - id: ones
    title: Ones
    formula: SUM 1
    max: 3
    playable: true
  - id: twos
    title: Twos
    formula: SUM 2
    max: 6
    playable: true
  - id: bonus
    title: Bonus
    limit: 6
    max: 10
    bonus: true
    depends: [ones, twos]
  - id: total
    title: Total
    sum: true
    result: true
    depends: [ones, twos, bonus]
`

func TestLoad(t *testing.T) {
	rule, err := Load(strings.NewReader(miniYatzy))
	require.NoError(t, err)

	require.Equal(t, "mini", rule.Name)
	require.Equal(t, 3, rule.NumDice)
	require.Equal(t, 2, rule.NumRolls)
	require.Len(t, rule.Rows, 4)

	require.Equal(t, formula.OpSum, rule.Rows[0].Formula.Op)
	require.Equal(t, []int{1}, rule.Rows[0].Formula.Args)

	require.Equal(t, []int{0, 1}, rule.Rows[2].DependsOn, "depends resolve to row indices")
	require.Equal(t, 3, rule.ResultRow)
	require.Equal(t, 3+6+10, rule.TotalScore, "playable and bonus maxima")
	require.Equal(t, []int{0, 1}, rule.PlayableRows())
}

func TestLoadRejectsUnknownDependency(t *testing.T) {
	bad := strings.Replace(miniYatzy, "depends: [ones, twos]", "depends: [ones, sevens]", 1)
	_, err := Load(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrInvalidDefinition)
	require.Contains(t, err.Error(), "sevens")
}

func TestLoadRejectsEmptyAggregate(t *testing.T) {
	bad := strings.Replace(miniYatzy, "depends: [ones, twos]\n", "", 1)
	_, err := Load(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestLoadRejectsDuplicateResultRows(t *testing.T) {
	bad := strings.Replace(miniYatzy, "max: 6\n    playable: true", "max: 6\n    playable: true\n    sum: true\n    result: true\n    depends: [ones]", 1)
	_, err := Load(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrInvalidDefinition)
	require.Contains(t, err.Error(), "more than one result row")
}

func TestLoadRejectsMissingResultRow(t *testing.T) {
	bad := strings.Replace(miniYatzy, "result: true\n", "", 1)
	_, err := Load(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestLoadRejectsPlayableRowWithoutFormula(t *testing.T) {
	bad := strings.Replace(miniYatzy, "formula: SUM 2\n    ", "", 1)
	_, err := Load(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mini.yaml"), []byte(miniYatzy), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	rules, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.Equal(t, "mini", rules[0].Name)
}
