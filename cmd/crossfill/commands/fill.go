package commands

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arbelos/crossfill/config"
	"github.com/arbelos/crossfill/puzzle"
	"github.com/arbelos/crossfill/render"
	"github.com/arbelos/crossfill/solver"
	"github.com/arbelos/crossfill/wordlist"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Solve a grid structure against a word list",
	RunE:  runFill,
}

func init() {
	fillCmd.Flags().StringP("structure", "s", "", "path to the structure file (text or YAML)")
	fillCmd.Flags().StringP("words", "w", "", "path to the word list, one word per line")
	fillCmd.Flags().StringP("out", "o", "", "save the filled grid to this PNG file")
	fillCmd.Flags().Int("cell-size", config.DefaultCellSize, "PNG cell size in pixels")
	viper.BindPFlag("structure", fillCmd.Flags().Lookup("structure"))
	viper.BindPFlag("words", fillCmd.Flags().Lookup("words"))
	viper.BindPFlag("out", fillCmd.Flags().Lookup("out"))
	viper.BindPFlag("cell-size", fillCmd.Flags().Lookup("cell-size"))
	rootCmd.AddCommand(fillCmd)
}

func runFill(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	puz, err := puzzle.LoadFile(cfg.StructurePath)
	if err != nil {
		return err
	}
	words, err := wordlist.Load(cfg.WordsPath)
	if err != nil {
		return err
	}

	assignment, stats, err := solver.New(puz, words).Solve()
	if errors.Is(err, solver.ErrNoSolution) {
		fmt.Fprintln(cmd.OutOrStdout(), "No solution.")
		cmd.SilenceErrors = true
		return err
	}
	if err != nil {
		return err
	}
	log.Debug().Int("states", stats.States).Int("backtracks", stats.Backtracks).
		Msg("fill complete")

	fmt.Fprint(cmd.OutOrStdout(), render.Text(puz, assignment))
	if cfg.OutputPath != "" {
		if err := render.SavePNG(cfg.OutputPath, puz, assignment, cfg.CellSize); err != nil {
			return err
		}
		log.Info().Str("path", cfg.OutputPath).Msg("saved image")
	}
	return nil
}
