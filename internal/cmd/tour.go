package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flexxoo/website/domain/tour"
	"github.com/flexxoo/website/internal/tui"
)

var (
	tourPaused bool
	tourPlain  bool
)

var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Play the product tour in the terminal",
	Long: `Play the product tour interactively.

Space toggles playback, arrow keys move between steps and digits jump to a
step. With --plain the tour plays once to stdout without a terminal UI.`,
	Args: cobra.NoArgs,
	RunE: runTour,
}

func runTour(cmd *cobra.Command, args []string) error {
	steps, err := tour.DefaultSteps()
	if err != nil {
		return err
	}
	player, err := tour.NewPlayer(steps)
	if err != nil {
		return err
	}

	if tourPlain {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return playPlain(ctx, cmd.OutOrStdout(), player)
	}

	p := tea.NewProgram(tui.New(player, !tourPaused), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// playPlain prints each step as it comes up and returns once the tour has
// played through.
func playPlain(ctx context.Context, w io.Writer, p *tour.Player) error {
	printStep := func(i int) {
		step := p.Steps()[i]
		fmt.Fprintf(w, "[%d/%d] %s\n      %s\n", i+1, p.Len(), step.Title, step.Description)
	}

	p.Play()
	printStep(0)
	last := 0
	return tour.Autoplay(ctx, p, tui.TickInterval, func(st tour.State) {
		if st.Playing && st.Index != last {
			last = st.Index
			printStep(st.Index)
		}
	})
}

func init() {
	tourCmd.Flags().BoolVar(&tourPaused, "paused", false, "start paused instead of playing")
	tourCmd.Flags().BoolVar(&tourPlain, "plain", false, "print steps to stdout instead of the interactive player")
	rootCmd.AddCommand(tourCmd)
}
