package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theirongolddev/switchride/internal/carousel"
	"github.com/theirongolddev/switchride/internal/cli"
	"github.com/theirongolddev/switchride/internal/content"
	"github.com/theirongolddev/switchride/internal/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagPlay     bool
	flagInterval time.Duration
)

var slidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "List the hero slides, or play the carousel",
	RunE:  runSlides,
}

func init() {
	slidesCmd.Flags().BoolVar(&flagPlay, "play", false, "Auto-advance until interrupted, logging each change")
	slidesCmd.Flags().DurationVar(&flagInterval, "interval", 0, "Auto-advance interval (default from config)")
	rootCmd.AddCommand(slidesCmd)
}

func runSlides(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	slides := content.Slides()

	if !flagPlay {
		rows := make([][]string, 0, len(slides))
		for i, s := range slides {
			rows = append(rows, []string{
				fmt.Sprint(i + 1),
				s.Eyebrow,
				s.Title + " " + s.Accent,
				s.Primary.Label + " → " + string(s.Primary.Anchor),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Hero Slides",
			Headers: []string{"#", "Eyebrow", "Title", "Primary"},
			Rows:    rows,
		}))
		fmt.Println()
		return nil
	}

	interval := time.Duration(cfg.Carousel.IntervalSec) * time.Second
	if cmd.Flags().Changed("interval") {
		interval = flagInterval
	}
	if interval <= 0 {
		return errors.New("--interval must be positive")
	}

	c, err := carousel.New(slides)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logger)
	defer func() { _ = log.Close() }()

	player := carousel.NewPlayer(c, interval, carousel.PolicyFor(cfg.Carousel.ResetOnNavigate),
		carousel.OnChange(func(ch carousel.Change) {
			log.WithFields(logrus.Fields{
				"from":  ch.From,
				"to":    ch.To,
				"slide": ch.Slide.ID,
				"cause": ch.Cause,
			}).Info("slide changed")
		}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Playing %d slides every %s. Ctrl+C to stop.\n", len(slides), interval)
	}
	log.WithField("slide", c.Current().ID).Info("carousel started")

	if err := player.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
