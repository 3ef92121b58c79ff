package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/item"
	"github.com/osse101/IdleMiner_Go/internal/loot"
	"github.com/osse101/IdleMiner_Go/internal/mining"
)

type SimulateCommand struct{}

func (c *SimulateCommand) Name() string { return "simulate" }

func (c *SimulateCommand) Description() string {
	return "Replay continuous or offline mining for a fresh player with a fixed seed"
}

type simOptions struct {
	Mode    string
	MineID  string
	Level   int
	Elapsed time.Duration
	Seed    uint64
}

func (c *SimulateCommand) Run(args []string) error {
	var opts simOptions
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.StringVar(&opts.Mode, "mode", string(domain.ModeContinuous), "continuous or offline")
	fs.StringVar(&opts.MineID, "mine", "copper", "mine id")
	fs.IntVar(&opts.Level, "level", domain.DefaultMiningLevel, "mining level")
	fs.DurationVar(&opts.Elapsed, "elapsed", time.Hour, "simulated time away")
	fs.Uint64Var(&opts.Seed, "seed", 1, "loot seed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Simulating %s mining in %s", opts.Mode, opts.MineID))
	return simulate(os.Stdout, opts)
}

func simulate(w io.Writer, opts simOptions) error {
	ctx := context.Background()
	engine := mining.NewEngine(
		mining.NewDefaultCatalog(),
		item.NewMemoryResolver(item.DefaultItems()),
		loot.NewSeededRoller(opts.Seed),
		mining.DefaultConfig(),
	)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := domain.NewPlayer("sim", "sim", start)
	p.MiningLevel = opts.Level
	end := start.Add(opts.Elapsed)

	var (
		attempts int
		gained   map[string]int
		stamina  int
		note     string
	)

	switch domain.MiningMode(opts.Mode) {
	case domain.ModeContinuous:
		if err := engine.StartContinuous(p, opts.MineID, start); err != nil {
			return err
		}
		res, err := engine.SettleContinuous(ctx, p, end)
		if err != nil {
			return err
		}
		attempts, gained, stamina = res.Attempts, res.ItemsGained, res.StaminaRemaining
		if res.StopReason != domain.StopReasonNone {
			note = "stopped: " + string(res.StopReason)
		}
	case domain.ModeOffline:
		mineID := opts.MineID
		if err := engine.ConfigureOffline(p, domain.OfflineSettings{MineID: &mineID}); err != nil {
			return err
		}
		res, err := engine.SettleOffline(ctx, p, end)
		if err != nil {
			return err
		}
		attempts, gained, stamina = res.Attempts, res.ItemsGained, res.StaminaRemaining
		note = "status: " + string(res.Status)
	default:
		return fmt.Errorf("unknown mode %q", opts.Mode)
	}

	fmt.Fprintf(w, "attempt duration: %s\n", engine.AttemptDuration(opts.Level))
	fmt.Fprintf(w, "attempts: %s\n", humanize.Comma(int64(attempts)))
	fmt.Fprintf(w, "stamina left: %d\n", stamina)
	if note != "" {
		fmt.Fprintln(w, note)
	}

	names := make([]string, 0, len(gained))
	for name := range gained {
		names = append(names, name)
	}
	sort.Strings(names)
	total := 0
	for _, name := range names {
		total += gained[name]
		fmt.Fprintf(w, "  %-22s %s\n", item.DisplayName(name), humanize.Comma(int64(gained[name])))
	}
	fmt.Fprintf(w, "%s %s\n", humanize.Comma(int64(total)), humanize.PluralWord(total, "item", ""))
	return nil
}
