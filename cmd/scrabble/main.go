// Command scrabble is a line-oriented console front end for the
// skrafl move-generation engine, modeled on the original program's
// interactive command loop: 'f' finds the best move for a rack,
// 'm' makes a move, 's' scores a move without committing it, and
// 'p' prints the board.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	skrafl "github.com/playskrafl/engine"
)

func main() {
	cfg, err := skrafl.LoadConfig(pflag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	if cfg.DictPath == "" {
		fmt.Fprintln(os.Stderr, "usage: scrabble --dict=<path to packed dictionary>")
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	f, err := os.Open(cfg.DictPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open dictionary")
	}
	defer f.Close()

	engine := skrafl.NewEngine(log)
	if err := engine.Init(f); err != nil {
		log.Fatal().Err(err).Msg("cannot initialize engine")
	}
	engine.SetGoodEnough(cfg.GoodEnough)

	fmt.Println("skrafl interactive console. Commands:")
	fmt.Println("  f <rack>                    find the best move")
	fmt.Println("  m <x> <y> <h|v> <word>      make a move")
	fmt.Println("  s <x> <y> <h|v> <word>      score a move without committing it")
	fmt.Println("  p                            print the board")
	fmt.Println("  r                            reset the board")
	fmt.Println("  q                            quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		if err := runCommand(engine, scanner.Text()); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}

func runCommand(engine *skrafl.Engine, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "f":
		if len(fields) != 2 {
			return fmt.Errorf("usage: f <rack>")
		}
		play, err := engine.FindMove(fields[1])
		if err != nil {
			return err
		}
		fmt.Println(play)
	case "m", "s":
		if len(fields) != 5 {
			return fmt.Errorf("usage: %s <x> <y> <h|v> <word>", fields[0])
		}
		x, y, o, word, err := parseMoveArgs(fields[1:])
		if err != nil {
			return err
		}
		if fields[0] == "m" {
			return engine.MakeMove(x, y, o, word)
		}
		s, err := engine.ScoreMove(x, y, o, word)
		if err != nil {
			return err
		}
		fmt.Println(s)
	case "p":
		fmt.Print(engine.PrintBoard())
	case "r":
		engine.Reset()
	case "q":
		os.Exit(0)
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}

func parseMoveArgs(args []string) (x, y int, o byte, word string, err error) {
	x, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, 0, "", fmt.Errorf("bad x coordinate: %w", err)
	}
	y, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, 0, "", fmt.Errorf("bad y coordinate: %w", err)
	}
	if len(args[2]) != 1 || (args[2] != "h" && args[2] != "v") {
		return 0, 0, 0, "", fmt.Errorf("orientation must be 'h' or 'v'")
	}
	return x, y, args[2][0], args[3], nil
}
