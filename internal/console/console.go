// Package console runs an interactive chess game over a line-based reader
// and writer, such as a terminal.
package console

import (
	"bufio"
	_ "embed"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/game"
	"github.com/lgbarn/chessboard-go/internal/history"
)

//go:embed help.txt
var defaultHelp string

// Commands accepted in place of a move.
const (
	cmdExit = ":x"
	cmdHelp = ":h"
	cmdSave = ":s"
	cmdOpen = ":o"
)

// Messages printed to the player.
const (
	msgNewGame     = "New game started, you can also load a saved game using the command :o"
	msgPlaying     = "Currently playing: %s"
	msgPrompt      = "Type your next move or a command, for a list of commands type :h"
	msgCheck       = "Check!"
	msgGameOver    = "Game over, winner is : %s"
	msgBadAnswer   = "Not acceptable answer, type 'y' for yes and 'n' for no"
	msgConfirmExit = "Do you want to exit the game? (y/n)"
	msgConfirmSave = "Game stopped, do you want to save the game? (y/n)"
	msgSaveName    = "Type the name of the save file (without the file extension)\nIf you give an existing file the old one will be overwritten"
	msgSaved       = "Saved game: %s"
	msgConfirmOpen = "New game stopped, do you want to load a saved game? (y/n)"
	msgOpenName    = "Type the name of the save file you want to load (without the file extension)"
	msgLoaded      = "Loaded game: %s"
	msgNoSaves     = "No saved games found"
	msgSaves       = "Saved games: %s"
	msgHelpHint    = "For help type the command :h"
)

// Console is the read loop for one session.
type Console struct {
	cfg     *config.Config
	in      *bufio.Scanner
	out     io.Writer
	session *game.Session
	store   history.Store
	help    string
}

// New creates a Console reading commands from in and writing to cfg.Output.
// cfg.HelpFile, when set, replaces the built-in help text.
func New(cfg *config.Config, in io.Reader, session *game.Session, store history.Store) (*Console, error) {
	help := defaultHelp
	if cfg.HelpFile != "" {
		data, err := os.ReadFile(cfg.HelpFile)
		if err != nil {
			return nil, errors.Wrap(err, "reading help file")
		}
		help = string(data)
	}

	return &Console{
		cfg:     cfg,
		in:      bufio.NewScanner(in),
		out:     cfg.Output,
		session: session,
		store:   store,
		help:    help,
	}, nil
}

func (c *Console) println(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// readLine returns the next input line, trimmed. ok is false at end of input.
func (c *Console) readLine() (line string, ok bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// confirm asks a y/n question until it gets one of the two answers.
func (c *Console) confirm(question string) (yes, ok bool) {
	c.println(question)
	for {
		answer, ok := c.readLine()
		if !ok {
			return false, false
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, true
		case "n":
			return false, true
		}
		c.println(msgBadAnswer)
	}
}

// Run plays until the player exits, the game ends in checkmate, or the
// input is exhausted.
func (c *Console) Run() error {
	c.println(msgNewGame)

	for {
		c.printState()

		line, ok := c.readLine()
		if !ok {
			return c.in.Err()
		}

		switch line {
		case cmdExit:
			yes, ok := c.confirm(msgConfirmExit)
			if yes || !ok {
				return c.in.Err()
			}
		case cmdHelp:
			c.printHelp()
		case cmdSave:
			if !c.save() {
				return c.in.Err()
			}
		case cmdOpen:
			if !c.open() {
				return c.in.Err()
			}
			if c.session.Over() {
				c.println(msgGameOver, c.session.Winner())
				return nil
			}
		default:
			if c.move(line) {
				return nil
			}
		}
	}
}

func (c *Console) printState() {
	fmt.Fprint(c.out, c.session.Render())
	c.println(msgPlaying, c.session.ToMove())
	c.println(msgPrompt)
}

func (c *Console) printHelp() {
	c.println("")
	fmt.Fprint(c.out, strings.TrimRight(c.help, "\n")+"\n")
	c.println("")
}

// move makes one move and reports whether the game is over.
func (c *Console) move(line string) (over bool) {
	res, err := c.session.Play(line)
	switch {
	case errors.IsMoveError(err):
		c.println("%v", err)
		if stderrors.Is(err, errors.ErrNoInput) {
			c.println(msgHelpHint)
		}
		return false
	case err != nil:
		c.println("%v", err)
		return c.session.Over()
	}

	if res.Checkmate {
		fmt.Fprint(c.out, c.session.Render())
		c.println(msgGameOver, c.session.Winner())
		return true
	}
	if res.Check {
		c.println(msgCheck)
	}
	return false
}

// save returns false when input ran out.
func (c *Console) save() bool {
	yes, ok := c.confirm(msgConfirmSave)
	if !ok || !yes {
		return ok
	}

	c.println(msgSaveName)
	name, ok := c.readLine()
	if !ok {
		return false
	}
	if err := c.session.Save(c.store, name); err != nil {
		c.println("%v", err)
		return true
	}
	c.println(msgSaved, name)
	return true
}

// open returns false when input ran out.
func (c *Console) open() bool {
	yes, ok := c.confirm(msgConfirmOpen)
	if !ok || !yes {
		return ok
	}

	if names, err := c.store.List(); err == nil {
		if len(names) == 0 {
			c.println(msgNoSaves)
			return true
		}
		c.println(msgSaves, strings.Join(names, ", "))
	}

	c.println(msgOpenName)
	name, ok := c.readLine()
	if !ok {
		return false
	}
	if err := c.session.Load(c.store, name); err != nil {
		c.println("%v", err)
		return true
	}
	c.println(msgLoaded, name)
	return true
}
