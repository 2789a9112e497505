// Package parser turns typed player commands into game actions.
// Misspelled words are matched to the closest known alias.
package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

// Verb is the canonical action of a command
type Verb string

const (
	VerbMove      Verb = "move"
	VerbChoose    Verb = "choose"
	VerbDismiss   Verb = "dismiss"
	VerbAttack    Verb = "attack"
	VerbDefend    Verb = "defend"
	VerbFlee      Verb = "flee"
	VerbInventory Verb = "inventory"
	VerbSave      Verb = "save"
	VerbLoad      Verb = "load"
	VerbSaves     Verb = "saves"
	VerbJournal   Verb = "journal"
	VerbHelp      Verb = "help"
	VerbQuit      Verb = "quit"
)

// Command is a parsed player command
type Command struct {
	Raw  string
	Verb Verb
	// DX and DY are set for VerbMove
	DX int
	DY int
	// Index is zero-based; players type one-based numbers
	Index int
	// Arg is the free argument, e.g. an item or save id
	Arg string
	// Corrected is true when a word was fuzzily matched
	Corrected bool
}

type alias struct {
	word   string
	verb   Verb
	dx, dy int
}

// aliases is ordered; on equal distance the earlier entry wins
var aliases = []alias{
	{word: "north", verb: VerbMove, dy: -1},
	{word: "n", verb: VerbMove, dy: -1},
	{word: "up", verb: VerbMove, dy: -1},
	{word: "south", verb: VerbMove, dy: 1},
	{word: "s", verb: VerbMove, dy: 1},
	{word: "down", verb: VerbMove, dy: 1},
	{word: "east", verb: VerbMove, dx: 1},
	{word: "e", verb: VerbMove, dx: 1},
	{word: "right", verb: VerbMove, dx: 1},
	{word: "west", verb: VerbMove, dx: -1},
	{word: "w", verb: VerbMove, dx: -1},
	{word: "left", verb: VerbMove, dx: -1},
	{word: "choose", verb: VerbChoose},
	{word: "pick", verb: VerbChoose},
	{word: "option", verb: VerbChoose},
	{word: "dismiss", verb: VerbDismiss},
	{word: "ignore", verb: VerbDismiss},
	{word: "leave", verb: VerbDismiss},
	{word: "attack", verb: VerbAttack},
	{word: "hit", verb: VerbAttack},
	{word: "strike", verb: VerbAttack},
	{word: "defend", verb: VerbDefend},
	{word: "block", verb: VerbDefend},
	{word: "guard", verb: VerbDefend},
	{word: "flee", verb: VerbFlee},
	{word: "run", verb: VerbFlee},
	{word: "escape", verb: VerbFlee},
	{word: "inventory", verb: VerbInventory},
	{word: "inv", verb: VerbInventory},
	{word: "i", verb: VerbInventory},
	{word: "use", verb: VerbInventory},
	{word: "save", verb: VerbSave},
	{word: "load", verb: VerbLoad},
	{word: "restore", verb: VerbLoad},
	{word: "saves", verb: VerbSaves},
	{word: "journal", verb: VerbJournal},
	{word: "log", verb: VerbJournal},
	{word: "help", verb: VerbHelp},
	{word: "?", verb: VerbHelp},
	{word: "quit", verb: VerbQuit},
	{word: "exit", verb: VerbQuit},
	{word: "q", verb: VerbQuit},
}

// fillers may precede a direction, as in "go north"
var fillers = map[string]bool{"go": true, "move": true, "walk": true, "head": true, "travel": true}

// Parse reads one line of input.
// Unknown or incomplete commands return an InvalidArgument error suitable for display.
func Parse(input string) (*Command, error) {
	tokens := tokenize(input)
	if len(tokens) == 0 {
		return nil, errors.InvalidArgument("enter a command, or 'help'")
	}

	cmd := &Command{Raw: input}

	// a bare number answers the open event
	if n, err := strconv.Atoi(tokens[0]); err == nil && len(tokens) == 1 {
		return withIndex(cmd, VerbChoose, n)
	}

	head := tokens[0]
	if fillers[head] && len(tokens) > 1 {
		tokens = tokens[1:]
		head = tokens[0]
	}

	a, corrected, ok := match(head)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown command %q", head).WithMeta("input", input)
	}
	cmd.Verb = a.verb
	cmd.Corrected = corrected
	args := tokens[1:]

	switch a.verb {
	case VerbMove:
		cmd.DX, cmd.DY = a.dx, a.dy
		if a.dx == 0 && a.dy == 0 {
			return nil, errors.InvalidArgument("which direction?")
		}
	case VerbChoose:
		if len(args) == 0 {
			return nil, errors.InvalidArgument("choose which option?")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, errors.InvalidArgumentf("%q is not an option number", args[0])
		}
		return withIndex(cmd, VerbChoose, n)
	case VerbAttack:
		if len(args) == 0 {
			return cmd, nil
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, errors.InvalidArgumentf("%q is not a target number", args[0])
		}
		return withIndex(cmd, VerbAttack, n)
	case VerbLoad:
		if len(args) == 0 {
			return nil, errors.InvalidArgument("load which save?")
		}
		cmd.Arg = args[0]
	case VerbSave, VerbInventory:
		cmd.Arg = strings.Join(args, "_")
	}

	return cmd, nil
}

func withIndex(cmd *Command, verb Verb, n int) (*Command, error) {
	if n < 1 {
		return nil, errors.InvalidArgumentf("numbers start at 1, got %d", n)
	}
	cmd.Verb = verb
	cmd.Index = n - 1
	return cmd, nil
}

// match finds the alias for word, exactly or within the edit distance allowed for its length
func match(word string) (alias, bool, bool) {
	for _, a := range aliases {
		if a.word == word {
			return a, false, true
		}
	}
	if len(word) < 3 {
		return alias{}, false, false
	}

	best, bestDist := -1, 0
	for i, a := range aliases {
		if len(a.word) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(word, a.word)
		if dist > distanceLimit(len(a.word)) {
			continue
		}
		if best == -1 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best == -1 {
		return alias{}, false, false
	}
	return aliases[best], true, true
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func tokenize(input string) []string {
	return strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '.' || r == '!'
	})
}
