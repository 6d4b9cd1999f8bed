// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bfk-cli/internal/interp"

	"github.com/danswartzendruber/liner"
	"github.com/goforj/godump"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive session with a live tape",
	Long: `Start an interactive session. Each line is sanitized and executed
against the same tape, so state accumulates across lines the way it
would inside a single program.

Directives (anything starting with ':'):
  :state        dump the interpreter state (tape window, cursor)
  :input TEXT   set the input consumed by ',' in subsequent lines
  :tape N       replace the tape with a fresh one of N cells
  :reset        zero the tape and rewind the cursor
  :help         show this directive list
  :quit         leave the session (Ctrl-D also works)`,
	Args: cobra.NoArgs,
}

// RunE is assigned in init to avoid an initialization cycle:
// replCmd -> runRepl -> directive -> replCmd.Long.
func init() {
	replCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	}
}

// replSession holds the long-lived pieces of an interactive session.
type replSession struct {
	engine *interp.Interpreter
	input  string
}

func runRepl(cmd *cobra.Command) error {
	cfg := effectiveConfig()
	engine, err := interp.New(cfg.TapeSize, cfg.MaxSteps)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	session := &replSession{engine: engine}

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer line.Close()

	fmt.Fprintln(cmd.OutOrStdout(), TitleStyle.Render("bfk repl"))
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n",
		SubtitleStyle.Render(fmt.Sprintf("tape: %d cells, budget: %d steps per line. :help for directives.",
			engine.TapeSize(), engine.MaxSteps())))

	for {
		text, err := line.Prompt("bfk> ")
		if err != nil {
			// ^D leaves the session, ^C just abandons the current line.
			if err == io.EOF {
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			}
			if err == liner.ErrPromptAborted {
				continue
			}
			return &ExitError{Code: 1, Err: err}
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		line.AppendHistory(text)

		if strings.HasPrefix(text, ":") {
			quit, err := session.directive(cmd, text)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render(err.Error()))
			}
			if quit {
				return nil
			}
			continue
		}

		session.eval(cmd, text)
	}
}

// eval runs one line against the persistent tape. Failed lines leave the
// session alive; an unbalanced line never touches the tape, a line that hits
// the step budget may have partially advanced it.
func (s *replSession) eval(cmd *cobra.Command, text string) {
	out, err := s.engine.Run(cmd.Context(), interp.Sanitize(text), s.input)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render(err.Error()))
		if errors.Is(err, interp.ErrStepLimit) {
			fmt.Fprintln(cmd.ErrOrStderr(), SubtitleStyle.Render("tape may be partially modified; :reset to start over"))
		}
		return
	}
	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
}

// replState is the snapshot rendered by the :state directive.
type replState struct {
	Cursor   int
	Cell     byte
	TapeSize int
	MaxSteps int
	Input    string
	Tape     []byte
}

// stateWindow is how many cells around the cursor :state shows.
const stateWindow = 32

func (s *replSession) directive(cmd *cobra.Command, text string) (quit bool, err error) {
	name, arg, _ := strings.Cut(text, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case ":quit", ":q", ":exit":
		return true, nil

	case ":help":
		fmt.Fprintln(cmd.OutOrStdout(), replCmd.Long)
		return false, nil

	case ":reset":
		s.engine.Reset()
		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("tape cleared"))
		return false, nil

	case ":input":
		s.input = arg
		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf("input set (%d bytes)", len(arg))))
		return false, nil

	case ":tape":
		if arg == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%d cells\n", s.engine.TapeSize())
			return false, nil
		}
		size, convErr := strconv.Atoi(arg)
		if convErr != nil {
			return false, fmt.Errorf("invalid tape size %q", arg)
		}
		engine, newErr := interp.New(size, s.engine.MaxSteps())
		if newErr != nil {
			return false, newErr
		}
		s.engine = engine
		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf("fresh tape, %d cells", size)))
		return false, nil

	case ":state":
		tape := s.engine.Tape()
		cursor := s.engine.Cursor()
		start := max(0, cursor-stateWindow/2)
		end := min(len(tape), start+stateWindow)
		godump.Dump(replState{
			Cursor:   cursor,
			Cell:     tape[cursor],
			TapeSize: s.engine.TapeSize(),
			MaxSteps: s.engine.MaxSteps(),
			Input:    s.input,
			Tape:     tape[start:end],
		})
		return false, nil

	default:
		return false, fmt.Errorf("unknown directive %s (:help lists them)", name)
	}
}
