// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ProgramNotFoundId Id = iota + 1
	UnbalancedProgramId
	StepLimitExceededId
	ConfigLoadFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	programNotFoundIssue = &Issue{
		id: ProgramNotFoundId,
		mdMsg: `
# Program not found!

The program file you pointed at does not exist or is not readable.

## Things you can try:
- Check the path passed with -f/--file
- Pass the program inline instead:
~~~
$ bfk run -p ",[.,]" -i "hello"
~~~`,
	}

	unbalancedProgramIssue = &Issue{
		id: UnbalancedProgramId,
		mdMsg: `
# Unbalanced loops!

Every loop needs a matching pair: a ` + "`[`" + ` to open and a ` + "`]`" + ` to close.
The position in the message above is an index into the *sanitized* program
(comments and noise stripped).

## Things you can try:
- Inspect the sanitized form to locate the position:
~~~
$ bfk sanitize -f program.bf
~~~

- Validate without executing:
~~~
$ bfk check -f program.bf
~~~`,
	}

	stepLimitExceededIssue = &Issue{
		id: StepLimitExceededId,
		mdMsg: `
# Step limit exceeded!

The program did not finish within the configured step budget. This usually
means an infinite loop, e.g. a ` + "`[]`" + ` whose cell never reaches zero.

## Things you can try:
- Raise the budget if the program legitimately needs more steps:
~~~
$ bfk run -f program.bf --max-steps 50000000
~~~

- Or set a permanent budget in ~/.config/bfk/config.cue:
~~~cue
max_steps: 50000000
~~~

Note that output is all-or-nothing: nothing produced before the limit is
printed.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config file contains syntax errors or invalid values.

## Things you can try:
- Check the error message above for the specific field
- Regenerate a default config:
~~~
$ bfk config init
~~~

## Example of a valid config:
~~~cue
tape_size: 30000
max_steps: 2000000

ui: {
	color_scheme: "auto"
	verbose:      false
}
~~~`,
	}

	issues = map[Id]*Issue{
		programNotFoundIssue.Id():   programNotFoundIssue,
		unbalancedProgramIssue.Id(): unbalancedProgramIssue,
		stepLimitExceededIssue.Id(): stepLimitExceededIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
	}
)

// Values returns every cataloged issue, ordered by Id.
func Values() []*Issue {
	all := maps.Values(issues)
	slices.SortFunc(all, func(a, b *Issue) int { return int(a.Id()) - int(b.Id()) })
	return all
}

func Get(id Id) *Issue {
	return issues[id]
}
