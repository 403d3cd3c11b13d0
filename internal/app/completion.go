// Where: internal/app/completion.go
// What: Shell completion command implementation.
// Why: Provide tab completion for bash, zsh, and fish.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
)

// CompletionCmd defines the structure for the completion command.
type CompletionCmd struct {
	Bash CompletionBashCmd `cmd:"" help:"Generate bash completion script"`
	Zsh  CompletionZshCmd  `cmd:"" help:"Generate zsh completion script"`
	Fish CompletionFishCmd `cmd:"" help:"Generate fish completion script"`
}

type (
	CompletionBashCmd struct{}
	CompletionZshCmd  struct{}
	CompletionFishCmd struct{}
)

// completionModel extracts the visible command and subcommand names from
// the kong model so the scripts never drift from the CLI definition.
func completionModel(cli CLI) ([]string, map[string][]string) {
	parser, _ := kong.New(&cli)

	var commands []string
	subcommands := make(map[string][]string)

	for _, node := range parser.Model.Children {
		if node.Hidden {
			continue
		}
		commands = append(commands, node.Name)
		if len(node.Children) == 0 {
			continue
		}
		var subs []string
		for _, sub := range node.Children {
			if sub.Hidden {
				continue
			}
			subs = append(subs, sub.Name)
		}
		subcommands[node.Name] = subs
	}
	return commands, subcommands
}

func runCompletionBash(cli CLI, out io.Writer) int {
	commands, subcommands := completionModel(cli)

	var caseParts []string
	for cmd, subs := range subcommands {
		part := fmt.Sprintf(`        %s)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;`, cmd, strings.Join(subs, " "))
		caseParts = append(caseParts, part)
	}

	script := `_hscaffold_completion() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
}
complete -F _hscaffold_completion hscaffold
`
	fmt.Fprintf(out, script, strings.Join(commands, " "), strings.Join(caseParts, "\n"))
	return 0
}

func runCompletionZsh(cli CLI, out io.Writer) int {
	commands, subcommands := completionModel(cli)

	var caseParts []string
	for cmd, subs := range subcommands {
		part := fmt.Sprintf(`        %s)
            _values 'subcommands' %s
            return
            ;;`, cmd, strings.Join(subs, " "))
		caseParts = append(caseParts, part)
	}

	script := `#compdef hscaffold
_hscaffold_completion() {
    local -a commands
    commands=(
        %s
    )
    local cmd="${words[2]}"
    case "${cmd}" in
%s
    esac
    _values 'commands' "${commands[@]}"
}
_hscaffold_completion "$@"
`
	fmt.Fprintf(out, script, strings.Join(commands, "\n        "), strings.Join(caseParts, "\n"))
	return 0
}

func runCompletionFish(cli CLI, out io.Writer) int {
	commands, subcommands := completionModel(cli)

	fmt.Fprintf(out, "complete -c hscaffold -f -n '__fish_use_subcommand' -a '%s'\n",
		strings.Join(commands, " "))
	for cmd, subs := range subcommands {
		fmt.Fprintf(out, "complete -c hscaffold -f -n '__fish_seen_subcommand_from %s' -a '%s'\n",
			cmd, strings.Join(subs, " "))
	}
	return 0
}
