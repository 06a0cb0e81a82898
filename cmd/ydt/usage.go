package main

// commandsBlock, flagsBlock and footerBlock are shared by every template.
const (
	commandsBlock = `{{if .HasAvailableSubCommands}}
Commands:
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}  {{rpad .Name .NamePadding }} {{.Short}}
{{end}}{{end}}{{end}}`

	flagsBlock = `{{if .HasAvailableLocalFlags}}
Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableInheritedFlags}}
Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}`

	footerBlock = `{{if .HasAvailableSubCommands}}
Use "{{.CommandPath}} [command] --help" for more information about a command.
{{end}}`
)

const rootUsageTemplate = `Usage:
  ydt <word> [flags]
  {{.CommandPath}} [command]

Examples:
  ydt hello
  ydt 学习
  ydt serendipity --to ja --json
  ydt hello --web
` + commandsBlock + flagsBlock + footerBlock

const subcommandUsageTemplate = `Usage:
  {{.UseLine}}
` + commandsBlock + flagsBlock + footerBlock

const envUsageTemplate = `Usage:
  {{.UseLine}}
  {{.CommandPath}} [command]
` + commandsBlock + flagsBlock + footerBlock
