// Program jscene parses, formats, and queries JSON documents, and extracts
// scene records from glTF 2.0 files.
//
// Usage:
//
//	jscene fmt [FILE...] [--indent N] [--hujson] [--legacy-escapes] [--key-case C]
//	jscene get FILE [--] PATH...
//	jscene glb FILE... [--workers N] [--max-depth N] [--key-case C]
//
// Settings are read from a .jscene.yml file in the working directory or one
// of its parents, or from the file named by --config. Flags override the
// settings from the file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jscene/internal/config"
	"github.com/rs/zerolog"
)

// CLI defines the command-line interface.
type CLI struct {
	Config   string `help:"Path to config file (default: search for .jscene.yml)." type:"path"`
	LogLevel string `help:"Log level (trace, debug, info, warn, error)." name:"log-level"`

	Fmt fmtCmd `cmd:"" help:"Parse JSON and print it re-serialized."`
	Get getCmd `cmd:"" help:"Print the value at a path in a JSON document."`
	GLB glbCmd `cmd:"" name:"glb" help:"Extract scene records from GLB or glTF files."`
}

// env is the state shared by all commands.
type env struct {
	cfg *config.Config
	log zerolog.Logger
	in  io.Reader
	out io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "jscene: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("jscene"),
		kong.Description("Parse, format, and query JSON; extract glTF scenes."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(lvl).With().Timestamp().Logger()

	return ctx.Run(&env{cfg: cfg, log: log, in: stdin, out: stdout})
}

// loadConfig loads the config file at path, or the nearest config file to
// the working directory if path == "", or the defaults if there is none.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.FindConfigFile(wd)
		}
	}
	if path == "" {
		return config.NewConfig(), nil
	}
	return config.LoadConfig(path)
}
