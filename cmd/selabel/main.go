package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sys/unix"

	"github.com/optionalg/coreutils/internal/config"
	"github.com/optionalg/coreutils/internal/matcher"
	"github.com/optionalg/coreutils/internal/policy"
	"github.com/optionalg/coreutils/internal/relabel"
	"github.com/optionalg/coreutils/internal/version"
)

const (
	configArg    = "config"
	logLevelArg  = "log-level"
	logFormatArg = "log-format"
)

// objectKinds maps the --kind argument of the defaultcon command to
// the file mode bits the new objects will carry.
var objectKinds = map[string]uint32{
	"file": unix.S_IFREG,
	"dir":  unix.S_IFDIR,
	"chr":  unix.S_IFCHR,
	"blk":  unix.S_IFBLK,
	"fifo": unix.S_IFIFO,
	"lnk":  unix.S_IFLNK,
	"sock": unix.S_IFSOCK,
}

func main() {
	app := cli.NewApp()
	app.Name = "selabel"
	app.Authors = []*cli.Author{{Name: "The coreutils maintainers"}}
	app.Usage = "A tool for computing and restoring security labels of filesystem objects"
	app.Description = app.Usage

	info, err := version.Get()
	if err != nil {
		logrus.Fatal(err)
	}
	app.Version = info.Version

	app.CommandNotFound = func(*cli.Context, string) { os.Exit(1) }
	app.OnUsageError = func(c *cli.Context, e error, b bool) error { return e }
	app.Action = func(c *cli.Context) error {
		return fmt.Errorf("expecting a valid subcommand")
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:      configArg,
			Aliases:   []string{"c"},
			Usage:     "path of the TOML configuration file",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:    logLevelArg,
			Aliases: []string{"l"},
			Usage:   "log messages above specified level: trace, debug, info, warn, error, fatal or panic",
		},
		&cli.StringFlag{
			Name:  logFormatArg,
			Usage: "set the format used by logs: 'text' or 'json'",
		},
	}

	app.Commands = []*cli.Command{
		restoreCommand(),
		defaultconCommand(),
		versionCommand(info),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges the defaults, the configuration file and the
// command line flags, and installs the logging setup.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String(configArg); path != "" {
		if err := cfg.UpdateFromFile(path); err != nil {
			return nil, err
		}
	}
	if level := c.String(logLevelArg); level != "" {
		cfg.LogLevel = level
	}
	if format := c.String(logFormatArg); format != "" {
		cfg.LogFormat = format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(level)
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	return cfg, nil
}

func newRestorer(cfg *config.Config) (*relabel.Restorer, error) {
	contexts, err := matcher.Load(cfg.FileContexts)
	if err != nil {
		return nil, err
	}
	return relabel.New(policy.New(), contexts), nil
}

func restoreCommand() *cli.Command {
	return &cli.Command{
		Name:      "restore",
		Usage:     "restore the labels of filesystem objects to their policy defaults",
		ArgsUsage: "PATH [PATH...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "recursive",
				Aliases: []string{"R"},
				Usage:   "restore labels of whole directory trees",
			},
			&cli.BoolFlag{
				Name:    "preserve",
				Aliases: []string{"P"},
				Usage:   "apply the process creation label instead of recomputing labels",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("expecting at least one path")
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			restorer, err := newRestorer(cfg)
			if err != nil {
				return err
			}

			failed := 0
			for _, path := range c.Args().Slice() {
				outcome := restorer.Restore(path, c.Bool("recursive"), c.Bool("preserve"))
				if !outcome.Succeeded() {
					failed += len(outcome.Failures())
					if outcome.WalkErr() != nil {
						failed++
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("failed to restore the label of %d object(s)", failed)
			}
			return nil
		},
	}
}

func defaultconCommand() *cli.Command {
	return &cli.Command{
		Name:      "defaultcon",
		Usage:     "set the process creation label for objects to be created at a path",
		ArgsUsage: "PATH",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "kind of the objects to be created: file, dir, chr, blk, fifo, lnk or sock",
				Value:   "file",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expecting exactly one path")
			}
			mode, ok := objectKinds[c.String("kind")]
			if !ok {
				return fmt.Errorf("unknown object kind %q", c.String("kind"))
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			restorer, err := newRestorer(cfg)
			if err != nil {
				return err
			}
			return restorer.SetDefaultCreationLabel(c.Args().First(), mode)
		},
	}
}

func versionCommand(info *version.Info) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "display version information",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "print JSON instead of text",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("json") {
				js, err := info.JSONString()
				if err != nil {
					return err
				}
				fmt.Println(js)
				return nil
			}
			fmt.Println(info.String())
			return nil
		},
	}
}
