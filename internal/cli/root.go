// Package cli implements the gomount command line: it parses an HTML file,
// selects elements into a wrapper array and runs checks against them.
package cli

import (
	"os"

	"github.com/heathj/gomount/config"
	"github.com/heathj/gomount/wrapper"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrCheckFailed is returned by query when a check answers false.
var ErrCheckFailed = errors.New("check failed")

type app struct {
	configFile string
	logLevel   string

	cfg *config.Config
	log *logrus.Logger
}

// NewRootCommand builds the gomount command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "gomount",
		Short:         "Query HTML documents the way component tests do",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./gomount.yaml if present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides the config file")

	root.AddCommand(newVersionCommand())
	root.AddCommand(newQueryCommand(a))
	root.AddCommand(newHTMLCommand(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	log, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr())
	a.cfg, a.log = cfg, log
	log.WithField("command", cmd.Name()).Debug("config loaded")
	return nil
}

// selectAll parses the HTML file at path and collects the elements that
// match sel, the document element included.
func (a *app) selectAll(path, sel string) (*wrapper.WrapperArray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open document")
	}
	defer f.Close()

	doc, err := wrapper.Parse(f, wrapper.WithLogger(a.log), wrapper.WithParseOptions(a.cfg.ParseOptions()...))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	items, err := doc.FindAll(wrapper.CSS(sel))
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{"file": path, "select": sel}).Debugf("selected %d elements", items.Length())
	return items, nil
}

// Execute runs the command tree against os.Args and returns the process
// exit code.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, ErrCheckFailed) {
			root.PrintErrln("Error:", err)
		}
		return 1
	}
	return 0
}
